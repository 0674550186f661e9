package compiler

import (
	"io"

	"github.com/samber/do"

	"semantica/internal/config"
	"semantica/internal/diagnostics"
	"semantica/internal/semantics/analyzer"
	"semantica/internal/semantics/table"
)

// unit wires the services of one compilation unit. Every service is a
// singleton inside the unit and discarded with it.
type unit struct {
	*do.Injector
}

func newUnit(cfg *config.Config, out io.Writer, exit func(int)) *unit {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	do.Provide(injector, func(i *do.Injector) (*diagnostics.DiagnosticBag, error) {
		return diagnostics.NewDiagnosticBag(), nil
	})

	do.Provide(injector, func(i *do.Injector) (*diagnostics.FatalReporter, error) {
		return diagnostics.NewFatalReporter(out).WithExit(exit), nil
	})

	do.Provide(injector, func(i *do.Injector) (*table.SymbolTable, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return table.NewSymbolTable(cfg.Capacity), nil
	})

	do.Provide(injector, func(i *do.Injector) (*analyzer.Analyzer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return analyzer.New(
			do.MustInvoke[*table.SymbolTable](i),
			do.MustInvoke[*diagnostics.DiagnosticBag](i),
			do.MustInvoke[*diagnostics.FatalReporter](i),
			cfg.FailFast,
		), nil
	})

	return &unit{Injector: injector}
}

func (u *unit) Diagnostics() *diagnostics.DiagnosticBag {
	return do.MustInvoke[*diagnostics.DiagnosticBag](u.Injector)
}

func (u *unit) Analyzer() *analyzer.Analyzer {
	return do.MustInvoke[*analyzer.Analyzer](u.Injector)
}
