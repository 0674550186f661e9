package diagnostics

import (
	"fmt"
	"io"
	"os"
)

// FatalLabel prefixes every fail-fast semantic error line
const FatalLabel = "Erro semântico"

// FatalReporter writes a single semantic error line and terminates.
// It is the fail-fast reporting path: one diagnostic, then exit status 1.
type FatalReporter struct {
	writer io.Writer
	exit   func(code int)
}

// NewFatalReporter creates a reporter that writes to w and exits the process
func NewFatalReporter(w io.Writer) *FatalReporter {
	return &FatalReporter{writer: w, exit: os.Exit}
}

// WithExit replaces the termination function, used by embedders that must not exit
func (r *FatalReporter) WithExit(exit func(code int)) *FatalReporter {
	r.exit = exit
	return r
}

// Fatal reports message and calls the exit function with status 1.
// Callers must not continue analysis after Fatal when exit returns.
func (r *FatalReporter) Fatal(message string) {
	fmt.Fprintf(r.writer, "%s: %s\n", FatalLabel, message)
	r.exit(1)
}

// FatalDiagnostic reports the message of diag through Fatal
func (r *FatalReporter) FatalDiagnostic(diag *Diagnostic) {
	r.Fatal(diag.Message)
}
