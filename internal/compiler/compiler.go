package compiler

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"semantica/colors"
	"semantica/internal/config"
	"semantica/internal/frontend/lexer"
	"semantica/internal/frontend/parser"
)

type FORMAT int

const (
	ANSI FORMAT = iota
	HTML
)

// InMemoryFile names the unit when source is passed as Code
const InMemoryFile = "main.sem"

// Options for one analysis run
type Options struct {
	// For file-based analysis
	EntryFile string
	// For in-memory analysis (WASM)
	Code string
	// Config overrides semantica.toml when set
	Config *config.Config
	// Debug output (tokens and the final symbol table)
	Debug bool
	// Output format: ANSI writes to Stderr, HTML is returned in Result.Output
	LogFormat FORMAT
	// Stderr receives diagnostics in ANSI mode; defaults to os.Stderr
	Stderr io.Writer
	// Exit terminates on a fail-fast semantic error; defaults to os.Exit
	Exit func(code int)
}

// Result of analysis
type Result struct {
	Success bool
	Output  string
	UnitID  string
	Symbols int
}

// Compile lexes, parses and semantically checks one compilation unit
func Compile(opts *Options) Result {
	unitID := uuid.NewString()

	path, content, err := readSource(opts)
	if err != nil {
		return Result{Success: false, Output: err.Error(), UnitID: unitID}
	}

	cfg := opts.Config
	if cfg == nil {
		if opts.EntryFile != "" {
			cfg, err = config.LoadForEntry(path)
		} else {
			cfg = config.Default()
		}
		if err != nil {
			return Result{Success: false, Output: err.Error(), UnitID: unitID}
		}
	}
	debug := opts.Debug || cfg.Debug

	var out io.Writer = opts.Stderr
	var html *bytes.Buffer
	exit := opts.Exit
	if opts.LogFormat == HTML {
		html = &bytes.Buffer{}
		out = html
		if exit == nil {
			exit = func(int) {}
		}
	}
	if out == nil {
		out = os.Stderr
	}
	if exit == nil {
		exit = os.Exit
	}
	colors.SetEnabled(cfg.Color || opts.LogFormat == HTML)

	unit := newUnit(cfg, out, exit)
	defer unit.Shutdown()

	if debug {
		colors.CYAN.Fprintf(out, "analyzing unit %s (%s)\n", unitID, path)
	}

	bag := unit.Diagnostics()
	bag.AddSourceContent(path, content)

	var tokenDebug io.Writer
	if debug {
		tokenDebug = out
	}
	toks := lexer.New(path, content, bag).Tokenize(tokenDebug)
	module := parser.Parse(toks, path, bag)

	result := Result{UnitID: unitID}
	if !bag.HasErrors() {
		a := unit.Analyzer()
		if debug {
			a.WithDebug(out)
		}
		if cfg.FailFast {
			// warnings must be out before a fatal error ends the process
			bag.Drain(out)
		}
		a.AnalyzeModule(module)
		result.Symbols = a.Table().Len()
		result.Success = !a.Failed()
	}

	if len(bag.Diagnostics()) > 0 {
		bag.EmitAll(out)
	}
	result.Success = result.Success && !bag.HasErrors()

	if html != nil {
		result.Output = colors.ConvertANSIToHTML(html.String())
	}
	return result
}

func readSource(opts *Options) (string, string, error) {
	if opts.EntryFile == "" {
		return InMemoryFile, opts.Code, nil
	}

	absPath, err := filepath.Abs(opts.EntryFile)
	if err != nil {
		return "", "", fmt.Errorf("Failed to resolve path: %w", err)
	}
	data, err := os.ReadFile(absPath)
	if os.IsNotExist(err) {
		return "", "", fmt.Errorf("File not found: %s", opts.EntryFile)
	}
	if err != nil {
		return "", "", fmt.Errorf("Failed to read %s: %w", opts.EntryFile, err)
	}
	return absPath, string(data), nil
}
