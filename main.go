//go:build !js && !wasm

package main

import (
	"flag"
	"fmt"
	"os"

	"semantica/internal/compiler"
	"semantica/internal/config"
)

const version = "0.1.0"

func main() {
	// Define flags
	debug := flag.Bool("d", false, "Enable debug output")
	showVersion := flag.Bool("v", false, "Show version")
	configPath := flag.String("c", "", "Path to "+config.FileName+" (default: next to the entry file)")
	collect := flag.Bool("collect", false, "Report every semantic error instead of stopping at the first")
	flag.BoolVar(debug, "debug", false, "Enable debug output")
	flag.BoolVar(showVersion, "version", false, "Show version")
	flag.StringVar(configPath, "config", "", "Path to "+config.FileName)

	flag.Parse()

	if *showVersion {
		fmt.Printf("semantica version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: semantica [options] <file>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	entryFile := args[0]

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadForEntry(entryFile)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *collect {
		cfg.FailFast = false
	}

	result := compiler.Compile(&compiler.Options{
		EntryFile: entryFile,
		Config:    cfg,
		Debug:     *debug,
		LogFormat: compiler.ANSI,
	})

	if result.Output != "" {
		fmt.Fprintln(os.Stderr, result.Output)
	}
	if !result.Success {
		os.Exit(1)
	}
}
