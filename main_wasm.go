//go:build js && wasm

package main

import (
	"syscall/js"

	"semantica/internal/compiler"
	"semantica/internal/config"
)

func main() {
	js.Global().Set("semanticaAnalyze", js.FuncOf(analyze))
	println("semantica WASM analyzer ready")
	<-make(chan struct{})
}

// analyze(code: string, debug: bool, collect: bool)
func analyze(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return map[string]any{
			"success": false,
			"output":  "Invalid arguments: expected (code: string, debug: bool)",
		}
	}

	cfg := config.Default()
	if len(args) > 2 && args[2].Bool() {
		cfg.FailFast = false
	}

	result := compiler.Compile(&compiler.Options{
		Code:      args[0].String(),
		Config:    cfg,
		Debug:     args[1].Bool(),
		LogFormat: compiler.HTML,
	})

	return map[string]any{
		"success": result.Success,
		"output":  result.Output,
		"symbols": result.Symbols,
	}
}
