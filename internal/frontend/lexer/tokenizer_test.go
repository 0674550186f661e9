package lexer

import (
	"testing"

	"semantica/internal/diagnostics"
	"semantica/internal/tokens"
)

func TestTokenize(t *testing.T) {
	diag := diagnostics.NewDiagnosticBag()
	toks := New("test.sem", "var x int; // c\nx = \"s\";\ny = 12;", diag).Tokenize(nil)

	expected := []struct {
		kind  tokens.TOKEN
		value string
	}{
		{tokens.VAR_TOKEN, "var"},
		{tokens.IDENTIFIER_TOKEN, "x"},
		{tokens.IDENTIFIER_TOKEN, "int"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.IDENTIFIER_TOKEN, "x"},
		{tokens.EQUALS_TOKEN, "="},
		{tokens.STRING_TOKEN, "s"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.IDENTIFIER_TOKEN, "y"},
		{tokens.EQUALS_TOKEN, "="},
		{tokens.NUMBER_TOKEN, "12"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.EOF_TOKEN, "end of file"},
	}

	if diag.HasErrors() {
		t.Fatalf("Unexpected errors: %d", diag.ErrorCount())
	}
	if len(toks) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(toks))
	}
	for i, want := range expected {
		if toks[i].Kind != want.kind || toks[i].Value != want.value {
			t.Errorf("token %d = %v %q, want %v %q", i, toks[i].Kind, toks[i].Value, want.kind, want.value)
		}
	}

	if toks[4].Start.Line != 2 || toks[4].Start.Column != 1 {
		t.Errorf("Expected x at 2:1, got %d:%d", toks[4].Start.Line, toks[4].Start.Column)
	}
}

func TestTokenize_CaseSensitiveIdentifiers(t *testing.T) {
	diag := diagnostics.NewDiagnosticBag()
	toks := New("test.sem", "x X Var", diag).Tokenize(nil)

	if toks[0].Value != "x" || toks[1].Value != "X" {
		t.Errorf("Expected x and X to stay distinct, got %q %q", toks[0].Value, toks[1].Value)
	}
	if toks[2].Kind != tokens.IDENTIFIER_TOKEN {
		t.Errorf("Expected Var to be an identifier, got %v", toks[2].Kind)
	}
}

func TestTokenize_NormalizesIdentifiers(t *testing.T) {
	diag := diagnostics.NewDiagnosticBag()
	decomposed := "cafe\u0301"
	toks := New("test.sem", decomposed+";", diag).Tokenize(nil)

	if toks[0].Value != "caf\u00e9" {
		t.Errorf("Expected NFC identifier, got %q", toks[0].Value)
	}
	if diag.WarningCount() != 1 {
		t.Fatalf("Expected 1 warning, got %d", diag.WarningCount())
	}
	if diag.Diagnostics()[0].Code != diagnostics.WarnNonNormalizedIdentifier {
		t.Errorf("Expected W0005, got %s", diag.Diagnostics()[0].Code)
	}
}

func TestTokenize_UnrecognizedCharacter(t *testing.T) {
	diag := diagnostics.NewDiagnosticBag()
	toks := New("test.sem", "x § y", diag).Tokenize(nil)

	if diag.ErrorCount() != 1 {
		t.Fatalf("Expected 1 error, got %d", diag.ErrorCount())
	}
	if len(toks) != 3 {
		t.Errorf("Expected x, y and EOF, got %d tokens", len(toks))
	}
	if toks[1].Start.Column != 5 {
		t.Errorf("Expected y at column 5, got %d", toks[1].Start.Column)
	}
}
