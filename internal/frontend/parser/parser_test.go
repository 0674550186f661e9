package parser

import (
	"strings"
	"testing"

	"semantica/internal/diagnostics"
	"semantica/internal/frontend/ast"
	"semantica/internal/frontend/lexer"
)

func parse(t *testing.T, src string) (*ast.Module, *diagnostics.DiagnosticBag) {
	t.Helper()
	diag := diagnostics.NewDiagnosticBag()
	lex := lexer.New("test.sem", src, diag)
	toks := lex.Tokenize(nil)
	return Parse(toks, "test.sem", diag), diag
}

// TestParserEdgeCases tests edge cases and error handling in the parser
func TestParserEdgeCases(t *testing.T) {
	tests := []struct {
		name          string
		source        string
		expectError   bool
		errorContains string
	}{
		{
			name:          "Missing semicolon after declaration",
			source:        "var x int",
			expectError:   true,
			errorContains: "expected ';'",
		},
		{
			name:          "Missing type",
			source:        "var x;",
			expectError:   true,
			errorContains: "expected type name",
		},
		{
			name:          "Keyword as variable name",
			source:        "var true bool;",
			expectError:   true,
			errorContains: "expected variable name",
		},
		{
			name:          "Missing value in assignment",
			source:        "x = ;",
			expectError:   true,
			errorContains: "expected an expression",
		},
		{
			name:          "Unclosed string literal",
			source:        `x = "hello`,
			expectError:   true,
			errorContains: "unterminated string literal",
		},
		{
			name:          "Unknown character",
			source:        "x = 1 + 2;",
			expectError:   true,
			errorContains: "unrecognized character '+'",
		},
		{
			name:        "Only comments",
			source:      "// nothing here\n/* still nothing */",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module, diag := parse(t, tt.source)

			hasError := diag.HasErrors()

			if tt.expectError && !hasError {
				t.Errorf("Expected error but got none for: %s", tt.source)
			}

			if !tt.expectError && hasError {
				t.Errorf("Expected no error but got error for: %s\nErrors: %d", tt.source, diag.ErrorCount())
				for _, d := range diag.Diagnostics() {
					t.Logf("  %s: %s", d.Severity, d.Message)
				}
			}

			if tt.errorContains != "" && hasError {
				found := false
				for _, d := range diag.Diagnostics() {
					if d.Severity == diagnostics.Error && strings.Contains(d.Message, tt.errorContains) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Expected error containing %q but didn't find it", tt.errorContains)
					for _, d := range diag.Diagnostics() {
						t.Logf("  Got: %s", d.Message)
					}
				}
			}

			if module == nil {
				t.Error("Parser returned nil module")
			}
		})
	}
}

func TestParserValidProgram(t *testing.T) {
	src := `var x int;
var y bool;
x = 42;
y = x;
x;
var s string;
s = "hi";
y = true;`

	module, diag := parse(t, src)
	if diag.HasErrors() {
		t.Fatalf("Unexpected errors: %d", diag.ErrorCount())
	}
	if len(module.Nodes) != 8 {
		t.Fatalf("Expected 8 statements, got %d", len(module.Nodes))
	}

	decl, ok := module.Nodes[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("Expected VarDecl, got %T", module.Nodes[0])
	}
	if decl.Name.Name != "x" || decl.Type.Name != "int" {
		t.Errorf("Expected var x int, got var %s %s", decl.Name.Name, decl.Type.Name)
	}
	if decl.Name.Start.Line != 1 || decl.Name.Start.Column != 5 {
		t.Errorf("Expected name at 1:5, got %d:%d", decl.Name.Start.Line, decl.Name.Start.Column)
	}

	assign, ok := module.Nodes[3].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("Expected AssignStmt, got %T", module.Nodes[3])
	}
	ids := ast.Identifiers(assign)
	if len(ids) != 2 || ids[0].Name != "y" || ids[1].Name != "x" {
		t.Errorf("Expected identifiers [y x], got %v", ids)
	}

	if _, ok := module.Nodes[4].(*ast.ExprStmt); !ok {
		t.Errorf("Expected ExprStmt, got %T", module.Nodes[4])
	}

	lit := module.Nodes[6].(*ast.AssignStmt).Value.(*ast.BasicLit)
	if lit.Value != "hi" {
		t.Errorf("Expected string literal hi, got %q", lit.Value)
	}
}

func TestParserRecovery(t *testing.T) {
	src := `var a int;
var b;
var c bool;`

	module, diag := parse(t, src)

	if diag.ErrorCount() != 1 {
		t.Errorf("Expected 1 error, got %d", diag.ErrorCount())
	}
	if len(module.Nodes) != 2 {
		t.Fatalf("Expected parser to recover 2 declarations, got %d", len(module.Nodes))
	}
	if module.Nodes[1].(*ast.VarDecl).Name.Name != "c" {
		t.Error("Expected declaration after the broken one to be parsed")
	}
}
