package diagnostics

import (
	"fmt"

	"semantica/internal/source"
)

// Common diagnostic builders for the semantic pass

// RedeclaredSymbol creates a diagnostic for a name declared twice.
// prevLoc may be nil when the first declaration has no recorded location.
func RedeclaredSymbol(newLoc, prevLoc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("Variável '%s' já declarada anteriormente.", name)).
		WithCode(ErrRedeclaredSymbol).
		WithPrimaryLabel(newLoc, "redeclared here").
		WithSecondaryLabel(prevLoc, "previously declared here").
		WithHelp("use a different name or remove one of the declarations")
}

// UndefinedSymbol creates a diagnostic for a reference to an undeclared name
func UndefinedSymbol(loc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("Variável '%s' não declarada.", name)).
		WithCode(ErrUndefinedSymbol).
		WithPrimaryLabel(loc, "not declared").
		WithHelp("declare it with `var " + name + " <type>;` before using it")
}

// TooManySymbols creates a diagnostic for a declaration that overflows a bounded table
func TooManySymbols(loc *source.Location, name string, capacity int) *Diagnostic {
	return NewError(fmt.Sprintf("Limite de %d símbolos excedido ao declarar '%s'.", capacity, name)).
		WithCode(ErrTooManySymbols).
		WithPrimaryLabel(loc, "declared here").
		WithHelp("raise `capacity` in semantica.toml or set it to 0 for no limit")
}

// NonNormalizedIdentifier warns about an identifier that changes under NFC normalization
func NonNormalizedIdentifier(loc *source.Location, name string) *Diagnostic {
	return NewWarning(fmt.Sprintf("identifier %q is not in Unicode NFC form", name)).
		WithCode(WarnNonNormalizedIdentifier).
		WithPrimaryLabel(loc, "normalized before lookup").
		WithNote("identifiers are compared byte for byte after normalization")
}
