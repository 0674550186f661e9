package diagnostics

// Diagnostic codes
const (
	// Lexer errors (L prefix)
	ErrUnexpectedCharacter = "L0001"
	ErrUnterminatedString  = "L0002"

	// Parser errors (P prefix)
	ErrUnexpectedToken = "P0001"

	// Semantic errors (T prefix)
	ErrUndefinedSymbol  = "T0002"
	ErrRedeclaredSymbol = "T0003"
	ErrTooManySymbols   = "T0028"

	// Warnings (W prefix)
	WarnNonNormalizedIdentifier = "W0005"
)
