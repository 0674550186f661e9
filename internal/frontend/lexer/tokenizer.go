package lexer

import (
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"semantica/internal/diagnostics"
	"semantica/internal/source"
	"semantica/internal/tokens"
)

type regexHandler func(lex *Lexer, regex *regexp.Regexp)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

type Lexer struct {
	diagnostics *diagnostics.DiagnosticBag
	Tokens      []tokens.Token
	Position    source.Position
	sourceCode  string
	patterns    []regexPattern
	FilePath    string
}

func (lex *Lexer) advance(match string) {
	lex.Position.Advance(match)
}

func (lex *Lexer) push(token tokens.Token) {
	lex.Tokens = append(lex.Tokens, token)
}

func (lex *Lexer) remainder() string {
	return lex.sourceCode[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

func (lex *Lexer) location(start, end source.Position) *source.Location {
	return source.NewLocation(&lex.FilePath, &start, &end)
}

func New(filepath, content string, diag *diagnostics.DiagnosticBag) *Lexer {
	return &Lexer{
		sourceCode: content,
		Tokens:     make([]tokens.Token, 0),
		Position: source.Position{
			Line:   1,
			Column: 1,
			Index:  0,
		},

		diagnostics: diag,

		FilePath: filepath,

		patterns: []regexPattern{
			{regexp.MustCompile(`\s+`), skipHandler},                              // whitespace
			{regexp.MustCompile(`//.*`), skipHandler},                             // single line comments
			{regexp.MustCompile(`/\*[\s\S]*?\*/`), skipHandler},                   // multi line comments
			{regexp.MustCompile(`"[^"\n]*"`), stringHandler},                      // string literals
			{regexp.MustCompile(`"[^"\n]*`), unterminatedStringHandler},           // missing closing quote
			{regexp.MustCompile(`[0-9]+`), numberHandler},                         // integers
			{regexp.MustCompile(`[\p{L}_][\p{L}\p{M}\p{N}_]*`), identifierHandler}, // identifiers
			{regexp.MustCompile(`=`), defaultHandler(tokens.EQUALS_TOKEN)},
			{regexp.MustCompile(`;`), defaultHandler(tokens.SEMICOLON_TOKEN)},
		},
	}
}

func defaultHandler(token tokens.TOKEN) regexHandler {
	return func(lex *Lexer, _ *regexp.Regexp) {
		start := lex.Position
		lex.advance(string(token))
		end := lex.Position

		lex.push(tokens.NewToken(token, string(token), start, end))
	}
}

// identifierHandler pushes identifiers in NFC form so that canonically
// equivalent spellings name the same symbol.
func identifierHandler(lex *Lexer, regex *regexp.Regexp) {
	identifier := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(identifier)
	end := lex.Position

	if !norm.NFC.IsNormalString(identifier) {
		lex.diagnostics.Add(diagnostics.NonNormalizedIdentifier(lex.location(start, end), identifier))
		identifier = norm.NFC.String(identifier)
	}

	if tokens.IsKeyword(identifier) {
		lex.push(tokens.NewToken(tokens.TOKEN(identifier), identifier, start, end))
	} else {
		lex.push(tokens.NewToken(tokens.IDENTIFIER_TOKEN, identifier, start, end))
	}
}

func numberHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	lex.push(tokens.NewToken(tokens.NUMBER_TOKEN, match, start, end))
}

func stringHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	//exclude the quotes
	stringLiteral := match[1 : len(match)-1]
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	lex.push(tokens.NewToken(tokens.STRING_TOKEN, stringLiteral, start, end))
}

func unterminatedStringHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	lex.diagnostics.Add(
		diagnostics.NewError("unterminated string literal").
			WithCode(diagnostics.ErrUnterminatedString).
			WithPrimaryLabel(lex.location(start, end), "missing closing quote"),
	)
}

// skipHandler processes a token that should be skipped by the lexer.
func skipHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	lex.advance(match)
}

// Tokenize splits the source into tokens, always ending with an EOF token.
// Unrecognized characters are reported and skipped.
func (lex *Lexer) Tokenize(debug io.Writer) []tokens.Token {
	for !lex.atEOF() {
		matched := false

		for _, pattern := range lex.patterns {
			loc := pattern.regex.FindStringIndex(lex.remainder())

			if loc != nil && loc[0] == 0 {
				pattern.handler(lex, pattern.regex)
				matched = true
				break
			}
		}

		if !matched {
			r, size := utf8.DecodeRuneInString(lex.remainder())
			start := lex.Position
			lex.advance(lex.remainder()[:size])
			lex.diagnostics.Add(
				diagnostics.NewError(fmt.Sprintf("unrecognized character '%c'", r)).
					WithCode(diagnostics.ErrUnexpectedCharacter).
					WithPrimaryLabel(lex.location(start, lex.Position), ""),
			)
		}
	}

	lex.push(tokens.NewToken(tokens.EOF_TOKEN, "end of file", lex.Position, lex.Position))

	if debug != nil {
		for _, token := range lex.Tokens {
			token.Debug(debug, lex.FilePath)
		}
	}

	return lex.Tokens
}
