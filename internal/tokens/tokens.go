package tokens

import (
	"fmt"
	"io"

	"semantica/colors"
	"semantica/internal/source"
)

type TOKEN string

const (
	//keywords
	VAR_TOKEN   TOKEN = "var"
	TRUE_TOKEN  TOKEN = "true"
	FALSE_TOKEN TOKEN = "false"

	IDENTIFIER_TOKEN TOKEN = "identifier"
	NUMBER_TOKEN     TOKEN = "numeric literal"
	STRING_TOKEN     TOKEN = "string literal"

	EQUALS_TOKEN    TOKEN = "="
	SEMICOLON_TOKEN TOKEN = ";"

	EOF_TOKEN TOKEN = "end_of_file"
)

var keyWordsMap = map[TOKEN]bool{
	VAR_TOKEN:   true,
	TRUE_TOKEN:  true,
	FALSE_TOKEN: true,
}

func IsKeyword(token string) bool {
	return keyWordsMap[TOKEN(token)]
}

type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

// Location returns the span of the token in filename
func (t *Token) Location(filename *string) *source.Location {
	start, end := t.Start, t.End
	return source.NewLocation(filename, &start, &end)
}

func (t *Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	if t.Value == string(t.Kind) {
		fmt.Fprintf(w, "%q\n", t.Value)
	} else {
		fmt.Fprintf(w, "%q ('%v')\n", t.Value, t.Kind)
	}
}

func NewToken(kind TOKEN, value string, start source.Position, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}
