package strings

import (
	"testing"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		singular string
		plural   string
		count    int
		expected string
	}{
		{"item", "items", 1, "item"},
		{"item", "items", 0, "items"},
		{"item", "items", 2, "items"},
		{"símbolo", "símbolos", 1, "símbolo"},
		{"símbolo", "símbolos", 3, "símbolos"},
	}

	for _, test := range tests {
		result := Pluralize(test.singular, test.plural, test.count)
		if result != test.expected {
			t.Errorf("Pluralize(%q, %q, %d) = %q, expected %q", test.singular, test.plural, test.count, result, test.expected)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "symbol", "symbols"); got != "1 symbol" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(0, "symbol", "symbols"); got != "0 symbols" {
		t.Errorf("Count(0) = %q", got)
	}
}
