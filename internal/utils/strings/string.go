package strings

import "fmt"

func Pluralize(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count formats count followed by the matching noun form, e.g. "1 symbol"
func Count(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, Pluralize(singular, plural, count))
}
