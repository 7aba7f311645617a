// Package textstat provides the text-measurement collaborators of the
// palindrome core: character and word counting plus a per-column summary of
// delimited tabular data. None of it holds state; every function is a pure
// transformation of its input.
package textstat

import "strings"

// Counts holds the basic size measurements of a text.
type Counts struct {
	// Chars is the number of Unicode code points in the text.
	Chars int
	// Words is the number of whitespace-separated fields.
	Words int
}

// CountChars returns the number of characters (runes) in text.
func CountChars(text string) int {
	return len([]rune(text))
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Count measures text once and returns both counts.
func Count(text string) Counts {
	return Counts{
		Chars: CountChars(text),
		Words: CountWords(text),
	}
}
