package normalizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// DefaultNormalizer implements the canonical normalization strategy: a single
// left-to-right pass that keeps alphanumeric characters (unicode.IsLetter or
// unicode.IsDigit), lowercases them, and discards everything else. Order is
// preserved and no character is duplicated.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize returns the canonical form of text. The result contains only
// lower-case alphanumeric characters and may be empty.
func (n *DefaultNormalizer) Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
