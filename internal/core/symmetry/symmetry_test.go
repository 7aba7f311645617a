package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSymmetric(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"empty string", "", true},
		{"single character", "a", true},
		{"two equal characters", "aa", true},
		{"two different characters", "ab", false},
		{"odd length palindrome", "racecar", true},
		{"even length palindrome", "abba", true},
		{"near palindrome", "racecars", false},
		{"case sensitive", "Racecar", false},
		{"digits", "12321", true},
		{"spaces count", "a b a", true},
		{"unicode palindrome", "été", true},
		{"unicode non-palindrome", "été!", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsSymmetric(tc.text))
		})
	}
}

// The predicate itself is symmetric: reversing the input never changes the
// verdict.
func TestIsSymmetricInvariantUnderReversal(t *testing.T) {
	texts := []string{
		"", "a", "ab", "abba", "racecar", "race a car", "12321", "12345",
		"A man a plan a canal Panama", "été", "hello world",
	}

	for _, text := range texts {
		assert.Equal(t, IsSymmetric(text), IsSymmetric(reverse(text)),
			"verdict changed under reversal for %q", text)
	}
}

func TestIsSymmetricRunes(t *testing.T) {
	assert.True(t, IsSymmetricRunes(nil))
	assert.True(t, IsSymmetricRunes([]rune{}))
	assert.True(t, IsSymmetricRunes([]rune("rotor")))
	assert.False(t, IsSymmetricRunes([]rune("rotors")))
}

func reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
