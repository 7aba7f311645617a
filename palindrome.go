// palindrome.go
// Package palindrome verifies the forward/backward symmetry of character
// sequences. Two checks are provided:
//
//   - IsPalindrome normalizes the input first: it lowercases every character
//     and drops everything that is not a letter or digit, then tests the
//     canonical sequence against its reverse.
//   - IsPalindromeExact tests the input as given, so case, spaces and
//     punctuation all take part in the comparison.
//
// The symmetry test walks two indices inward from both ends rather than
// building a reversed copy. The empty sequence and single-character sequences
// are symmetric by definition.
//
// This file carries the original self-contained API. The configurable
// checker with pluggable normalizers lives in pkg/palindrome.
package palindrome

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/l"
)

// normalize converts the input text to its canonical comparison form: each
// letter or digit is lowercased and kept, every other character is dropped.
// Order is preserved and the result may be empty.
func normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}

// isSymmetric reports whether runes reads identically in reverse, comparing
// from both ends toward the middle.
func isSymmetric(runes []rune) bool {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// IsPalindrome reports whether text is a palindrome, ignoring case, spaces
// and punctuation. Only alphanumeric characters take part in the comparison.
func IsPalindrome(text string) bool {
	return isSymmetric([]rune(normalize(text)))
}

// IsPalindromeExact reports whether text is an exact mirror image of itself.
// This check is case-sensitive and counts every character, spaces and
// punctuation included.
func IsPalindromeExact(text string) bool {
	return isSymmetric([]rune(text))
}

// Normalize exposes the canonical comparison form of text: lower-case
// alphanumeric characters only.
func Normalize(text string) string {
	return normalize(text)
}

// Result holds the outcome of a palindrome check.
type Result struct {
	// Name of the check.
	Name string
	// Symmetric is the verdict.
	Symmetric bool
	// Input is the raw text as received.
	Input string
	// Compared is the sequence that was actually tested.
	Compared string
	// Length is the number of characters in Compared.
	Length int
}

// CheckWithDefaults runs the normalized palindrome check and returns the full
// result, including the canonical sequence that was compared.
func CheckWithDefaults(text string) Result {
	canonical := normalize(text)
	runes := []rune(canonical)
	return Result{
		Name:      "palindrome",
		Symmetric: isSymmetric(runes),
		Input:     text,
		Compared:  canonical,
		Length:    len(runes),
	}
}

// CheckExactWithDefaults runs the exact palindrome check and returns the full
// result.
func CheckExactWithDefaults(text string) Result {
	runes := []rune(text)
	return Result{
		Name:      "palindrome_exact",
		Symmetric: isSymmetric(runes),
		Input:     text,
		Compared:  text,
		Length:    len(runes),
	}
}

// Config holds configuration options for the logging checker.
type Config struct {
	// Logger for tracing check steps.
	Logger l.Logger
}

// Option defines a functional option for configuring the checker.
type Option func(*Config)

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// Checker runs palindrome checks with logging of each step.
type Checker struct {
	config Config
}

// New creates a new Checker with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*Checker, error) {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		logger, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger
	}
	return &Checker{config: cfg}, nil
}

// Check runs the normalized palindrome check, logging the canonical form and
// the verdict.
func (c *Checker) Check(text string) Result {
	c.config.Logger.Debug("Starting palindrome check", "input", text)

	result := CheckWithDefaults(text)

	c.config.Logger.Info("Computed palindrome verdict",
		"symmetric", result.Symmetric,
		"compared", result.Compared,
		"length", result.Length,
	)
	return result
}

// CheckExact runs the exact palindrome check, logging the verdict.
func (c *Checker) CheckExact(text string) Result {
	c.config.Logger.Debug("Starting exact palindrome check", "input", text)

	result := CheckExactWithDefaults(text)

	c.config.Logger.Info("Computed exact palindrome verdict",
		"symmetric", result.Symmetric,
		"length", result.Length,
	)
	return result
}
