package ports

// Normalizer defines the interface for canonicalizing a character sequence
// before a symmetry comparison. Implementations must be pure: same input,
// same output, no side effects.
type Normalizer interface {
	Normalize(text string) string
}
