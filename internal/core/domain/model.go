package domain

// Result holds the outcome of a symmetry verification. It is produced fresh
// per call and never shared between callers.
type Result struct {
	// Name of the check that produced this result ("palindrome" or
	// "palindrome_exact").
	Name string
	// Symmetric reports whether the compared sequence reads the same in
	// reverse.
	Symmetric bool
	// Input is the raw text as received.
	Input string
	// Compared is the sequence that was actually tested: the canonical form
	// for the normalized check, the raw input for the exact check.
	Compared string
	// Length is the number of characters (runes) in Compared.
	Length int
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}
