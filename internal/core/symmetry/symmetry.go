// Package symmetry implements the pure sequence-reversal predicate that the
// palindrome checks are built on. The functions here make no assumption about
// normalization: they compare whatever characters they are handed.
package symmetry

// IsSymmetric reports whether text reads identically in reverse, comparing
// Unicode code points from both ends toward the middle. It returns false at
// the first mismatch and true once the indices meet or cross, so the empty
// string and single-character strings are always symmetric.
func IsSymmetric(text string) bool {
	return IsSymmetricRunes([]rune(text))
}

// IsSymmetricRunes is the rune-slice form of IsSymmetric. It walks two
// indices inward instead of materializing a reversed copy.
func IsSymmetricRunes(runes []rune) bool {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
