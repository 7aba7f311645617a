package ports

import (
	"context"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

// SymmetryChecker defines the interface for verifying that a character
// sequence reads identically in reverse.
type SymmetryChecker interface {
	// Check verifies the normalized form of text (case-insensitive,
	// non-alphanumerics ignored).
	Check(ctx context.Context, text string) domain.Result

	// CheckExact verifies text as given, without normalization.
	CheckExact(ctx context.Context, text string) domain.Result
}
