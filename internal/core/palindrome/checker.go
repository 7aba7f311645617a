package palindrome

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/core/symmetry"
	"github.com/baditaflorin/go_palindrome/internal/pool"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// Check names reported in domain.Result.
const (
	CheckName      = "palindrome"
	CheckNameExact = "palindrome_exact"
)

// Checker implements the palindrome verification on top of a normalizer.
// Both checks are total: any input, including the empty string, produces a
// verdict and never an error.
type Checker struct {
	logger     ports.Logger
	normalizer ports.Normalizer
	runePool   *pool.RuneBufferPool
}

// NewChecker creates a new palindrome checker. The logger and normalizer are
// required collaborators.
func NewChecker(logger ports.Logger, normalizer ports.Normalizer) (*Checker, error) {
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer must not be nil")
	}

	return &Checker{
		logger:     logger,
		normalizer: normalizer,
		runePool:   pool.NewRuneBufferPool(1024),
	}, nil
}

// Check verifies whether the normalized form of text is a palindrome.
// Case, whitespace and punctuation are ignored; only alphanumeric characters
// take part in the comparison.
func (c *Checker) Check(ctx context.Context, text string) domain.Result {
	c.logger.Debug("Starting palindrome check", "input", text)

	details := make(map[string]interface{})

	canonical := c.normalizer.Normalize(text)
	c.logger.Debug("Normalized input", "canonical", canonical)

	// Check for context cancellation.
	select {
	case <-ctx.Done():
		c.logger.Error("Check cancelled", "error", ctx.Err())
		details["error"] = "check cancelled"
		return domain.Result{
			Name:    CheckName,
			Input:   text,
			Details: details,
		}
	default:
		// continue
	}

	return c.verdict(CheckName, text, canonical, details)
}

// CheckExact verifies whether text is an exact mirror image of itself.
// No normalization is applied: case, spaces and punctuation all count.
func (c *Checker) CheckExact(ctx context.Context, text string) domain.Result {
	c.logger.Debug("Starting exact palindrome check", "input", text)

	details := make(map[string]interface{})

	select {
	case <-ctx.Done():
		c.logger.Error("Check cancelled", "error", ctx.Err())
		details["error"] = "check cancelled"
		return domain.Result{
			Name:    CheckNameExact,
			Input:   text,
			Details: details,
		}
	default:
		// continue
	}

	return c.verdict(CheckNameExact, text, text, details)
}

func (c *Checker) verdict(name, input, compared string, details map[string]interface{}) domain.Result {
	// Decode into a pooled rune buffer; the result only keeps the verdict and
	// the string form, so the buffer can be reused across calls.
	buffer := c.runePool.Get()
	defer c.runePool.Put(buffer)

	runes := (*buffer)[:0]
	for _, r := range compared {
		runes = append(runes, r)
	}
	*buffer = runes

	symmetric := symmetry.IsSymmetricRunes(runes)
	length := len(runes)

	details["compared"] = compared
	details["length"] = length

	c.logger.Debug("Computed palindrome verdict",
		"name", name,
		"symmetric", symmetric,
		"length", length,
	)

	return domain.Result{
		Name:      name,
		Symmetric: symmetric,
		Input:     input,
		Compared:  compared,
		Length:    length,
		Details:   details,
	}
}
