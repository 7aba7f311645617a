// Package palindrome exposes the configurable palindrome checker built on the
// internal core: a normalization pipeline (lowercase, alphanumerics only)
// feeding a two-pointer symmetry scan, plus a strict exact-match variant.
package palindrome

import (
	"context"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	corepalindrome "github.com/baditaflorin/go_palindrome/internal/core/palindrome"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/go_palindrome/internal/warmup"
	"github.com/baditaflorin/l"
)

// Checker provides methods to verify the palindrome property of texts.
// It is safe for concurrent use: every check operates solely on its own
// input and produces a fresh result.
type Checker struct {
	checker    ports.SymmetryChecker
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// CheckerOption defines a functional option for configuring a Checker.
type CheckerOption func(*checkerConfig)

type checkerConfig struct {
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) CheckerOption {
	return func(cfg *checkerConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) CheckerOption {
	return func(cfg *checkerConfig) {
		cfg.Normalizer = n
	}
}

// WithFastNormalizer selects the precomputed-table normalizer.
func WithFastNormalizer() CheckerOption {
	return func(cfg *checkerConfig) {
		normFactory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = normFactory.CreateNormalizer(normalizer.FastNormalizerType)
	}
}

// WithOptimizedNormalizer selects the buffer-pooled normalizer.
func WithOptimizedNormalizer() CheckerOption {
	return func(cfg *checkerConfig) {
		normFactory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = normFactory.CreateNormalizer(normalizer.OptimizedNormalizerType)
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) CheckerOption {
	return func(cfg *checkerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(config warmup.WarmupConfig) CheckerOption {
	return func(cfg *checkerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Checker instance.
func New(opts ...CheckerOption) (*Checker, error) {
	config := &checkerConfig{
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	// Apply options
	for _, opt := range opts {
		opt(config)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	// Set up normalizer if not provided
	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}

	core, err := corepalindrome.NewChecker(config.Logger, config.Normalizer)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		checker:    core,
		logger:     config.Logger,
		normalizer: config.Normalizer,
		warmed:     false,
	}

	// Perform warm-up if configured
	if config.WarmUp {
		c.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return c, nil
}

// Check verifies the normalized form of text: case, whitespace and
// punctuation are ignored.
func (c *Checker) Check(ctx context.Context, text string) domain.Result {
	return c.checker.Check(ctx, text)
}

// CheckExact verifies text as given, with no normalization.
func (c *Checker) CheckExact(ctx context.Context, text string) domain.Result {
	return c.checker.CheckExact(ctx, text)
}

// IsPalindrome reports whether the normalized form of text is a palindrome.
func (c *Checker) IsPalindrome(ctx context.Context, text string) bool {
	return c.checker.Check(ctx, text).Symmetric
}

// IsPalindromeExact reports whether text is an exact mirror image of itself.
func (c *Checker) IsPalindromeExact(ctx context.Context, text string) bool {
	return c.checker.CheckExact(ctx, text).Symmetric
}

// Normalize returns the canonical comparison form of text using the
// checker's configured normalizer.
func (c *Checker) Normalize(text string) string {
	return c.normalizer.Normalize(text)
}

// WarmUp pre-touches the normalizer pools and checker paths.
func (c *Checker) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if c.warmed {
		return
	}

	manager := warmup.NewManager(c.logger, config)
	manager.RegisterChecker(c.checker)
	manager.RegisterNormalizer(c.normalizer)
	manager.WarmUp(ctx)

	c.warmed = true
}
