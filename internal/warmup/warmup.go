package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// WarmupConfig defines configuration for warming up the system before it
// starts serving real traffic. Warming touches the normalizer pools and
// decision tables so first-request latency stays flat.
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration.
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations.
type Manager struct {
	logger      ports.Logger
	checkers    []ports.SymmetryChecker
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterChecker adds a checker to be warmed up.
func (wm *Manager) RegisterChecker(checker ports.SymmetryChecker) {
	wm.checkers = append(wm.checkers, checker)
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.checkers)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	wm.warmUpNormalizers(warmupCtx)
	wm.warmUpCheckers(warmupCtx)

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpNormalizers runs warmup for all registered normalizers.
func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	sampleText := generateSampleText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					// Continue
				}

				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(sampleText)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpCheckers runs warmup for all registered checkers.
func (wm *Manager) warmUpCheckers(ctx context.Context) {
	if len(wm.checkers) == 0 {
		return
	}

	wm.logger.Debug("Warming up checkers", "count", len(wm.checkers))

	// Exercise both verdict paths: a mirrored sample that passes and a plain
	// sample that fails.
	plain := generateSampleText(wm.config.SampleTextSize)
	mirrored := generateMirroredText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					// Continue
				}

				for _, checker := range wm.checkers {
					if j%2 == 0 {
						_ = checker.Check(ctx, mirrored)
						_ = checker.CheckExact(ctx, mirrored)
					} else {
						_ = checker.Check(ctx, plain)
						_ = checker.CheckExact(ctx, plain)
					}
				}
			}
		}()
	}

	wg.Wait()
}

// Helper functions for generating warmup data

// generateSampleText creates sample text of approximately the specified size.
func generateSampleText(size int) string {
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"hello", "world", "lorem", "ipsum", "dolor", "sit", "amet",
	}

	var sb strings.Builder
	wordsNeeded := size / 5 // Assuming average word length of 5

	for i := 0; i < wordsNeeded; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}

	result := sb.String()
	if len(result) > size {
		return result[:size]
	}
	return result
}

// generateMirroredText creates a symmetric text of approximately the
// specified size by reflecting a sample around its midpoint.
func generateMirroredText(size int) string {
	half := []rune(generateSampleText(size / 2))

	mirrored := make([]rune, 0, len(half)*2)
	mirrored = append(mirrored, half...)
	for i := len(half) - 1; i >= 0; i-- {
		mirrored = append(mirrored, half[i])
	}
	return string(mirrored)
}
