package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_palindrome/internal/pool"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// OptimizedNormalizer implements an optimized normalization strategy with
// buffer pooling and a precomputed decision table for ASCII input.
type OptimizedNormalizer struct {
	// Decision table for ASCII characters (0-127)
	// 0 = drop
	// 1 = keep as is
	// 2 = convert to lowercase
	asciiTable [128]byte

	bytePool *pool.BufferPool
}

// NewOptimizedNormalizer creates a new optimized normalizer.
func NewOptimizedNormalizer() ports.Normalizer {
	n := &OptimizedNormalizer{
		bytePool: pool.NewBufferPool(8192), // 8K bytes initial capacity
	}

	for i := 0; i < 128; i++ {
		r := rune(i)
		switch {
		case unicode.IsLower(r) || unicode.IsDigit(r):
			n.asciiTable[i] = 1
		case unicode.IsUpper(r):
			n.asciiTable[i] = 2
		default:
			// Whitespace, punctuation and control characters are dropped.
			n.asciiTable[i] = 0
		}
	}

	return n
}

// Normalize returns the lower-case alphanumeric projection of text, reusing
// pooled buffers to keep allocations low.
func (n *OptimizedNormalizer) Normalize(text string) string {
	// Fast path for empty strings
	if len(text) == 0 {
		return ""
	}

	// Check for ASCII-only string first (optimization)
	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			asciiOnly = false
			break
		}
	}

	// Get a reusable buffer from the pool
	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	// Ensure the buffer has adequate capacity
	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0] // Reset length while keeping capacity

	if asciiOnly {
		// Fast path for ASCII-only strings
		for i := 0; i < len(text); i++ {
			b := text[i]
			switch n.asciiTable[b] {
			case 1: // Keep as is
				*buffer = append(*buffer, b)
			case 2: // Convert to lowercase (ASCII)
				*buffer = append(*buffer, b+('a'-'A'))
			}
		}
		return string(*buffer)
	}

	// Slower path for mixed ASCII/Unicode strings
	for _, r := range text {
		if r < 128 {
			switch n.asciiTable[r] {
			case 1:
				*buffer = append(*buffer, byte(r))
			case 2:
				*buffer = append(*buffer, byte(r)+('a'-'A'))
			}
		} else if unicode.IsLetter(r) || unicode.IsDigit(r) {
			lower := unicode.ToLower(r)
			*buffer = append(*buffer, []byte(string(lower))...)
		}
	}

	return string(*buffer)
}

// FastNormalizer offers an even faster normalization with pre-cached
// decisions for ASCII characters and pooled string builders.
type FastNormalizer struct {
	// Pre-computed decision table for ASCII characters (0-127)
	asciiTable [128]struct {
		keep bool
		char rune
	}

	builderPool *pool.StringBuilderPool
}

// NewFastNormalizer creates a new fast normalizer with precomputed tables.
func NewFastNormalizer() ports.Normalizer {
	n := &FastNormalizer{
		builderPool: pool.NewStringBuilderPool(),
	}

	for i := 0; i < 128; i++ {
		r := rune(i)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n.asciiTable[i] = struct {
				keep bool
				char rune
			}{
				keep: true,
				char: unicode.ToLower(r),
			}
		}
	}

	return n
}

// Normalize performs fast normalization with pre-computed decisions for ASCII.
func (n *FastNormalizer) Normalize(text string) string {
	// Fast path for empty strings
	if len(text) == 0 {
		return ""
	}

	sb := n.builderPool.Get()
	defer n.builderPool.Put(sb)

	for _, r := range text {
		if r < 128 {
			// Use the precomputed table for ASCII
			entry := n.asciiTable[r]
			if entry.keep {
				sb.WriteRune(entry.char)
			}
		} else if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

// NormalizerFactory creates the appropriate normalizer based on performance
// requirements.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType selects which normalizer the factory creates.
type NormalizerType int

const (
	// DefaultNormalizerType is the original rune-loop normalizer
	DefaultNormalizerType NormalizerType = iota
	// OptimizedNormalizerType uses buffer pooling and an ASCII decision table
	OptimizedNormalizerType
	// FastNormalizerType uses precomputed tables and is optimized for ASCII
	FastNormalizerType
)

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer()
	case FastNormalizerType:
		return NewFastNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
