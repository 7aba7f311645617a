package benchmark

import (
	"context"
	"strings"
	"testing"

	gopalindrome "github.com/baditaflorin/go_palindrome"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/pkg/palindrome"
)

// benchText mixes case, punctuation and length so the normalizers do real work.
var benchText = strings.Repeat("A man, a plan, a canal: Panama! ", 32)

func BenchmarkDefaultNormalizer(b *testing.B) {
	n := normalizer.NewDefaultNormalizer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Normalize(benchText)
	}
}

func BenchmarkOptimizedNormalizer(b *testing.B) {
	n := normalizer.NewOptimizedNormalizer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Normalize(benchText)
	}
}

func BenchmarkFastNormalizer(b *testing.B) {
	n := normalizer.NewFastNormalizer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Normalize(benchText)
	}
}

func BenchmarkIsPalindrome(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = gopalindrome.IsPalindrome(benchText)
	}
}

func BenchmarkIsPalindromeExact(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = gopalindrome.IsPalindromeExact(benchText)
	}
}

func BenchmarkCheckerFastNormalizer(b *testing.B) {
	checker, err := palindrome.New(palindrome.WithFastNormalizer())
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = checker.Check(ctx, benchText)
	}
}

func BenchmarkCheckerParallel(b *testing.B) {
	checker, err := palindrome.New(palindrome.WithOptimizedNormalizer())
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = checker.Check(ctx, benchText)
		}
	})
}
