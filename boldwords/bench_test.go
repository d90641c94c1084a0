package boldwords_test

import (
	"strings"
	"testing"

	"github.com/harsh-govind/LeetCode-Solutions/boldwords"
)

// BenchmarkBoldWords measures a dense 500-byte subject against 50 short words.
func BenchmarkBoldWords(b *testing.B) {
	s := strings.Repeat("abcde", 100)
	words := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		words = append(words, s[i%5:i%5+1+i%3])
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = boldwords.BoldWords(words, s)
	}
}
