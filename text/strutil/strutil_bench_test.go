package strutil

import (
	"strings"
	"testing"
)

func BenchmarkIsPalindrome(b *testing.B) {
	half := strings.Repeat("A man, a plan: ", 256)
	s := half + ReverseString(half)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if !IsPalindrome(s) {
			b.Fatal("expected palindrome")
		}
	}
}

func BenchmarkRemoveDuplicates(b *testing.B) {
	s := strings.Repeat("the quick brown fox jumps over the lazy dog ", 64)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = RemoveDuplicates(s)
	}
}

func BenchmarkReverse(b *testing.B) {
	data := make([]int, 4096)
	for i := range data {
		data[i] = i
	}
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		Reverse(data)
	}
}
