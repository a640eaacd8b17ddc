package strutil

import (
	"strings"
	"unicode"
)

// Reverse reverses s in place with two pointers moving inward and
// returns the same slice. O(n).
func Reverse[T any](s []T) []T {
	for left, right := 0, len(s)-1; left < right; left, right = left+1, right-1 {
		s[left], s[right] = s[right], s[left]
	}
	return s
}

// ReverseString returns s with its runes in reverse order. The input is
// left untouched; strings are immutable, so this is the string-facing
// form of Reverse.
func ReverseString(s string) string {
	return string(Reverse([]rune(s)))
}

// IsPalindrome reports whether s reads the same forward and backward,
// comparing case-insensitively and skipping non-alphanumeric runes.
// The empty string and single-rune strings are palindromes. O(n).
func IsPalindrome(s string) bool {
	runes := []rune(s)
	left, right := 0, len(runes)-1

	for left < right {
		for left < right && !isAlnum(runes[left]) {
			left++
		}
		for left < right && !isAlnum(runes[right]) {
			right--
		}

		if unicode.ToLower(runes[left]) != unicode.ToLower(runes[right]) {
			return false
		}
		left++
		right--
	}

	return true
}

// RemoveDuplicates returns s with every repeated rune removed, keeping
// the first occurrence of each and preserving the original order.
// O(n) time, O(n) auxiliary space for the seen set.
func RemoveDuplicates(s string) string {
	seen := make(map[rune]struct{}, len(s))

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		b.WriteRune(r)
	}

	return b.String()
}

// isAlnum reports whether r is a letter or a digit.
func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
