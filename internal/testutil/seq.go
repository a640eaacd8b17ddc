package testutil

import (
	"math/rand"
	"testing"
)

// IntRange returns the n sequential values [start, start+n).
func IntRange(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// ShuffledInts returns a permutation of [0, n) generated from a fixed
// seed for reproducibility.
func ShuffledInts(seed int64, n int) []int {
	rng := rand.New(rand.NewSource(seed))
	return rng.Perm(n)
}

// RequireSameInts fails t if got and want differ in length or in any
// element.
func RequireSameInts(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
