package testutil

import "testing"

func TestIntRange(t *testing.T) {
	got := IntRange(10, 4)
	want := []int{10, 11, 12, 13}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestIntRangeEmpty(t *testing.T) {
	if got := IntRange(0, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestShuffledIntsReproducible(t *testing.T) {
	a := ShuffledInts(3, 50)
	b := ShuffledInts(3, 50)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestShuffledIntsIsPermutation(t *testing.T) {
	s := ShuffledInts(9, 100)
	if len(s) != 100 {
		t.Fatalf("len = %d, want 100", len(s))
	}

	seen := make([]bool, 100)
	for _, v := range s {
		if v < 0 || v >= 100 {
			t.Fatalf("value %d out of range", v)
		}
		if seen[v] {
			t.Fatalf("value %d appears twice", v)
		}
		seen[v] = true
	}
}
