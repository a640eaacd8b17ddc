package array

import (
	"strconv"
	"testing"
)

func BenchmarkAppend(b *testing.B) {
	sizes := []int{16, 256, 4096, 65536}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				a := New[int]()
				for j := 0; j < n; j++ {
					a.Append(j)
				}
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	a := New[int]()
	for i := 0; i < 1024; i++ {
		a.Append(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := a.Get(i & 1023); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsertDeleteFront(b *testing.B) {
	sizes := []int{64, 1024, 16384}
	for _, n := range sizes {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			a := New[int]()
			for i := 0; i < n; i++ {
				a.Append(i)
			}
			b.ReportAllocs()
			b.ResetTimer()

			// Front insert and delete exercise the full-length shifts.
			for i := 0; i < b.N; i++ {
				if err := a.Insert(0, i); err != nil {
					b.Fatal(err)
				}
				if _, err := a.Delete(0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPool(b *testing.B) {
	p := NewPool[int]()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		a := p.Get()
		for j := 0; j < 64; j++ {
			a.Append(j)
		}
		p.Put(a)
	}
}

func BenchmarkString(b *testing.B) {
	a := New[int]()
	for i := 0; i < 1000; i++ {
		a.Append(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = a.String()
	}
}
