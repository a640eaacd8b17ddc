package array

import "sync"

// Pool provides sync.Pool-based Array reuse so the doubling cost of
// repeated workloads is paid once per pooled instance rather than once
// per loop iteration.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return New[T]()
			},
		},
	}
}

// Get returns an empty Array. A reused instance keeps its grown
// capacity but never exposes elements from its previous life. Callers
// must return it via Put when done.
func (p *Pool[T]) Get() *Array[T] {
	a := p.pool.Get().(*Array[T])
	a.reset()
	return a
}

// Put returns an Array to the pool for reuse.
// The caller must not use the array after calling Put.
func (p *Pool[T]) Put(a *Array[T]) {
	if a == nil {
		return
	}
	p.pool.Put(a)
}

// reset clears the live slots and marks the array empty, keeping the
// grown capacity.
func (a *Array[T]) reset() {
	var zero T
	for i := 0; i < a.size; i++ {
		a.data[i] = zero
	}
	a.size = 0
}
