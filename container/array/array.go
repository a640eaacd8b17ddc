package array

// initialCapacity is the number of slots a fresh Array allocates.
// Growth doubles from here, so capacity is always a power of two.
const initialCapacity = 2

// Array is a growable contiguous container. The backing buffer holds
// len(data) slots of which the first size hold live elements; the
// remainder are zero-value placeholders and are never read as data.
//
// The zero value grows on first use; New is the documented constructor.
type Array[T any] struct {
	data []T
	size int
}

// New returns an empty Array with the initial capacity of 2.
func New[T any]() *Array[T] {
	return &Array[T]{data: make([]T, initialCapacity)}
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the total number of allocated slots.
func (a *Array[T]) Cap() int {
	return len(a.data)
}

// Append adds v after the last element, doubling the backing storage
// first if the array is full. Amortized O(1).
func (a *Array[T]) Append(v T) {
	if a.size == len(a.data) {
		a.grow()
	}
	a.data[a.size] = v
	a.size++
}

// Insert places v at index, shifting the elements at [index, size) one
// slot to the right. index may equal Len, which appends. O(n) for the
// shift plus O(n) when growth is triggered.
//
// Returns ErrOutOfRange without mutating the array if index is outside
// [0, Len].
func (a *Array[T]) Insert(index int, v T) error {
	if index < 0 || index > a.size {
		return &RangeError{Op: "insert", Index: index, Size: a.size}
	}
	if a.size == len(a.data) {
		a.grow()
	}

	// Shift strictly from the high end downward so every slot is read
	// before it is overwritten.
	for i := a.size - 1; i >= index; i-- {
		a.data[i+1] = a.data[i]
	}

	a.data[index] = v
	a.size++
	return nil
}

// Delete removes and returns the element at index, shifting the
// elements at (index, size) one slot to the left to close the gap.
// Deleting the last element shifts nothing. O(n).
//
// Returns ErrOutOfRange without mutating the array if index is outside
// [0, Len).
func (a *Array[T]) Delete(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, &RangeError{Op: "delete", Index: index, Size: a.size}
	}
	deleted := a.data[index]

	// Shift from the low end upward; the opposite direction of Insert,
	// again so every slot is read before it is overwritten.
	for i := index; i < a.size-1; i++ {
		a.data[i] = a.data[i+1]
	}

	a.size--
	// Clear the vacated trailing slot so it is never mistaken for live
	// data and any reference held there is released.
	var zero T
	a.data[a.size] = zero
	return deleted, nil
}

// Get returns the element at index without mutating the array. O(1).
//
// Returns ErrOutOfRange if index is outside [0, Len).
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, &RangeError{Op: "get", Index: index, Size: a.size}
	}
	return a.data[index], nil
}

// grow doubles the capacity, copies the live elements in order into the
// fresh buffer, and installs it. The remainder of the new buffer holds
// zero values. A zero-value Array allocates the initial capacity here.
func (a *Array[T]) grow() {
	capacity := len(a.data) * 2
	if capacity == 0 {
		capacity = initialCapacity
	}

	grown := make([]T, capacity)
	copy(grown, a.data[:a.size])
	a.data = grown
}
