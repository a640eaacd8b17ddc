// Package array provides a growable contiguous container with explicit
// size/capacity bookkeeping and a doubling growth policy.
//
// An [Array] starts with capacity 2 and doubles its backing storage
// whenever it is full, so Append costs amortized O(1) while Get stays
// O(1). Insert and Delete shift elements to keep the live region
// contiguous and cost O(n) in the worst case. Capacity never shrinks.
//
// Out-of-range indices are reported through [ErrOutOfRange]; the
// concrete [*RangeError] carries the operation, the offending index,
// and the size at the time of the call:
//
//	v, err := a.Get(9)
//	if errors.Is(err, array.ErrOutOfRange) {
//		// handle invalid index
//	}
//
// An Array is not safe for concurrent use; callers that share one
// instance across goroutines must serialize access themselves. [Pool]
// recycles grown arrays across processing loops so repeated workloads
// do not pay the growth cost every time.
package array
