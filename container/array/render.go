package array

import (
	"fmt"
	"strings"
)

// String renders each live element in order followed by one "_" marker
// per unused slot, plus the current size and capacity:
//
//	[10, 20, _, _] (size: 2, capacity: 4)
//
// Pure and side-effect free; intended for diagnostics. O(n) in the
// capacity. Elements render with fmt.Sprint.
func (a *Array[T]) String() string {
	slots := make([]string, 0, len(a.data))
	for i := 0; i < a.size; i++ {
		slots = append(slots, fmt.Sprint(a.data[i]))
	}
	for i := a.size; i < len(a.data); i++ {
		slots = append(slots, "_")
	}
	return fmt.Sprintf("[%s] (size: %d, capacity: %d)",
		strings.Join(slots, ", "), a.size, len(a.data))
}
