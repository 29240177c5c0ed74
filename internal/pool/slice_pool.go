package pool

import "sync"

// stringSlicePool reduces allocations when META accumulates its string
// sequences (Author/License/Links) while parsing a chunk payload.
var stringSlicePool = sync.Pool{
	New: func() any { return &[]string{} },
}

// GetStringSlice retrieves a string slice from the pool with length 0
// and at least the requested capacity. The caller must call the
// returned cleanup function (typically via defer) once done.
func GetStringSlice(capacity int) ([]string, func()) {
	ptr, _ := stringSlicePool.Get().(*[]string)
	slice := (*ptr)[:0]

	if cap(slice) < capacity {
		slice = make([]string, 0, capacity)
	}
	*ptr = slice

	return slice, func() { stringSlicePool.Put(ptr) }
}
