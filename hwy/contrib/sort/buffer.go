package sort

import "runtime/debug"

// bufferLimit returns the largest scratch buffer, in elements of elemBytes
// bytes, allowed by maxBytes. Zero maxBytes selects a sixteenth of the
// runtime memory limit, at most maxBufferSize bytes; a negative one
// disables buffers.
func bufferLimit(maxBytes int64, elemBytes int) int {
	if maxBytes < 0 {
		return 0
	}
	if maxBytes == 0 {
		// A negative input reads the current limit without changing it.
		maxBytes = debug.SetMemoryLimit(-1) >> 4
	}
	maxBytes = min(maxBytes, maxBufferSize)
	return int(maxBytes / int64(elemBytes))
}

// tryAllocate returns a scratch buffer of length n, or nil when n exceeds
// the buffer limit.
func (e *engine[T]) tryAllocate(n int) []T {
	if n > e.maxBuffer {
		return nil
	}
	return make([]T, n)
}
