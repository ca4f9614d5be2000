package sort

// countingSort sorts a[low:high] of an 8 or 16-bit integer kind by counting
// occurrences of every value, then writing the values back from the top.
func (e *engine[T]) countingSort(a []T, low, high int) {
	e.note(pathCounting)

	width := e.kind.Width
	mask := uint64(1)<<width - 1
	var sign uint64
	if e.kind.Signed {
		sign = 1 << (width - 1)
	}

	count := make([]int, 1<<width)
	for i := low; i < high; i++ {
		count[uint64(a[i])&mask^sign]++
	}

	shift := 64 - width
	for idx := len(count) - 1; high > low; idx-- {
		n := count[idx]
		if n == 0 {
			continue
		}

		u := uint64(idx) ^ sign
		var v T
		if e.kind.Signed {
			v = T(int64(u<<shift) >> shift)
		} else {
			v = T(u)
		}
		for ; n > 0; n-- {
			high--
			a[high] = v
		}
	}
}
