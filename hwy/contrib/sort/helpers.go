package sort

import "github.com/ajroetker/go-dpsort/hwy"

// Helper sorts for short parts of a range. They work on a[low:high] in place
// and never allocate.

// insertionSort sorts a[low:high] by simple insertion.
// It does not read outside the range.
func insertionSort[T hwy.Lanes](a []T, low, high int) {
	for k := low + 1; k < high; k++ {
		ai := a[k]
		if ai < a[k-1] {
			i := k
			for {
				a[i] = a[i-1]
				i--
				if i <= low || ai >= a[i-1] {
					break
				}
			}
			a[i] = ai
		}
	}
}

// mixedInsertionSort sorts a[low:high], which must be preceded by an element
// no larger than any element of the range.
//
// The first quarter is sorted by pin insertion: each element is exchanged
// with a larger one taken from the tail, so the prefix only collects small
// elements. The tail is then inserted two elements at a time. Both phases
// rely on a[low-1] as the left sentinel and do no bounds checks of their own.
func mixedInsertionSort[T hwy.Lanes](a []T, low, high int) {
	end := high - ((3 * ((high - low) >> 2)) &^ 1)

	// Pin insertion sort on the prefix.
	p := high
	for low++; low < end; low++ {
		i := low
		ai := a[i]
		p--
		if pin := a[p]; ai > pin {
			ai = pin
			a[p] = a[i]
		}
		for ai < a[i-1] {
			a[i] = a[i-1]
			i--
		}
		a[i] = ai
	}

	// Pair insertion sort on the remainder. Its length is even.
	for ; low < high; low++ {
		i := low
		a1, a2 := a[i], a[i+1]
		low++

		if a1 > a2 {
			// Insert the larger one first, shifting by two.
			i--
			for a1 < a[i] {
				a[i+2] = a[i]
				i--
			}
			i++
			a[i+1] = a1

			i--
			for a2 < a[i] {
				a[i+1] = a[i]
				i--
			}
			a[i+1] = a2
		} else if a1 < a[i-1] {
			i--
			for a2 < a[i] {
				a[i+2] = a[i]
				i--
			}
			i++
			a[i+1] = a2

			i--
			for a1 < a[i] {
				a[i+1] = a[i]
				i--
			}
			a[i+1] = a1
		}
	}
}

// sortSamples orders the five sample positions with a fixed network:
// four elements first, then the middle one by insertion.
func sortSamples[T hwy.Lanes](a []T, e1, e2, e3, e4, e5 int) {
	if a[e1] > a[e4] {
		a[e1], a[e4] = a[e4], a[e1]
	}
	if a[e2] > a[e5] {
		a[e2], a[e5] = a[e5], a[e2]
	}
	if a[e4] > a[e5] {
		a[e4], a[e5] = a[e5], a[e4]
	}
	if a[e1] > a[e2] {
		a[e1], a[e2] = a[e2], a[e1]
	}
	if a[e2] > a[e4] {
		a[e2], a[e4] = a[e4], a[e2]
	}

	if a3 := a[e3]; a3 < a[e2] {
		if a3 < a[e1] {
			a[e3] = a[e2]
			a[e2] = a[e1]
			a[e1] = a3
		} else {
			a[e3] = a[e2]
			a[e2] = a3
		}
	} else if a3 > a[e4] {
		if a3 > a[e5] {
			a[e3] = a[e4]
			a[e4] = a[e5]
			a[e5] = a3
		} else {
			a[e3] = a[e4]
			a[e4] = a3
		}
	}
}
