// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

// sort sorts a[low:high] with dual-pivot quicksort.
//
// bits is the recursion token: it grows by 2 per partitioning step and its
// lowest bit is set for every part that is not leftmost, which guarantees
// a[low-1] is no larger than any element of the part. s is the parallel
// context, nil when sorting sequentially.
//
// Right parts are sorted by recursion (or forked); the loop continues on
// the left part.
func (e *engine[T]) sort(s *sorter[T], a []T, bits, low, high int) {
	for {
		size := high - low

		// Small non-leftmost parts use the pivot to the left as sentinel.
		if size < maxMixedInsertionSortSize+bits && bits&1 > 0 {
			e.note(pathMixedInsertion)
			mixedInsertionSort(a, low, high)
			return
		}

		// Small leftmost parts.
		if size < maxInsertionSortSize {
			e.note(pathInsertion)
			insertionSort(a, low, high)
			return
		}

		// Highly structured data is finished by merging its runs.
		if size > minMergingSortSize*bits && e.tryMergingSort(s, a, low, high) {
			e.note(pathMerging)
			return
		}

		// Five evenly spaced samples around the center.
		step := (size >> 2) + (size >> 3) + (size >> 7)
		e1 := low + step
		e5 := high - step
		e3 := int(uint(e1+e5) >> 1)
		e2 := int(uint(e1+e3) >> 1)
		e4 := int(uint(e3+e5) >> 1)

		// Any inversion among the unsorted samples marks the part as random.
		random := a[e1] > a[e2] || a[e2] > a[e3] || a[e3] > a[e4] || a[e4] > a[e5]

		sortSamples(a, e1, e2, e3, e4, e5)

		if random && size > minRadixSortSize && e.tryRadixSort(s, a, low, high) {
			e.note(pathRadix)
			return
		}

		// Too many poor partitions.
		if bits += 2; bits > maxRecursionDepth {
			e.note(pathHeap)
			heapSort(a, low, high)
			return
		}

		var lower, upper int

		if a[e1] < a[e2] && a[e2] < a[e3] && a[e3] < a[e4] && a[e4] < a[e5] {
			// Distinct samples: the first and fifth become the pivots and
			// the middle part is sorted separately.
			e.note(pathTwoPivots)
			lower, upper = partitionWithTwoPivots(a, low, high, e1, e5)

			e.sortPart(s, a, bits|1, lower+1, upper)
			e.sortPart(s, a, bits|1, upper+1, high)
		} else {
			// Repeated samples: one pivot, equal elements stay in the middle.
			// The third sample is the median of all five.
			e.note(pathOnePivot)
			lower, upper = partitionWithOnePivot(a, low, high, e3)

			e.sortPart(s, a, bits|1, upper, high)
		}

		high = lower
	}
}

// sortPart sorts a non-leftmost part, forking it when it is large enough
// and a parallel context exists.
func (e *engine[T]) sortPart(s *sorter[T], a []T, bits, low, high int) {
	if s != nil && high-low > minParallelSortSize {
		s.fork(bits, low, high)
		return
	}
	e.sort(s, a, bits, low, high)
}
