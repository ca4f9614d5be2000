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

import (
	"sync"

	"github.com/ajroetker/go-dpsort/hwy"
	"github.com/ajroetker/go-dpsort/hwy/contrib/workerpool"
)

// tryMergingSort sorts a[low:high] by merging its natural runs. It returns
// false, leaving the range permuted but otherwise untouched in content,
// when the data does not look highly structured or no scratch buffer is
// available.
//
// Descending runs are reversed in place and constant runs are absorbed
// into their neighbours. A range that is a single run is finished without
// touching a buffer.
func (e *engine[T]) tryMergingSort(s *sorter[T], a []T, low, high int) bool {
	// run[i] is the start of the i-th non-descending run; run[count] is
	// the end of the last one.
	count := 1
	var run []int

	for k, last := low+1, low; k < high; {
		if a[k-1] < a[k] {
			// Ascending run.
			for k++; k < high && a[k-1] <= a[k]; k++ {
			}
		} else if a[k-1] > a[k] {
			// Descending run, reversed into ascending order.
			for k++; k < high && a[k-1] >= a[k]; k++ {
			}
			for i, j := last, k-1; i < j && a[i] > a[j]; i, j = i+1, j-1 {
				a[i], a[j] = a[j], a[i]
			}
			if k < high && a[k-1] < a[k] {
				continue
			}
		} else {
			// Constant run.
			for ak := a[k]; k < high && ak == a[k]; k++ {
			}
			if k < high {
				continue
			}
		}

		if run == nil {
			if k == high {
				// The whole range is monotonic and now ascending.
				return true
			}
			run = make([]int, min((high-low)>>6, maxRunCapacity)|8)
			run[0] = low
		} else if a[last-1] > a[last] {
			if count > maxFreeRuns && k-low < count*minRunSize {
				// Runs are too short.
				return false
			}
			if count++; count == len(run) {
				// Too many runs.
				return false
			}
		}

		last = k
		run[count] = last

		// A single element left at the end is checked against its
		// predecessor on the next pass.
		if k++; k == high {
			k--
		}
	}

	if count > 1 {
		var b []T
		offset := low
		if s != nil && s.b != nil {
			b, offset = s.b, s.offset
		} else if b = e.tryAllocate(high - low); b == nil {
			return false
		}
		e.mergeRuns(s, a, b, offset, true, run, 0, count)
	}
	return true
}

// mergeRuns merges the runs run[lo:hi+1] into a when aim is true, or into
// the buffer b otherwise. b[i-offset] stands for a[i].
func (e *engine[T]) mergeRuns(s *sorter[T], a, b []T, offset int, aim bool, run []int, lo, hi int) {
	if hi-lo == 1 {
		if !aim {
			copy(b[run[lo]-offset:run[hi]-offset], a[run[lo]:run[hi]])
		}
		return
	}

	// Split the runs into two parts of about the same length.
	mi := lo + 1
	for key := int(uint(run[lo]+run[hi]) >> 1); run[mi+1] <= key; mi++ {
	}

	e.mergeRuns(s, a, b, offset, !aim, run, lo, mi)
	e.mergeRuns(s, a, b, offset, !aim, run, mi, hi)

	dst, src := b, a
	k := run[lo] - offset
	lo1, hi1, lo2, hi2 := run[lo], run[mi], run[mi], run[hi]
	if aim {
		dst, src = a, b
		k = run[lo]
		lo1, hi1, lo2, hi2 = lo1-offset, hi1-offset, lo2-offset, hi2-offset
	}

	if s != nil && hi1-lo1 > minParallelSortSize {
		mergeInParallel(s.pool, dst, k, src, lo1, hi1, lo2, hi2)
	} else {
		mergeParts(dst, k, src, lo1, hi1, lo2, hi2)
	}
}

// mergeInParallel merges the sorted parts src[lo1:hi1] and src[lo2:hi2]
// into dst starting at k. The larger part is repeatedly halved at its
// median and the matching prefix of the other part is found by binary
// search; each pair of prefixes is merged by a forked task.
func mergeInParallel[T hwy.Lanes](pool *workerpool.Pool, dst []T, k int, src []T, lo1, hi1, lo2, hi2 int) {
	var wg sync.WaitGroup

	for {
		if hi1-lo1 < hi2-lo2 {
			lo1, lo2 = lo2, lo1
			hi1, hi2 = hi2, hi1
		}
		if hi1-lo1 < minParallelSortSize {
			break
		}

		mi1 := int(uint(lo1+hi1) >> 1)
		mi2 := hi2
		key := src[mi1]

		for mi0 := lo2; mi0 < mi2; {
			mid := int(uint(mi0+mi2) >> 1)
			if key > src[mid] {
				mi0 = mid + 1
			} else {
				mi2 = mid
			}
		}

		pk, plo1, pmi1, plo2, pmi2 := k, lo1, mi1, lo2, mi2
		pool.Fork(&wg, func() {
			mergeInParallel(pool, dst, pk, src, plo1, pmi1, plo2, pmi2)
		})

		k += mi2 - lo2 + mi1 - lo1
		lo1 = mi1
		lo2 = mi2
	}

	if lo1 < hi1 && lo2 < hi2 && src[hi1-1] > src[lo2] {
		mergeParts(dst, k, src, lo1, hi1, lo2, hi2)
	} else {
		copy(dst[k:], src[lo1:hi1])
		copy(dst[k+hi1-lo1:], src[lo2:hi2])
	}

	wg.Wait()
}

// mergeParts merges the non-empty sorted parts src[lo1:hi1] and
// src[lo2:hi2] into dst starting at k.
func mergeParts[T hwy.Lanes](dst []T, k int, src []T, lo1, hi1, lo2, hi2 int) {
	switch {
	case src[hi1-1] < src[hi2-1]:
		// The second part outlasts the first.
		for lo1 < hi1 {
			next := src[lo1]
			if next <= src[lo2] {
				dst[k] = src[lo1]
				k++
				lo1++
			}
			if next >= src[lo2] {
				dst[k] = src[lo2]
				k++
				lo2++
			}
		}
	case src[hi1-1] > src[hi2-1]:
		// The first part outlasts the second.
		for lo2 < hi2 {
			next := src[lo1]
			if next <= src[lo2] {
				dst[k] = src[lo1]
				k++
				lo1++
			}
			if next >= src[lo2] {
				dst[k] = src[lo2]
				k++
				lo2++
			}
		}
	default:
		for lo1 < hi1 && lo2 < hi2 {
			next := src[lo1]
			if next <= src[lo2] {
				dst[k] = src[lo1]
				k++
				lo1++
			}
			if next >= src[lo2] {
				dst[k] = src[lo2]
				k++
				lo2++
			}
		}
	}

	// At most one tail is left.
	k += copy(dst[k:], src[lo1:hi1])
	copy(dst[k:], src[lo2:hi2])
}
