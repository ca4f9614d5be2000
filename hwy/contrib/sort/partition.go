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

import "github.com/ajroetker/go-dpsort/hwy"

// partitionWithTwoPivots splits a[low:high] around a[pivotIndex1] <=
// a[pivotIndex2] into three parts:
//
//	a[low:lower]      < pivot1
//	a[lower]         == pivot1
//	a[lower+1:upper]  in [pivot1, pivot2]
//	a[upper]         == pivot2
//	a[upper+1:high]   > pivot2
//
// The pivots must be taken from sorted samples so that an element
// between them lies at each end of the scan, which bounds the scans.
func partitionWithTwoPivots[T hwy.Lanes](a []T, low, high, pivotIndex1, pivotIndex2 int) (lower, upper int) {
	end := high - 1
	lower, upper = low, end

	pivot1, pivot2 := a[pivotIndex1], a[pivotIndex2]

	// The first and last elements take the places of the pivots, leaving
	// a[low] and a[end] free for the final pivot positions.
	a[pivotIndex1] = a[lower]
	a[pivotIndex2] = a[upper]

	// Skip elements already in place at both ends.
	for lower++; a[lower] < pivot1; lower++ {
	}
	for upper--; a[upper] > pivot2; upper-- {
	}

	// Invariants while k walks down:
	//
	//	a[low+1:lower+1]  < pivot1
	//	a[k+1:upper]      in [pivot1, pivot2]
	//	a[upper:end]      > pivot2
	lower--
	upper++
	for k := upper - 1; k > lower; k-- {
		ak := a[k]

		if ak < pivot1 {
			for lower++; a[lower] < pivot1; lower++ {
			}
			if lower > k {
				lower = k
				break
			}
			if a[lower] > pivot2 {
				upper--
				a[k] = a[upper]
				a[upper] = a[lower]
			} else {
				a[k] = a[lower]
			}
			a[lower] = ak
		} else if ak > pivot2 {
			upper--
			a[k] = a[upper]
			a[upper] = ak
		}
	}

	a[low] = a[lower]
	a[lower] = pivot1
	a[end] = a[upper]
	a[upper] = pivot2

	return lower, upper
}

// partitionWithOnePivot splits a[low:high] around a[pivotIndex] into
// a[low:lower] < pivot, a[lower:upper] == pivot and a[upper:high] > pivot.
func partitionWithOnePivot[T hwy.Lanes](a []T, low, high, pivotIndex int) (lower, upper int) {
	lower, upper = low, high

	pivot := a[pivotIndex]
	a[pivotIndex] = a[lower]

	// Invariants while k walks down:
	//
	//	a[low+1:lower+1]  < pivot
	//	a[k:upper]       == pivot
	//	a[upper:high]     > pivot
	for k := upper - 1; k > lower; k-- {
		ak := a[k]

		if ak == pivot {
			continue
		}
		a[k] = pivot

		if ak < pivot {
			for lower++; a[lower] < pivot; lower++ {
			}
			if a[lower] > pivot {
				upper--
				a[upper] = a[lower]
			}
			a[lower] = ak
		} else {
			upper--
			a[upper] = ak
		}
	}

	a[low] = a[lower]
	a[lower] = pivot

	return lower, upper
}
