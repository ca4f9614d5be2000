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

import "math"

// sortFloats sorts a[low:high] of a floating-point kind.
//
// NaN values are moved to the end of the range and -0.0 values are counted
// and replaced by 0.0 before sorting, so the comparison-based phases see a
// total order. Afterwards the counted -0.0 values are written back at the
// start of the run of zeros.
func (e *engine[T]) sortFloats(a []T, parallelism, low, high int) {
	negativeZeros := 0

	for k := high; k > low; {
		k--
		ak := a[k]

		if ak == 0 && math.Signbit(float64(ak)) {
			negativeZeros++
			a[k] = 0
		} else if ak != ak { // NaN
			high--
			a[k] = a[high]
			a[high] = ak
		}
	}

	e.sortNumbers(a, parallelism, low, high)

	if negativeZeros == 0 {
		return
	}

	// Find the first non-negative element, a zero.
	lo, hi := low, high-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		if a[mid] < 0 {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	negZero := T(math.Copysign(0, -1))
	for ; negativeZeros > 0; negativeZeros-- {
		a[lo] = negZero
		lo++
	}
}
