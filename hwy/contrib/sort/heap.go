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

// heapSort sorts a[low:high] with a binary max-heap rooted at low.
// It bounds the cost of parts whose pivots keep splitting badly.
func heapSort[T hwy.Lanes](a []T, low, high int) {
	for k := int(uint(low+high) >> 1); k > low; {
		k--
		pushDown(a, k, a[k], low, high)
	}
	for high--; high > low; high-- {
		top := a[low]
		pushDown(a, low, a[high], low, high)
		a[high] = top
	}
}

// pushDown sifts value down from position p of the heap a[low:high].
func pushDown[T hwy.Lanes](a []T, p int, value T, low, high int) {
	for {
		k := (p << 1) - low + 2 // right child

		if k > high {
			break
		}
		if k == high || a[k] < a[k-1] {
			k--
		}
		if a[k] <= value {
			break
		}
		a[p] = a[k]
		p = k
	}
	a[p] = value
}
