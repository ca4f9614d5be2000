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
	"slices"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"
)

// samplePositions mirrors the sampling done by the driver.
func samplePositions(low, high int) (e1, e2, e3, e4, e5 int) {
	size := high - low
	step := (size >> 2) + (size >> 3) + (size >> 7)
	e1 = low + step
	e5 = high - step
	e3 = (e1 + e5) >> 1
	e2 = (e1 + e3) >> 1
	e4 = (e3 + e5) >> 1
	return e1, e2, e3, e4, e5
}

func sameElements[T int32 | int64](t *testing.T, got, want []T) {
	t.Helper()
	got, want = slices.Clone(got), slices.Clone(want)
	slices.Sort(got)
	slices.Sort(want)
	assert.DeepEqual(t, got, want)
}

func TestPartitionWithTwoPivots(t *testing.T) {
	rng := mwc.Rand()
	for _, n := range []int{maxInsertionSortSize, 100, 1000, 10007} {
		for iter := 0; iter < 20; iter++ {
			// Distinct values make the sorted samples strictly increasing.
			data := make([]int32, n)
			for i := range data {
				data[i] = int32(i)
			}
			for i := len(data) - 1; i > 0; i-- {
				j := int(rng.Uint64n(uint64(i + 1)))
				data[i], data[j] = data[j], data[i]
			}
			orig := slices.Clone(data)

			e1, e2, e3, e4, e5 := samplePositions(0, n)
			sortSamples(data, e1, e2, e3, e4, e5)
			pivot1, pivot2 := data[e1], data[e5]

			lower, upper := partitionWithTwoPivots(data, 0, n, e1, e5)

			assert.Equal(t, data[lower], pivot1)
			assert.Equal(t, data[upper], pivot2)
			for i := 0; i < lower; i++ {
				if data[i] >= pivot1 {
					t.Fatalf("data[%d]=%v should be < pivot1 %v", i, data[i], pivot1)
				}
			}
			for i := lower + 1; i < upper; i++ {
				if data[i] < pivot1 || data[i] > pivot2 {
					t.Fatalf("data[%d]=%v should be in [%v, %v]", i, data[i], pivot1, pivot2)
				}
			}
			for i := upper + 1; i < n; i++ {
				if data[i] <= pivot2 {
					t.Fatalf("data[%d]=%v should be > pivot2 %v", i, data[i], pivot2)
				}
			}
			sameElements(t, data, orig)
		}
	}
}

func TestPartitionWithTwoPivotsDuplicates(t *testing.T) {
	rng := mwc.Rand()
	for iter := 0; iter < 100; iter++ {
		n := 2000
		data := make([]int64, n)
		for i := range data {
			data[i] = int64(rng.Uint64n(50))
		}
		orig := slices.Clone(data)

		e1, e2, e3, e4, e5 := samplePositions(0, n)
		sortSamples(data, e1, e2, e3, e4, e5)
		if !(data[e1] < data[e2] && data[e2] < data[e3] && data[e3] < data[e4] && data[e4] < data[e5]) {
			continue
		}
		pivot1, pivot2 := data[e1], data[e5]

		lower, upper := partitionWithTwoPivots(data, 0, n, e1, e5)

		for i := 0; i < lower; i++ {
			assert.That(t, data[i] < pivot1)
		}
		for i := lower; i <= upper; i++ {
			assert.That(t, data[i] >= pivot1 && data[i] <= pivot2)
		}
		for i := upper + 1; i < n; i++ {
			assert.That(t, data[i] > pivot2)
		}
		sameElements(t, data, orig)
	}
}

func TestPartitionWithOnePivot(t *testing.T) {
	rng := mwc.Rand()
	for _, n := range []int{maxInsertionSortSize, 100, 1000, 10007} {
		for _, span := range []uint64{1, 2, 5, 1 << 40} {
			data := make([]int64, n)
			for i := range data {
				data[i] = int64(rng.Uint64n(span))
			}
			orig := slices.Clone(data)

			e1, e2, e3, e4, e5 := samplePositions(0, n)
			sortSamples(data, e1, e2, e3, e4, e5)
			pivot := data[e3]

			lower, upper := partitionWithOnePivot(data, 0, n, e3)

			assert.That(t, lower < upper)
			for i := 0; i < lower; i++ {
				if data[i] >= pivot {
					t.Fatalf("data[%d]=%v should be < pivot %v", i, data[i], pivot)
				}
			}
			for i := lower; i < upper; i++ {
				if data[i] != pivot {
					t.Fatalf("data[%d]=%v should be == pivot %v", i, data[i], pivot)
				}
			}
			for i := upper; i < n; i++ {
				if data[i] <= pivot {
					t.Fatalf("data[%d]=%v should be > pivot %v", i, data[i], pivot)
				}
			}
			sameElements(t, data, orig)
		}
	}
}

func TestPartitionSubrange(t *testing.T) {
	// Partitioning a subrange must not touch its neighbours.
	rng := mwc.Rand()
	data := make([]int32, 3000)
	for i := range data {
		data[i] = int32(rng.Uint32n(1 << 20))
	}
	orig := slices.Clone(data)
	low, high := 1000, 2000

	e1, e2, e3, e4, e5 := samplePositions(low, high)
	sortSamples(data, e1, e2, e3, e4, e5)
	partitionWithOnePivot(data, low, high, e3)

	assert.DeepEqual(t, data[:low], orig[:low])
	assert.DeepEqual(t, data[high:], orig[high:])
	sameElements(t, data[low:high], orig[low:high])
}
