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
	"fmt"
	"slices"
	"testing"
	"unsafe"

	"github.com/ajroetker/go-dpsort/hwy"
	"github.com/ajroetker/go-dpsort/hwy/contrib/workerpool"
	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"
)

// hashOf hashes the in-memory representation of data.
func hashOf[T hwy.Lanes](data []T) uint64 {
	if len(data) == 0 {
		return xxh3.Hash(nil)
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*hwy.SizeOf[T]())
	return xxh3.Hash(b)
}

// TestParallelMatchesSequential checks that a parallel sort produces
// byte-identical output to a sequential one.
func TestParallelMatchesSequential(t *testing.T) {
	rng := mwc.Rand()

	data := make([]int32, 2000)
	for i := range data {
		data[i] = int32(rng.Uint32())
	}
	seq, par := slices.Clone(data), slices.Clone(data)

	SortRange(seq, 1, 0, len(seq))
	SortRange(par, 4, 0, len(par))

	assert.Equal(t, hashOf(par), hashOf(seq))
	assert.That(t, isSorted(par))
}

func TestParallelPatterns(t *testing.T) {
	for _, p := range patterns {
		for _, n := range []int{minParallelSortSize + 1, 3000, 100000} {
			t.Run(fmt.Sprintf("%s/%d", p.name, n), func(t *testing.T) {
				rng := mwc.Rand()
				testParallel[int32](t, rng, p, n)
				testParallel[int64](t, rng, p, n)
				testParallel[uint64](t, rng, p, n)
				testParallel[float32](t, rng, p, n)
				testParallel[float64](t, rng, p, n)
			})
		}
	}
}

func testParallel[T hwy.Lanes](t *testing.T, rng *mwc.T, p pattern, n int) {
	t.Helper()
	data := generate[T](rng, p, n)
	want := slices.Clone(data)
	slices.Sort(want)

	for _, parallelism := range []int{2, 3, 8, 200} {
		got := slices.Clone(data)
		SortRange(got, parallelism, 0, n)
		if hashOf(got) != hashOf(want) {
			t.Fatalf("SortRange[%T](%s, n=%d, parallelism=%d) differs from slices.Sort", data[0], p.name, n, parallelism)
		}
	}
}

// TestParallelSharedPool sorts independent slices concurrently on one pool.
func TestParallelSharedPool(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	inputs := make([][]int64, 8)
	for i := range inputs {
		inputs[i] = generate[int64](mwc.Rand(), patterns[i%len(patterns)], 50000)
	}

	var g errgroup.Group
	for _, data := range inputs {
		g.Go(func() error {
			want := slices.Clone(data)
			slices.Sort(want)

			SortWith(data, 0, len(data), Options{Parallelism: 5, Pool: pool})

			if hashOf(data) != hashOf(want) {
				return fmt.Errorf("sort on shared pool differs from slices.Sort")
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	// The pool stays usable after the sorts complete.
	data := generate[int64](mwc.Rand(), patterns[0], 10000)
	SortWith(data, 0, len(data), Options{Parallelism: 5, Pool: pool})
	assert.That(t, isSorted(data))
}

// TestParallelCallerPool sorts on a pool owned by the caller.
func TestParallelCallerPool(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	data := generate[float64](mwc.Rand(), patterns[0], 200000)
	rec := tracedSort(data, 0, len(data), Options{Parallelism: 4, Pool: pool})

	assert.That(t, isSorted(data))
	assert.Equal(t, rec.count(pathParallel), 1)
}

// TestParallelWithoutBuffer sorts the whole range as one leaf.
func TestParallelWithoutBuffer(t *testing.T) {
	rng := mwc.Rand()
	for _, p := range patterns {
		data := generate[int32](rng, p, 100000)
		want := slices.Clone(data)
		slices.Sort(want)

		rec := tracedSort(data, 0, len(data), Options{Parallelism: 4, MaxBufferBytes: -1})

		assert.Equal(t, hashOf(data), hashOf(want))
		assert.Equal(t, rec.count(pathParallel), 1)
		assert.Equal(t, rec.count(pathRadix), 0)
	}
}

func TestParallelSortEnv(t *testing.T) {
	t.Setenv("HWY_NO_PARALLEL", "1")

	data := generate[int64](mwc.Rand(), patterns[0], 50000)
	want := slices.Clone(data)
	slices.Sort(want)

	ParallelSort(data)
	assert.DeepEqual(t, data, want)
}

func TestParallelSubrange(t *testing.T) {
	rng := mwc.Rand()
	data := generate[uint32](rng, patterns[0], 100000)
	orig := slices.Clone(data)
	low, high := 3, 99990

	SortRange(data, 6, low, high)

	want := slices.Clone(orig[low:high])
	slices.Sort(want)
	assert.Equal(t, hashOf(data[low:high]), hashOf(want))
	assert.DeepEqual(t, data[:low], orig[:low])
	assert.DeepEqual(t, data[high:], orig[high:])
}

func TestSortTreeDepthParity(t *testing.T) {
	// Odd and even root depths exercise both merge directions.
	pool := workerpool.New(2)
	defer pool.Close()

	rng := mwc.Rand()
	for _, depth := range []int{-1, -2, -3, -4, -6} {
		low := 50
		data := generate[int64](rng, patterns[0], 20000+low)
		want := slices.Clone(data[low:])
		slices.Sort(want)

		e := newEngine[int64](Options{})
		b := make([]int64, len(data)-low)
		if depth&1 != 0 {
			// An odd root leaves its result in the buffer.
			e.sortTree(pool, b, data, low, len(data)-low, low, depth)
			assert.Equal(t, hashOf(b), hashOf(want))
		} else {
			e.sortTree(pool, data, b, low, len(data)-low, low, depth)
			assert.Equal(t, hashOf(data[low:]), hashOf(want))
		}
	}
}

func TestSplitDepth(t *testing.T) {
	cases := []struct {
		parallelism, size, want int
	}{
		{1, 1 << 30, 0},
		{4, 1 << 30, 0},
		{8, 1 << 20, -2},
		{8, 1<<14 - 1, 0},
		{8, 1 << 14, -2},
		{64, 1 << 16, -4},
		{200, 100000, -4},
		{1 << 20, 2000, 0},
		{1 << 20, 1 << 16, -4},
		{1 << 30, 1 << 24, -12},
	}
	for _, tc := range cases {
		got := splitDepth(tc.parallelism, tc.size)
		if got != tc.want {
			t.Errorf("splitDepth(%d, %d) = %d, want %d", tc.parallelism, tc.size, got, tc.want)
		}
		assert.Equal(t, got&1, 0)
	}
}

// TestParallelLargeHint sorts small and medium ranges with parallelism hints
// far above the number of elements.
func TestParallelLargeHint(t *testing.T) {
	rng := mwc.Rand()
	for _, parallelism := range []int{1 << 11, 1 << 20, 1 << 30} {
		for _, n := range []int{minParallelSortSize + 1, 2000, 50000} {
			data := generate[int32](rng, patterns[0], n)
			want := slices.Clone(data)
			slices.Sort(want)

			SortRange(data, parallelism, 0, n)

			if hashOf(data) != hashOf(want) {
				t.Fatalf("SortRange(n=%d, parallelism=%d) differs from slices.Sort", n, parallelism)
			}
		}
	}
}
