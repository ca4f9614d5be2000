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
	"runtime"
	"sync"

	"github.com/ajroetker/go-dpsort/hwy"
	"github.com/ajroetker/go-dpsort/hwy/contrib/workerpool"
)

// sorter is the parallel context of one leaf of the split tree. Every part
// forked while sorting the leaf, at any nesting level, joins on pending.
type sorter[T hwy.Lanes] struct {
	e    *engine[T]
	pool *workerpool.Pool

	// a is the slice being sorted and b the scratch buffer, or nil.
	// b[i-offset] stands for a[i].
	a, b   []T
	offset int

	pending sync.WaitGroup
}

// fork sorts a[low:high] as a separate task.
func (s *sorter[T]) fork(bits, low, high int) {
	s.pool.Fork(&s.pending, func() {
		s.e.sort(s, s.a, bits, low, high)
	})
}

// parallelSort sorts a[low:high] on the calling goroutine plus the pool.
//
// With a scratch buffer the range is halved recursively; the halves of each
// split are sorted into the other slice of the (a, buffer) pair and merged
// back, so the depth parity of a node decides which slice holds its input.
// The root depth is even, so the leaves sort a in place. Without a buffer
// the whole range is one leaf.
func (e *engine[T]) parallelSort(a []T, parallelism, low, high int) {
	e.note(pathParallel)

	pool := e.pool
	if pool == nil {
		pool = workerpool.New(min(parallelism, runtime.GOMAXPROCS(0)) - 1)
		defer pool.Close()
	}

	size := high - low
	depth := 0
	b := e.tryAllocate(size)
	if b != nil {
		depth = splitDepth(parallelism, size)
	}

	e.sortTree(pool, a, b, low, size, low, depth)
}

// splitDepth returns the even root depth of the split tree for size
// elements. Each pair of levels needs a factor of 8 in parallelism and
// leaves every leaf with at least 1<<minSplitSizeShift elements.
func splitDepth(parallelism, size int) int {
	depth := 0
	for size >>= minSplitSizeShift; (parallelism>>3) > 0 && (size>>2) > 0; {
		parallelism >>= 3
		size >>= 2
		depth -= 2
	}
	return depth
}

// sortTree sorts size elements of a starting at low. Negative depths split;
// depth 0 is a leaf. At even depths a is the input slice and b the buffer,
// at odd depths the roles are swapped and b[i] stands for input[i+offset].
func (e *engine[T]) sortTree(pool *workerpool.Pool, a, b []T, low, size, offset, depth int) {
	if depth >= 0 {
		s := &sorter[T]{e: e, pool: pool, a: a, b: b, offset: offset}
		e.sort(s, a, depth, low, low+size)
		s.pending.Wait()
		return
	}

	half := size >> 1
	pool.Do(
		func() { e.sortTree(pool, b, a, low, half, offset, depth+1) },
		func() { e.sortTree(pool, b, a, low+half, size-half, offset, depth+1) },
	)

	// The children left both halves sorted in b; merge them into a.
	mid := low + half
	if depth&1 == 0 {
		mergeInParallel(pool, a, low, b, low-offset, mid-offset, mid-offset, low+size-offset)
	} else {
		mergeInParallel(pool, a, low-offset, b, low, mid, mid, low+size)
	}
}
