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
	"errors"

	"github.com/ajroetker/go-dpsort/hwy"
	"github.com/ajroetker/go-dpsort/hwy/contrib/workerpool"
	"github.com/zeebo/errs/v2"
)

// ErrInvalidRange is wrapped by the value a sort panics with when the
// requested range does not satisfy 0 <= low <= high <= len(data).
var ErrInvalidRange = errors.New("invalid range")

// Options configures a single call to SortWith.
type Options struct {
	// Parallelism is the number of goroutines the sort may use, including
	// the caller. Values below 2 sort sequentially.
	Parallelism int

	// Pool runs forked tasks. When nil and Parallelism > 1, a pool of
	// min(Parallelism, GOMAXPROCS)-1 workers is created for the call and
	// closed before it returns. A caller-supplied pool is never closed.
	Pool *workerpool.Pool

	// MaxBufferBytes caps every scratch buffer. Zero selects the default of
	// one sixteenth of the runtime memory limit, at most 2 GB. A negative
	// value disables scratch buffers entirely.
	MaxBufferBytes int64
}

// Sort sorts data in ascending order on the calling goroutine.
//
// Floating-point data is ordered as -Inf < negative < -0.0 < +0.0 <
// positive < +Inf, with every NaN moved to the end.
func Sort[T hwy.Lanes](data []T) {
	SortWith(data, 0, len(data), Options{Parallelism: 1})
}

// ParallelSort sorts data in ascending order using up to GOMAXPROCS
// goroutines. Setting HWY_NO_PARALLEL makes it equivalent to Sort.
func ParallelSort[T hwy.Lanes](data []T) {
	SortWith(data, 0, len(data), Options{Parallelism: hwy.DefaultParallelism()})
}

// SortRange sorts data[low:high] in ascending order using up to parallelism
// goroutines. Elements outside the range are not touched.
//
// SortRange panics with an error wrapping ErrInvalidRange unless
// 0 <= low <= high <= len(data).
func SortRange[T hwy.Lanes](data []T, parallelism, low, high int) {
	SortWith(data, low, high, Options{Parallelism: parallelism})
}

// SortWith sorts data[low:high] in ascending order as configured by opts.
func SortWith[T hwy.Lanes](data []T, low, high int, opts Options) {
	checkRange(len(data), low, high)
	if high-low < 2 {
		return
	}
	e := newEngine[T](opts)
	e.sortRange(data, opts.Parallelism, low, high)
}

// IsSorted reports whether data is sorted in ascending order.
// NaN values compare as unordered, so a slice holding NaN ahead of a
// number is reported as sorted.
func IsSorted[T hwy.Lanes](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

func checkRange(length, low, high int) {
	if low < 0 || low > high || high > length {
		panic(errs.Errorf("sort: %w [%d:%d] with length %d", ErrInvalidRange, low, high, length))
	}
}

// path identifies the algorithm that finished a part of the range.
type path uint8

const (
	pathInsertion path = iota
	pathMixedInsertion
	pathMerging
	pathRadix
	pathCounting
	pathHeap
	pathTwoPivots
	pathOnePivot
	pathParallel
)

func (p path) String() string {
	switch p {
	case pathInsertion:
		return "insertion"
	case pathMixedInsertion:
		return "mixed-insertion"
	case pathMerging:
		return "merging"
	case pathRadix:
		return "radix"
	case pathCounting:
		return "counting"
	case pathHeap:
		return "heap"
	case pathTwoPivots:
		return "two-pivots"
	case pathOnePivot:
		return "one-pivot"
	case pathParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// engine holds everything a sort of one element type needs, resolved once
// per top-level call.
type engine[T hwy.Lanes] struct {
	kind hwy.Kind

	// key maps an element to an unsigned key with the same order. Nil for
	// kinds that are not radix sorted.
	key func(T) uint64

	// digits lists the radix digits from least to most significant.
	digits []digit

	// maxBuffer is the largest scratch buffer, in elements, that may be
	// allocated. Zero disables buffers.
	maxBuffer int

	pool *workerpool.Pool

	// trace, when set, is told which algorithm finished each part.
	// It may be called from several goroutines at once.
	trace func(path)
}

func newEngine[T hwy.Lanes](opts Options) *engine[T] {
	kind := hwy.KindOf[T]()
	e := &engine[T]{
		kind:      kind,
		maxBuffer: bufferLimit(opts.MaxBufferBytes, kind.Width/8),
		pool:      opts.Pool,
	}
	if kind.Width >= 32 {
		e.key = sortableKey[T](kind)
		e.digits = radixDigits(kind.Width)
	}
	return e
}

func (e *engine[T]) note(p path) {
	if e.trace != nil {
		e.trace(p)
	}
}

// sortRange sorts a[low:high] choosing the strategy by element kind.
func (e *engine[T]) sortRange(a []T, parallelism, low, high int) {
	switch {
	case e.kind.Float:
		e.sortFloats(a, parallelism, low, high)
	case e.kind.Width == 8:
		if high-low > minByteCountingSortSize {
			e.countingSort(a, low, high)
		} else {
			e.note(pathInsertion)
			insertionSort(a, low, high)
		}
	case e.kind.Width == 16:
		threshold := minCharCountingSortSize
		if e.kind.Signed {
			threshold = minShortCountingSortSize
		}
		if high-low > threshold {
			e.countingSort(a, low, high)
		} else {
			e.sort(nil, a, 0, low, high)
		}
	default:
		e.sortNumbers(a, parallelism, low, high)
	}
}

// sortNumbers sorts a[low:high] of a kind without special values.
func (e *engine[T]) sortNumbers(a []T, parallelism, low, high int) {
	if parallelism > 1 && high-low > minParallelSortSize {
		e.parallelSort(a, parallelism, low, high)
		return
	}
	e.sort(nil, a, 0, low, high)
}
