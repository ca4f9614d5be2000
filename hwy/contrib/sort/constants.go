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

// =============================================================================
// Thresholds for the different sorting strategies
// =============================================================================

const (
	// maxInsertionSortSize: plain insertion sort below this size on the
	// leftmost part of a range.
	maxInsertionSortSize = 44

	// maxMixedInsertionSortSize: mixed insertion sort below this size (plus
	// the recursion token) on parts that have a pivot sentinel to their left.
	maxMixedInsertionSortSize = 124

	// minMergingSortSize: merging of natural runs is attempted when the
	// range is larger than this times the recursion token.
	minMergingSortSize = 512

	// minRunSize: expected minimal run length once more than
	// maxFreeRuns runs have been seen.
	minRunSize = 128

	// maxFreeRuns: runs accepted before the run length is checked.
	maxFreeRuns = 6

	// maxRunCapacity: upper bound of the run table.
	maxRunCapacity = 10 << 10

	// minRadixSortSize: radix sort is attempted above this size on
	// random-looking data.
	minRadixSortSize = 800

	// radixDigitBits: width of one radix digit. The lowest digit is narrower
	// when the element width is not a multiple of it.
	radixDigitBits = 11
)

// Counting sort thresholds for the bounded-cardinality kinds.
const (
	// minByteCountingSortSize applies to 8-bit kinds.
	minByteCountingSortSize = 36

	// minCharCountingSortSize applies to unsigned 16-bit kinds.
	minCharCountingSortSize = 1700

	// minShortCountingSortSize applies to signed 16-bit kinds.
	minShortCountingSortSize = 2100
)

const (
	// minParallelSortSize: ranges and merges of at most this size are never
	// split into parallel tasks.
	minParallelSortSize = 1024

	// minSplitSizeShift: the split tree only halves ranges of at least
	// 1<<minSplitSizeShift elements per pair of levels.
	minSplitSizeShift = 12

	// maxRecursionDepth: heap sort takes over once the recursion token
	// exceeds this value.
	maxRecursionDepth = 64 << 1

	// maxBufferSize caps scratch buffers at 2 GB regardless of the memory
	// limit.
	maxBufferSize = 1<<31 - 1
)
