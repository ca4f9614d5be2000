// Package sort provides an adaptive dual-pivot quicksort for slices of
// primitive numeric types, sequential or fork-join parallel.
//
// # Algorithm
//
// The sequential engine is a single loop over the leftmost remaining part of
// the range. Each iteration picks the first strategy that applies:
//   - Insertion sort for small parts (mixed pin and pair insertion when a
//     pivot to the left acts as sentinel)
//   - Merging of natural runs when the data is highly structured
//   - LSD radix sort for large, random-looking parts of 32 and 64-bit kinds
//   - Heap sort once the recursion budget is spent, bounding the worst case
//   - Dual-pivot partitioning when five samples are distinct, otherwise a
//     single-pivot three-way partition
//
// 8 and 16-bit integer kinds switch to counting sort above a size threshold.
// Floating-point ranges are pre-processed so that NaN values end up last and
// -0.0 sorts before 0.0.
//
// # Parallelism
//
// ParallelSort and SortRange with a parallelism above one split the range
// into halves down to a fixed depth, sort the leaves with the sequential
// engine, and merge the halves back in parallel through one scratch buffer.
// Large parts produced by partitioning inside a leaf are forked as well.
// Tasks run on a workerpool.Pool; the output does not depend on scheduling.
//
// Scratch buffers are limited to a sixteenth of the runtime memory limit
// (see runtime/debug.SetMemoryLimit) unless Options.MaxBufferBytes says
// otherwise. Every strategy that needs a buffer falls back to partitioning
// when none can be had, so a sort always completes.
//
// # Supported Types
//
// Any type satisfying hwy.Lanes:
//   - float32, float64
//   - int8, int16, int32, int64, int
//   - uint8, uint16, uint32, uint64, uint, uintptr
//
// # Example Usage
//
//	import "github.com/ajroetker/go-dpsort/hwy/contrib/sort"
//
//	func ProcessData(data []float32) {
//	    sort.ParallelSort(data) // In-place ascending sort
//	}
//
//	func CheckSorted(data []float32) bool {
//	    return sort.IsSorted(data)
//	}
package sort
