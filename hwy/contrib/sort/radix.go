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
	"math"

	"github.com/ajroetker/go-dpsort/hwy"
)

// digit is one bit-field of a radix key.
type digit struct {
	shift uint
	bits  uint
}

func (d digit) of(key uint64) uint64 {
	return key >> d.shift & (1<<d.bits - 1)
}

// radixDigits splits a key of the given width into radixDigitBits-wide
// digits, least significant first. The lowest digit takes the remainder,
// so 32-bit keys use 10+11+11 bits and 64-bit keys 9+5*11.
func radixDigits(width int) []digit {
	n := (width + radixDigitBits - 1) / radixDigitBits
	first := uint(width - radixDigitBits*(n-1))

	digits := make([]digit, 0, n)
	digits = append(digits, digit{shift: 0, bits: first})
	for shift := first; shift < uint(width); shift += radixDigitBits {
		digits = append(digits, digit{shift: shift, bits: radixDigitBits})
	}
	return digits
}

// sortableKey returns a function mapping elements of kind to unsigned keys
// that order the same way as the elements. Signed integers have their sign
// bit flipped. Floats follow the IEEE-754 total order: negative values have
// every bit flipped and non-negative values just the sign bit.
func sortableKey[T hwy.Lanes](kind hwy.Kind) func(T) uint64 {
	switch {
	case kind.Float && kind.Width == 32:
		return func(x T) uint64 { return uint64(float32Key(float32(x))) }
	case kind.Float:
		return func(x T) uint64 { return float64Key(float64(x)) }
	case kind.Signed:
		mask := ^uint64(0) >> (64 - kind.Width)
		sign := uint64(1) << (kind.Width - 1)
		return func(x T) uint64 { return uint64(x)&mask ^ sign }
	default:
		return func(x T) uint64 { return uint64(x) }
	}
}

// float32Key maps f to a key ordered like f under the IEEE-754 total order.
func float32Key(f float32) uint32 {
	bits := math.Float32bits(f)
	if bits&(1<<31) != 0 {
		return ^bits
	}
	return bits | 1<<31
}

// float64Key maps f to a key ordered like f under the IEEE-754 total order.
func float64Key(f float64) uint64 {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		return ^bits
	}
	return bits | 1<<63
}

// tryRadixSort sorts a[low:high] with an LSD radix sort. It returns false,
// without touching the range, when no scratch buffer is available.
//
// One pass over the input builds every digit histogram. Each remaining
// digit costs one stable distribution pass, alternating between a and the
// buffer; the result is copied back when it ends up in the buffer.
func (e *engine[T]) tryRadixSort(s *sorter[T], a []T, low, high int) bool {
	if e.key == nil {
		return false
	}

	var b []T
	offset := low
	if s != nil && s.b != nil {
		b, offset = s.b, s.offset
	} else if b = e.tryAllocate(high - low); b == nil {
		return false
	}

	counts := make([][]int, len(e.digits))
	for i, d := range e.digits {
		counts[i] = make([]int, 1<<d.bits)
	}
	for i := low; i < high; i++ {
		key := e.key(a[i])
		for j, d := range e.digits {
			counts[j][d.of(key)]++
		}
	}

	inBuffer := false
	for j, d := range e.digits {
		count := counts[j]
		if !processDigit(count, high-low, low) {
			continue
		}

		// Walking backwards over end positions keeps each pass stable.
		if inBuffer {
			for i := high - offset; i > low-offset; {
				i--
				v := b[i]
				c := &count[d.of(e.key(v))]
				*c--
				a[*c] = v
			}
		} else {
			for i := high; i > low; {
				i--
				v := a[i]
				c := &count[d.of(e.key(v))]
				*c--
				b[*c-offset] = v
			}
		}
		inBuffer = !inBuffer
	}

	if inBuffer {
		copy(a[low:high], b[low-offset:high-offset])
	}
	return true
}

// processDigit turns the histogram count into the end position of every
// bucket, counted from base. It returns false when all total elements fall
// into one bucket, in which case the digit needs no pass.
func processDigit(count []int, total, base int) bool {
	for _, c := range count {
		if c == total {
			return false
		}
		if c > 0 {
			break
		}
	}

	count[0] += base
	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}
	return true
}
