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

// Package hwy holds the element-type vocabulary shared by the sorting
// packages: numeric constraints, per-type introspection, and the runtime
// dispatch report for the machine the process is running on.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-dpsort/hwy"
//
//	func Describe[T hwy.Lanes]() string {
//	    return fmt.Sprintf("%d-bit float=%v", hwy.BitWidth[T](), hwy.IsFloat[T]())
//	}
package hwy

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for every primitive numeric element type the
// sorting engine accepts.
type Lanes interface {
	Floats | Integers
}

// Kind describes the machine representation of an element type.
type Kind struct {
	// Width is the size of one element in bits.
	Width int
	// Float reports an IEEE-754 binary floating-point type.
	Float bool
	// Signed reports a type whose values may be negative.
	Signed bool
}

// KindOf returns the representation of T.
func KindOf[T Lanes]() Kind {
	return Kind{Width: BitWidth[T](), Float: IsFloat[T](), Signed: IsSigned[T]()}
}

// SizeOf returns the size of one element of T in bytes.
func SizeOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BitWidth returns the size of one element of T in bits.
func BitWidth[T Lanes]() int {
	return SizeOf[T]() * 8
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Lanes]() bool {
	one := T(1)
	return one/(one+one) != 0
}

// IsSigned reports whether T can hold negative values.
// Floating-point types are signed.
func IsSigned[T Lanes]() bool {
	var zero T
	return zero-1 < zero
}
