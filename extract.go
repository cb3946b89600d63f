// Copyright 2026 Teo Lin.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package bitty

import (
	"errors"
	"fmt"
	"unsafe"
)

// Uint is the set of unsigned integer types with a fixed width of 8, 16, 32,
// or 64 bits.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ErrOutOfRange is reported when a bit index range or a bit sequence crosses
// the width of the integer type it is applied to. The returned errors wrap
// ErrOutOfRange, so use [errors.Is] to test for it.
var ErrOutOfRange = errors.New("bit range exceeds integer width")

// Width returns the number of bits in values of type T, that is, 8, 16, 32,
// or 64.
func Width[T Uint]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

// Extract returns all bits of v as a [Bits] sequence, LSB-first: index 0 of
// the result holds the least significant bit of v, index [Width]-1 the most
// significant one.
func Extract[T Uint](v T) Bits {
	// The full width of a type is always in range for that type.
	return ExtractUntilUnchecked(v, Width[T]())
}

// ExtractUntil returns the bits of v below the exclusive index until as a
// [Bits] sequence, LSB-first. An until of 0 returns an empty sequence; an
// until beyond the width of T returns an error wrapping [ErrOutOfRange]
// instead, it is never silently clamped.
func ExtractUntil[T Uint](v T, until uint) (Bits, error) {
	if width := Width[T](); until > width {
		return nil, fmt.Errorf("%w: cannot extract %d bits of a %d bit value",
			ErrOutOfRange, until, width)
	}
	return ExtractUntilUnchecked(v, until), nil
}

// ExtractUntilUnchecked is [ExtractUntil] without the range validation, for
// callers that have already established until ≤ [Width] themselves, such as
// in hot loops. Calling it with an until beyond the width of T violates that
// contract and the result is unspecified.
func ExtractUntilUnchecked[T Uint](v T, until uint) Bits {
	bits := make(Bits, 0, until)
	for i := uint(0); i < until; i++ {
		bits = append(bits, v&(1<<i) != 0)
	}
	return bits
}
