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

import "fmt"

// Reconstruct returns the value of type T whose binary expansion is bits,
// LSB-first: bit i of the value equals bits[i]. The sequence does not need to
// cover the full width of T, any missing high-order bits default to 0. A
// sequence longer than the width of T returns an error wrapping
// [ErrOutOfRange] instead, it is never silently truncated.
func Reconstruct[T Uint](bits Bits) (T, error) {
	if width := Width[T](); uint(len(bits)) > width {
		return 0, fmt.Errorf("%w: cannot reconstruct a %d bit value from %d bits",
			ErrOutOfRange, width, len(bits))
	}
	return ReconstructUnchecked[T](bits), nil
}

// ReconstructUnchecked is [Reconstruct] without the length validation, for
// callers that have already established len(bits) ≤ [Width] themselves, such
// as in hot loops. Calling it with a longer sequence violates that contract
// and the result is unspecified.
func ReconstructUnchecked[T Uint](bits Bits) T {
	var v T
	for i, bit := range bits {
		if bit {
			v |= T(1) << uint(i)
		}
	}
	return v
}
