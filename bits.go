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
	"strings"

	"github.com/thediveo/faf"
)

// Bits is a sequence of individual bits, least significant bit first: the bit
// at index i contributes 2^i to the value the sequence represents.
type Bits []bool

// String returns the bits in textual format, with the bit at index 0 (the
// least significant bit) leftmost, such as “1010” for the four lowest bits
// of 5.
func (b Bits) String() string {
	var sb strings.Builder
	for _, bit := range b {
		if bit {
			sb.WriteByte('1')
			continue
		}
		sb.WriteByte('0')
	}
	return sb.String()
}

// NewBits returns a new Bits sequence for the given textual format, with the
// leftmost “0” or “1” becoming the bit at index 0. If the text is malformed
// then an error is returned instead.
func NewBits(b []byte) (Bits, error) {
	bs := faf.NewBytestring(b)
	bits := make(Bits, 0, len(b))
	for !bs.EOL() {
		switch ch, _ := bs.Next(); ch {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		default:
			return nil, errors.New("expected '0' or '1'")
		}
	}
	return bits, nil
}

// Trim returns this sequence without any high-order zero bits. As
// reconstruction defaults missing high-order bits to 0, a trimmed sequence
// always reconstructs into the same value as the original one.
func (b Bits) Trim() Bits {
	end := len(b)
	for end > 0 && !b[end-1] {
		end--
	}
	return b[:end]
}
