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
	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("bit sequences", func() {

	DescribeTable("generating textual representations",
		func(bits Bits, expected string) {
			Expect(bits.String()).To(Equal(expected))
		},
		Entry(nil, Bits{}, ""),
		Entry(nil, Bits{true}, "1"),
		Entry(nil, Bits{false, true, false}, "010"),
		Entry(nil, Bits{true, false, true, false}, "1010"),
	)

	When("parsing bit sequences from text", func() {

		It("returns nothing from nothing", func() {
			Expect(NewBits([]byte(""))).To(Equal(Bits{}))
		})

		It("returns the bits LSB first", func() {
			Expect(NewBits([]byte("1010"))).To(Equal(Bits{true, false, true, false}))
		})

		It("round-trips with the textual representation", func() {
			Expect(Successful(NewBits([]byte("10100000"))).String()).To(Equal("10100000"))
		})

		DescribeTable("parsing errors",
			func(s string, msg string) {
				Expect(NewBits([]byte(s))).Error().To(MatchError(msg))
			},
			Entry(nil, "10x01", "expected '0' or '1'"),
			Entry(nil, "2", "expected '0' or '1'"),
			Entry(nil, "1 0", "expected '0' or '1'"),
		)

	})

	It("reconstructs values from parsed text", func() {
		Expect(Successful(Reconstruct[uint8](
			Successful(NewBits([]byte("1010")))))).To(Equal(uint8(5)))
	})

	DescribeTable("trimming high-order zero bits",
		func(s string, expected string) {
			Expect(Successful(NewBits([]byte(s))).Trim().String()).To(Equal(expected))
		},
		Entry(nil, "", ""),
		Entry(nil, "000", ""),
		Entry(nil, "101000", "101"),
		Entry(nil, "001", "001"),
	)

	It("reconstructs a trimmed sequence into the same value", func() {
		bits := Extract(uint16(666))
		Expect(bits.Trim()).To(HaveLen(10))
		Expect(Successful(Reconstruct[uint16](bits.Trim()))).To(Equal(uint16(666)))
	})

})
