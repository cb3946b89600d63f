/*
Package bitty converts between unsigned integer values and their individual
bits, in both directions, for the fixed widths of 8, 16, 32, and 64 bits.

Logically, an unsigned integer value and a [Bits] sequence are equivalent, as
both represent the same binary expansion. The difference lies in their
representations.

  - An integer value stores its bits packed into a single machine word.
  - [Bits] stores each bit as an individual boolean, with index 0 holding
    the least significant bit.

[Extract] converts a value into its Bits sequence. In the opposite direction,
[Reconstruct] converts a Bits sequence back into its value. [ExtractUntil]
extracts only the bits below a given index.

The bit order is LSB-first throughout: index i of a Bits sequence contributes
2^i to the value it represents. A sequence may be shorter than the width of
the target integer type; the missing high-order bits then default to 0. A
sequence must never be longer than the target width: the checked entry points
[ExtractUntil] and [Reconstruct] report [ErrOutOfRange] in that case, while
[ExtractUntilUnchecked] and [ReconstructUnchecked] skip the validation for
callers that have already established it.
*/
package bitty
