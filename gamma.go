// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

import "math/bits"

// Interlaced Elias-gamma coding. A positive value v is written as one
// (continuation, value) bit pair per binary digit above its leading one,
// then a single stop bit. Forward streams signal "more" with 1 and stop
// with 0; backwards streams flip both. Invert flips value-bit polarity and
// little-endian mode emits value bits low-to-high.

// gammaCoding captures the bit conventions of one format variant.
type gammaCoding struct {
	moreBit      byte // continuation-bit value meaning another pair follows
	backwards    bool
	invert       bool
	littleEndian bool
}

func newGammaCoding(backwards, invert, littleEndian bool) gammaCoding {
	g := gammaCoding{moreBit: 1, backwards: backwards, invert: invert, littleEndian: littleEndian}
	if backwards {
		g.moreBit = 0
	}

	return g
}

// valueBit extracts bit k of v with the polarity this coding uses on the wire.
func (g gammaCoding) valueBit(v, k int) byte {
	b := byte(v>>k) & 1
	if g.invert {
		b ^= 1
	}

	return b
}

// writeGamma emits the interlaced Elias-gamma code for v >= 1.
func writeGamma(w *bitWriter, v int, g gammaCoding) {
	if v < 1 {
		panic("zx0: elias gamma value out of range")
	}

	n := bits.Len(uint(v)) - 1 // digits above the leading one
	if g.littleEndian {
		for k := 0; k < n; k++ {
			w.writeBit(g.moreBit)
			w.writeBit(g.valueBit(v, k))
		}
	} else {
		for k := n - 1; k >= 0; k-- {
			w.writeBit(g.moreBit)
			w.writeBit(g.valueBit(v, k))
		}
	}

	w.writeBit(g.moreBit ^ 1)
}

// readGamma decodes one interlaced Elias-gamma value.
func readGamma(r *bitReader, g gammaCoding) (int, error) {
	if g.littleEndian {
		low, count := 0, 0
		for {
			c, err := r.readBit()
			if err != nil {
				return 0, err
			}
			if c != g.moreBit {
				return 1<<count | low, nil
			}

			b, err := r.readBit()
			if err != nil {
				return 0, err
			}
			if g.invert {
				b ^= 1
			}
			if b != 0 {
				low |= 1 << count
			}

			count++
			if count > 30 {
				return 0, ErrGammaOverflow
			}
		}
	}

	v := 1
	for {
		c, err := r.readBit()
		if err != nil {
			return 0, err
		}
		if c != g.moreBit {
			return v, nil
		}

		b, err := r.readBit()
		if err != nil {
			return 0, err
		}
		if g.invert {
			b ^= 1
		}

		v = v<<1 | int(b)
		if v > 1<<30 {
			return 0, ErrGammaOverflow
		}
	}
}

// eliasGammaBits returns the encoded size of v >= 1: 2*floor(log2 v) + 1.
func eliasGammaBits(v int) int {
	return 2*(bits.Len(uint(v))-1) + 1
}

// Token bit costs. These must track the encoder exactly: the optimizer's
// search is only optimal for the cost model the serializer realizes.

func literalCost(length int) int {
	return 1 + eliasGammaBits(length) + 8*length
}

func repeatCost(length int) int {
	return 1 + eliasGammaBits(length)
}

// copyCost charges the flag, the offset MSB gamma, the 8-bit LSB byte and
// the length gamma; minus one bit because the length gamma's first bit lives
// in the LSB byte's backtrack slot.
func copyCost(offset, length int) int {
	return 1 + eliasGammaBits((offset-1)/offsetLSBLimit+1) + 8 + eliasGammaBits(length-1) - 1
}
