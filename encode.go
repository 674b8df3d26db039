// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// encodeStep is one parse step in stream order.
type encodeStep struct {
	offset  int
	length  int
	literal bool
}

// offsetLSBByte packs the low seven offset bits into the high bits of one
// raw byte, leaving bit 0 clear as the backtrack slot for the first bit of
// the following length gamma. Backwards streams store the complement.
func offsetLSBByte(offset int, g gammaCoding) byte {
	lsb := (offset - 1) % offsetLSBLimit
	if g.backwards {
		lsb = offsetLSBLimit - 1 - lsb
	}

	return byte(lsb << 1)
}

// offsetFromLSBByte reverses offsetLSBByte, combining the gamma-coded MSB
// with the raw LSB byte.
func offsetFromLSBByte(msb int, b byte, g gammaCoding) int {
	lsb := int(b >> 1)
	if g.backwards {
		lsb = offsetLSBLimit - 1 - lsb
	}

	return (msb-1)*offsetLSBLimit + lsb + 1
}

// emit serializes the parse chain ending at terminal: reverse the chain to
// stream order, then walk it writing tokens, and close with the end marker.
// Literal bytes come from input starting at skip.
func (c *compressor) emit(terminal blockRef, skip int, g gammaCoding) []byte {
	steps := c.steps[:0]
	for r := terminal; r != nilRef; r = c.pool.blocks[r].next {
		b := &c.pool.blocks[r]
		steps = append(steps, encodeStep{offset: int(b.offset), length: int(b.length), literal: b.literal})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	c.steps = steps

	w := bitWriter{out: make([]byte, 0, len(c.input)-skip+len(c.input)/8+8)}
	pos := skip
	lastOffset := initialOffset
	prevLiteral := false

	for _, s := range steps {
		switch {
		case s.literal:
			w.writeBit(0)
			writeGamma(&w, s.length, g)
			for i := 0; i < s.length; i++ {
				w.writeByte(c.input[pos+i])
			}

		case prevLiteral && s.offset == lastOffset:
			// Repeat: offset stays implicit.
			w.writeBit(0)
			writeGamma(&w, s.length, g)

		default:
			w.writeBit(1)
			writeGamma(&w, (s.offset-1)/offsetLSBLimit+1, g)
			w.writeByte(offsetLSBByte(s.offset, g))
			w.beginBacktrack()
			writeGamma(&w, s.length-1, g)
			lastOffset = s.offset
		}

		prevLiteral = s.literal
		pos += s.length
	}

	w.writeBit(1)
	writeGamma(&w, endMarkerMSB, g)

	return w.out
}
