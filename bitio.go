// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// Bit-level stream primitives. Bits pack MSB-first into "bit bytes" that are
// interleaved with raw bytes in one output stream: a bit byte is reserved in
// place the moment a bit is written with no slots left, and later raw bytes
// are appended after it while its remaining slots keep filling. Backtrack
// mode redirects the next single bit into the low bit of the most recently
// appended raw byte instead of consuming a fresh slot.

// bitWriter serializes bits and raw bytes into out.
type bitWriter struct {
	out         []byte
	bitIndex    int  // position of the current bit byte in out
	bitMask     byte // next free slot in the current bit byte (0 = none)
	bitsWritten int  // fresh bit slots consumed, excluding backtrack reuse
	backtrack   bool
}

// writeBit appends one bit (0 or 1).
func (w *bitWriter) writeBit(b byte) {
	if w.backtrack {
		w.backtrack = false
		if b != 0 {
			w.out[len(w.out)-1] |= 1
		}
		return
	}

	if w.bitMask == 0 {
		w.bitMask = 0x80
		w.bitIndex = len(w.out)
		w.out = append(w.out, 0)
	}

	if b != 0 {
		w.out[w.bitIndex] |= w.bitMask
	}
	w.bitMask >>= 1
	w.bitsWritten++
}

// writeByte appends one raw byte.
func (w *bitWriter) writeByte(v byte) {
	w.out = append(w.out, v)
}

// beginBacktrack makes the next writeBit reuse the low bit of the last
// appended raw byte. The caller must have left that bit clear.
func (w *bitWriter) beginBacktrack() {
	w.backtrack = true
}

// bitReader consumes the stream bitWriter produces.
type bitReader struct {
	src       []byte
	pos       int  // next unread byte
	bitByte   byte // current bit byte being drained
	bitMask   byte // next unread slot in bitByte (0 = none)
	lastByte  byte // most recent raw byte, for backtrack
	backtrack bool
}

// readBit reads one bit, fetching the next bit byte from the stream when the
// current one is drained.
func (r *bitReader) readBit() (byte, error) {
	if r.backtrack {
		r.backtrack = false
		return r.lastByte & 1, nil
	}

	if r.bitMask == 0 {
		if r.pos >= len(r.src) {
			return 0, ErrInputOverrun
		}

		r.bitByte = r.src[r.pos]
		r.pos++
		r.bitMask = 0x80
	}

	var b byte
	if r.bitByte&r.bitMask != 0 {
		b = 1
	}
	r.bitMask >>= 1

	return b, nil
}

// readByte reads one raw byte and remembers it for backtrack.
func (r *bitReader) readByte() (byte, error) {
	if r.pos >= len(r.src) {
		return 0, ErrInputOverrun
	}

	v := r.src[r.pos]
	r.pos++
	r.lastByte = v

	return v, nil
}

// beginBacktrack makes the next readBit return the low bit of the last raw
// byte read.
func (r *bitReader) beginBacktrack() {
	r.backtrack = true
}
