package zx0

import (
	"errors"
	"fmt"
	"testing"
)

func allGammaCodings() []struct {
	name string
	g    gammaCoding
} {
	codings := []struct {
		name string
		g    gammaCoding
	}{}

	for _, backwards := range []bool{false, true} {
		for _, invert := range []bool{false, true} {
			for _, le := range []bool{false, true} {
				codings = append(codings, struct {
					name string
					g    gammaCoding
				}{
					name: fmt.Sprintf("b=%t/i=%t/le=%t", backwards, invert, le),
					g:    newGammaCoding(backwards, invert, le),
				})
			}
		}
	}

	return codings
}

func TestGamma_RoundTripAndBitCount(t *testing.T) {
	for _, c := range allGammaCodings() {
		t.Run(c.name, func(t *testing.T) {
			for v := 1; v <= 1023; v++ {
				w := bitWriter{}
				writeGamma(&w, v, c.g)

				if got, want := w.bitsWritten, eliasGammaBits(v); got != want {
					t.Fatalf("v=%d: wrote %d bits, cost model says %d", v, got, want)
				}

				r := bitReader{src: w.out}
				got, err := readGamma(&r, c.g)
				if err != nil {
					t.Fatalf("v=%d: readGamma failed: %v", v, err)
				}
				if got != v {
					t.Fatalf("round-trip mismatch: wrote %d, read %d", v, got)
				}
			}
		})
	}
}

func TestGamma_LargePowersOfTwo(t *testing.T) {
	g := newGammaCoding(false, true, false)
	for _, v := range []int{1 << 10, 1<<14 + 3, 1 << 20, 1<<24 - 1} {
		w := bitWriter{}
		writeGamma(&w, v, g)

		r := bitReader{src: w.out}
		got, err := readGamma(&r, g)
		if err != nil {
			t.Fatalf("v=%d: readGamma failed: %v", v, err)
		}
		if got != v {
			t.Fatalf("round-trip mismatch: wrote %d, read %d", v, got)
		}
	}
}

func TestGamma_WritePanicsBelowOne(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("writeGamma(0) did not panic")
		}
	}()

	w := bitWriter{}
	writeGamma(&w, 0, newGammaCoding(false, false, false))
}

func TestGamma_ReadOverflow(t *testing.T) {
	// An endless run of continuation pairs must trip the overflow guard in
	// both big- and little-endian modes.
	for _, le := range []bool{false, true} {
		g := newGammaCoding(false, false, le)
		w := bitWriter{}
		for i := 0; i < 40; i++ {
			w.writeBit(g.moreBit)
			w.writeBit(1)
		}

		r := bitReader{src: w.out}
		if _, err := readGamma(&r, g); !errors.Is(err, ErrGammaOverflow) {
			t.Fatalf("le=%t: got %v, want ErrGammaOverflow", le, err)
		}
	}
}

func TestBitWriter_BacktrackSharesRawByteBit(t *testing.T) {
	w := bitWriter{}
	w.writeBit(1)
	w.writeByte(0x40)
	w.beginBacktrack()
	w.writeBit(1)

	if len(w.out) != 2 {
		t.Fatalf("expected 2 bytes, got %d", len(w.out))
	}
	if w.out[1] != 0x41 {
		t.Fatalf("backtrack bit not in raw byte: got %#02x", w.out[1])
	}
	if w.bitsWritten != 1 {
		t.Fatalf("backtrack bit counted as a fresh slot: bitsWritten=%d", w.bitsWritten)
	}

	r := bitReader{src: w.out}
	if b, _ := r.readBit(); b != 1 {
		t.Fatal("first bit mismatch")
	}
	raw, err := r.readByte()
	if err != nil || raw != 0x41 {
		t.Fatalf("raw byte mismatch: %#02x err=%v", raw, err)
	}
	r.beginBacktrack()
	if b, _ := r.readBit(); b != 1 {
		t.Fatal("backtrack bit mismatch")
	}
}

func TestBitReader_OverrunPastEnd(t *testing.T) {
	r := bitReader{src: []byte{0x80}}
	for i := 0; i < 8; i++ {
		if _, err := r.readBit(); err != nil {
			t.Fatalf("bit %d within the stream failed: %v", i, err)
		}
	}
	if _, err := r.readBit(); !errors.Is(err, ErrInputOverrun) {
		t.Fatalf("got %v, want ErrInputOverrun", err)
	}

	r = bitReader{src: nil}
	if _, err := r.readByte(); !errors.Is(err, ErrInputOverrun) {
		t.Fatalf("readByte on empty src: got %v, want ErrInputOverrun", err)
	}
}

func TestCostModel_CopyChargesBacktrackReuse(t *testing.T) {
	// A copy's length gamma borrows its first bit from the LSB byte, so the
	// total is one bit less than the sum of its parts.
	for _, tc := range []struct {
		offset, length int
	}{
		{1, 2}, {128, 3}, {129, 2}, {32640, 65536},
	} {
		msbBits := eliasGammaBits((tc.offset-1)/offsetLSBLimit + 1)
		lenBits := eliasGammaBits(tc.length - 1)
		want := 1 + msbBits + 8 + lenBits - 1

		if got := copyCost(tc.offset, tc.length); got != want {
			t.Fatalf("copyCost(%d,%d)=%d, want %d", tc.offset, tc.length, got, want)
		}
	}

	if got := literalCost(1); got != 10 {
		t.Fatalf("literalCost(1)=%d, want 10", got)
	}
	if got := repeatCost(20); got != 10 {
		t.Fatalf("repeatCost(20)=%d, want 10", got)
	}
}
