// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// Compress compresses src into the ZX0 bit-stream format. opts may be nil
// (forward stream, inverted gamma polarity, best mode). An empty src yields
// a stream holding only the end marker.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	c := acquireCompressor()
	defer releaseCompressor(c)

	return c.compress(src, opts)
}

// Compressor compresses buffers while reusing its scratch state (prefix
// index, block arena, survivor buckets) across calls. Not safe for
// concurrent use; give each goroutine its own instance, or use the
// package-level Compress which pools instances internally.
type Compressor struct {
	c compressor
}

// NewCompressor returns a Compressor with empty scratch state.
func NewCompressor() *Compressor {
	return &Compressor{}
}

// Compress compresses src; see the package-level Compress.
func (z *Compressor) Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	return z.c.compress(src, opts)
}

func (c *compressor) compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	skip := opts.Skip
	if skip < 0 || skip > len(src) {
		return nil, ErrSkipOutOfRange
	}

	mode := fixedModes[0]
	if opts.Quick {
		mode = fixedModes[1]
	}

	maxOffset := mode.maxOffset
	if opts.MaxOffset > 0 {
		maxOffset = min(opts.MaxOffset, maxOffsetBest)
	}

	input := src
	if opts.Backwards {
		input = reversedCopy(src)
	}

	c.input = input
	c.maxOffset = maxOffset
	c.survivors = mode.survivors
	defer c.reset()

	g := newGammaCoding(opts.Backwards, opts.Invert, opts.LittleEndianElias)
	out := c.emit(c.optimize(skip), skip, g)

	if opts.Backwards {
		reverseBytes(out)
	}

	return out, nil
}
