// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

/*
Package zx0 implements ZX0-family compression and decompression with an
optimal (minimum bit cost) parser.

The format is a raw token stream with no header. Tokens are a literal run, a
repeat (reuse the last match offset), or a copy from a new offset; lengths
and offset MSBs use interlaced Elias-gamma codes, bits packed MSB-first into
bit bytes interleaved with raw bytes. A copy stores the offset LSB in the
high seven bits of one raw byte; that byte's low bit is a shared slot holding
the first bit of the length gamma code ("backtrack"). The stream ends with a
copy flag whose offset MSB gamma decodes to 256.

Three bit-convention toggles select compatible format variants and must match
between Compress and Decompress: Backwards (buffers byte-reversed for
depackers that run from the end of memory; gamma stop-bit polarity and the
offset LSB bits flip with it), Invert (gamma value-bit polarity, the default),
and LittleEndianElias (gamma value bits emitted low-to-high).

# Compress

Options may be nil (forward stream, inverted gamma, best mode):

	out, err := zx0.Compress(data, nil)
	out, err := zx0.Compress(data, &zx0.CompressOptions{Quick: true})

Quick mode trades ratio for speed: it narrows the survivor beam and lowers
the match offset ceiling to 2176 (the classic ZX7 limit) instead of 32640.

Skip excludes a leading prefix from the stream while still allowing matches
into it, for in-place depacking; the decompressor is then given the same
bytes via DecompressOptions.Prefix:

	out, err := zx0.Compress(data, &zx0.CompressOptions{Skip: 256})
	raw, err := zx0.Decompress(out, &zx0.DecompressOptions{Prefix: data[:256]})

A Compressor instance reuses its scratch state (prefix index, block arena,
buckets) across calls and is not safe for concurrent use; package-level
Compress draws instances from an internal pool, so independent goroutines
may call it freely.

# Decompress

The format carries no decompressed size; output grows as the stream decodes.
MaxOutputSize bounds it when the input is untrusted:

	out, err := zx0.Decompress(compressed, nil)
	out, err := zx0.Decompress(compressed, &zx0.DecompressOptions{MaxOutputSize: 1 << 20})

From an io.Reader:

	out, err := zx0.DecompressFromReader(r, nil)
*/
package zx0
