// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// CompressOptions configures compression (format variant and parser effort).
type CompressOptions struct {
	// Skip excludes the first Skip input bytes from the emitted stream while
	// still letting matches reference them (in-place depacking). The paired
	// Decompress call must supply the same bytes via DecompressOptions.Prefix.
	Skip int
	// MaxOffset overrides the match offset ceiling (0 = mode default).
	// Values above the format ceiling of 32640 are clamped.
	MaxOffset int
	// Backwards byte-reverses input and output and flips the gamma stop-bit
	// polarity, for depackers that decompress from the end of memory.
	Backwards bool
	// Invert flips the gamma value-bit polarity. Most consumers expect true;
	// the BitFire variant requires false.
	Invert bool
	// LittleEndianElias emits gamma value bits low-to-high instead of
	// high-to-low.
	LittleEndianElias bool
	// Quick narrows the survivor beam and lowers the offset ceiling to the
	// classic ZX7 limit, trading ratio for speed.
	Quick bool
}

// DefaultCompressOptions returns options for the default format variant
// (forward stream, inverted gamma polarity, best mode).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Invert: true}
}

// DecompressOptions configures decompression. The bit-convention fields must
// match the ones the stream was compressed with.
type DecompressOptions struct {
	// Prefix supplies the bytes a Skip compression excluded from the stream,
	// as the initial lookbehind window. In processing (stream) order.
	Prefix []byte
	// MaxOutputSize limits decoded output growth (0 = no limit). The format
	// has no size header, so set this for untrusted input.
	MaxOutputSize int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
	// Backwards must match CompressOptions.Backwards.
	Backwards bool
	// Invert must match CompressOptions.Invert.
	Invert bool
	// LittleEndianElias must match CompressOptions.LittleEndianElias.
	LittleEndianElias bool
}

// DefaultDecompressOptions returns options matching DefaultCompressOptions.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{Invert: true}
}
