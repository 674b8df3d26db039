// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// ZX0 format constants: offset ceilings, end marker, and parser search bounds.

// Match offset bounds per mode. The format itself cannot address further back
// than maxOffsetBest: the offset MSB gamma tops out at 255 with a 7-bit LSB.
const (
	maxOffsetBest  = 32640 // ZX0 ceiling: 255*128
	maxOffsetQuick = 2176  // classic ZX7 ceiling

	// initialOffset is the decoder's last-offset value before any copy token,
	// so a repeat may legally appear before the first new-offset copy.
	initialOffset = 1

	// endMarkerMSB is the reserved offset-MSB gamma value closing the stream;
	// real offsets never exceed MSB 255.
	endMarkerMSB = 256

	// offsetLSBLimit is the modulus splitting an offset into gamma MSB and
	// one-byte LSB parts.
	offsetLSBLimit = 128
)

// Optimizer search bounds.
const (
	// maxMatchCandidates caps copy candidates retained per input position.
	maxMatchCandidates = 32
	// earlyAcceptCandidates is the count below which every candidate is kept;
	// past it only candidates improving the best cost-per-byte score are.
	earlyAcceptCandidates = 16
	// maxMatchScan caps how many occurrences the candidate scan examines per
	// position (hash-chain depth limit in conventional matchers).
	maxMatchScan = 256
	// blockSlabSize is the minimum arena growth step of the block pool.
	blockSlabSize = 4096
)
