// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

import "errors"

// Sentinel errors for decompression and compression.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder reads past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output (and prefix).
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrGammaOverflow is returned when an interlaced Elias-gamma code decodes to an impossible value.
	ErrGammaOverflow = errors.New("elias gamma value overflow")
	// ErrOutputTooLarge is returned when decoded output would exceed DecompressOptions.MaxOutputSize.
	ErrOutputTooLarge = errors.New("output exceeds MaxOutputSize")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrSkipOutOfRange is returned when CompressOptions.Skip is negative or larger than the input.
	ErrSkipOutOfRange = errors.New("skip out of range")
)
