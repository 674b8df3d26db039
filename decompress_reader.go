// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

import "io"

// DecompressFromReader reads the full stream then calls Decompress; the
// format is not streamable (bit bytes interleave with raw bytes ahead of
// them). If opts.MaxInputSize > 0 and more bytes are read, returns
// ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}
