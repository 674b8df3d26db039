// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

import "sync"

// compressorScratchPool is a pool of compressor scratch states backing the
// package-level Compress.
var compressorScratchPool = sync.Pool{
	New: func() any {
		return &compressor{}
	},
}

// acquireCompressor acquires a compressor from the pool.
func acquireCompressor() *compressor {
	return compressorScratchPool.Get().(*compressor)
}

// releaseCompressor releases a compressor to the pool. Scratch arrays are
// kept; per-call state was already cleared by reset.
func releaseCompressor(c *compressor) {
	if c == nil {
		return
	}

	c.input = nil
	compressorScratchPool.Put(c)
}
