// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// appendBackRef appends length bytes copied from offset back, reading from
// prefix for positions before the start of out. When offset < length the
// source overlaps the bytes being appended; copying byte-by-byte makes the
// freshly written bytes available, so short-offset runs replicate correctly.
func appendBackRef(out []byte, prefix []byte, offset, length int) ([]byte, error) {
	if offset < 1 {
		return out, ErrLookBehindUnderrun
	}

	start := len(out) - offset
	if start+len(prefix) < 0 {
		return out, ErrLookBehindUnderrun
	}

	for i := 0; i < length; i++ {
		src := start + i
		if src < 0 {
			out = append(out, prefix[len(prefix)+src])
		} else {
			out = append(out, out[src])
		}
	}

	return out, nil
}

// reversedCopy returns b reversed without touching b.
func reversedCopy(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}

	return out
}

// reverseBytes reverses b in place.
func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
