// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

const prefixCount = 1 << 16

// prefixIndex maps every 2-byte little-endian prefix of the input to the
// positions where it occurs, in increasing order. It exists purely to bound
// match discovery: without it every position would rescan the buffer.
// Reused across compress calls; initialize clears previous state.
type prefixIndex struct {
	starts    [prefixCount]int32 // after initialize, starts[p] is the end offset of bucket p
	positions []int32
}

// prefixAt returns the 2-byte little-endian prefix value at buf[i].
func prefixAt(buf []byte, i int) int {
	return int(buf[i]) | int(buf[i+1])<<8
}

// initialize rebuilds the index over buf with a two-pass counting sort:
// count occurrences per prefix, prefix-sum into bucket offsets, scatter
// positions. Inputs shorter than 2 bytes yield an empty index.
func (x *prefixIndex) initialize(buf []byte) {
	clear(x.starts[:])

	n := len(buf) - 1
	if n <= 0 {
		x.positions = x.positions[:0]
		return
	}

	if cap(x.positions) < n {
		x.positions = make([]int32, n)
	} else {
		x.positions = x.positions[:n]
	}

	for i := 0; i < n; i++ {
		x.starts[prefixAt(buf, i)]++
	}

	var sum int32
	for p := range x.starts {
		count := x.starts[p]
		x.starts[p] = sum
		sum += count
	}

	// Scattering in input order keeps each bucket sorted ascending and
	// advances starts[p] to the bucket's end offset.
	for i := 0; i < n; i++ {
		p := prefixAt(buf, i)
		x.positions[x.starts[p]] = int32(i)
		x.starts[p]++
	}
}

// occurrences returns the sorted positions where prefix p occurs.
func (x *prefixIndex) occurrences(p int) []int32 {
	end := x.starts[p]
	var begin int32
	if p > 0 {
		begin = x.starts[p-1]
	}

	return x.positions[begin:end]
}
