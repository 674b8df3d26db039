// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// matchCandidate is a transient record of one match found at an input
// position.
type matchCandidate struct {
	offset int
	length int
}

// matchLength returns the common prefix length of buf[src:] and buf[pos:],
// src < pos. The first two bytes are known equal from the prefix index.
// Overlapping matches (length > pos-src) are fine: the decoder copies
// forward a byte at a time.
func matchLength(buf []byte, src, pos int) int {
	n := 2
	for pos+n < len(buf) && buf[src+n] == buf[pos+n] {
		n++
	}

	return n
}

// repeatLength returns how many bytes at pos continue a match at the given
// offset, or 0 when none do.
func (c *compressor) repeatLength(pos, offset int) int {
	if offset < 1 || pos < offset {
		return 0
	}

	n := 0
	for pos+n < len(c.input) && c.input[pos+n-offset] == c.input[pos+n] {
		n++
	}

	return n
}

// findCopyCandidates collects new-offset match candidates at pos into
// c.candidates, nearest source first. Occurrence lists are scanned only
// below the offset ceiling and at most maxMatchScan deep; up to
// earlyAcceptCandidates are kept unconditionally, then only candidates
// improving the best cost-per-byte score, capped at maxMatchCandidates.
// Candidates on the same diagonal (equal offset-length) collapse into the
// longest one.
//
// Per-position work stays proportional to the candidate cap, not the
// occurrence count: a single byte compare against the longest candidate so
// far rejects a source before any full match scan, the occurrence walk
// stops at the scan cap, and a gated candidate that fails to improve the
// score ends the walk (farther sources only cost more per byte).
func (c *compressor) findCopyCandidates(pos int) {
	c.candidates = c.candidates[:0]
	if pos+1 >= len(c.input) {
		return
	}

	occ := c.index.occurrences(prefixAt(c.input, pos))

	// First occurrence at or after pos; everything before it is a source.
	lo, hi := 0, len(occ)
	for lo < hi {
		mid := (lo + hi) / 2
		if int(occ[mid]) < pos {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	var bestScore float64
	bestLength := 0
	scanned := 0
	for k := lo - 1; k >= 0; k-- {
		offset := pos - int(occ[k])
		if offset > c.maxOffset {
			break
		}

		scanned++
		if scanned > maxMatchScan {
			break
		}

		src := int(occ[k])
		if bestLength > 0 &&
			(pos+bestLength >= len(c.input) || c.input[src+bestLength] != c.input[pos+bestLength]) {
			continue // cannot outlast the longest candidate at a farther offset
		}

		length := matchLength(c.input, src, pos)

		if n := len(c.candidates); n > 0 {
			prev := &c.candidates[n-1]
			if offset-length == prev.offset-prev.length {
				if length > prev.length {
					prev.offset = offset
					prev.length = length
					if length > bestLength {
						bestLength = length
					}
				}

				continue
			}
		}

		score := float64(copyCost(offset, length)) / float64(length)
		if len(c.candidates) >= earlyAcceptCandidates && score >= bestScore {
			break
		}
		if len(c.candidates) == 0 || score < bestScore {
			bestScore = score
		}
		if length > bestLength {
			bestLength = length
		}

		c.candidates = append(c.candidates, matchCandidate{offset: offset, length: length})
		if len(c.candidates) >= maxMatchCandidates {
			break
		}
	}
}
