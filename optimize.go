// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// compressor holds all scratch state for compressing one buffer at a time:
// prefix index, block arena and per-position survivor buckets. State is
// reset, not reallocated, between calls; a single compressor is therefore
// not safe for concurrent use (see Compressor and the package pool).
type compressor struct {
	input      []byte
	index      prefixIndex
	pool       blockPool
	buckets    [][]blockRef
	candidates []matchCandidate
	steps      []encodeStep
	maxOffset  int
	survivors  int
}

// optimize runs the bucket-per-position dynamic program over input[skip:]
// and returns the terminal block of the cheapest parse, or nilRef when
// nothing remains to parse. The chain via next links reconstructs the parse
// back to the seed.
//
// Bucket i holds the surviving candidate parses ending exactly at position
// i, at most `survivors` of them, sorted ascending by cumulative bit cost,
// at most one per distinct offset. Each position batch extends every
// survivor of the previous bucket with a literal, a repeat of its inherited
// offset (literal predecessors only), and the position's copy candidates;
// match blocks land in the bucket where the match ends. A bucket is
// released as soon as its batch is processed: later blocks that chain
// through it hold their own references.
func (c *compressor) optimize(skip int) blockRef {
	size := len(c.input)
	if skip >= size {
		return nilRef
	}

	c.index.initialize(c.input)
	c.resizeBuckets(size)

	seed := c.pool.alloc(nilRef, uint32(literalCost(1)), int32(skip), initialOffset, 1, true)
	c.buckets[skip] = append(c.buckets[skip], seed)

	for pos := skip + 1; pos < size; pos++ {
		prev := c.buckets[pos-1]
		if len(prev) == 0 {
			continue
		}

		c.findCopyCandidates(pos)

		for _, ref := range prev {
			b := c.pool.blocks[ref]

			if b.literal {
				// Coalesce: extend the run in place of chaining length-1 literals.
				bits := b.bits - uint32(literalCost(int(b.length))) + uint32(literalCost(int(b.length)+1))
				c.insert(pos, b.next, bits, int(b.offset), int(b.length)+1, true)

				if l := c.repeatLength(pos, int(b.offset)); l > 0 {
					c.insert(pos+l-1, ref, b.bits+uint32(repeatCost(l)), int(b.offset), l, false)
				}
			} else {
				c.insert(pos, ref, b.bits+uint32(literalCost(1)), int(b.offset), 1, true)
			}

			for _, m := range c.candidates {
				if b.literal && m.offset == int(b.offset) {
					continue // the repeat form already covers this offset
				}

				c.insert(pos+m.length-1, ref, b.bits+uint32(copyCost(m.offset, m.length)), m.offset, m.length, false)
			}
		}

		c.releaseBucket(pos - 1)
	}

	last := c.buckets[size-1]
	if len(last) == 0 {
		panic("zx0: terminal bucket empty")
	}

	return last[0]
}

// insert places a candidate block into bucket pos, subject to dominance
// pruning (one survivor per offset, cheaper wins) and the beam cap (worst
// survivor evicted). Blocks are only allocated once accepted.
func (c *compressor) insert(pos int, next blockRef, bits uint32, offset, length int, literal bool) {
	bucket := c.buckets[pos]

	for i, ref := range bucket {
		if int(c.pool.blocks[ref].offset) != offset {
			continue
		}

		if c.pool.blocks[ref].bits <= bits {
			return
		}

		c.pool.release(ref)
		bucket = append(bucket[:i], bucket[i+1:]...)
		break
	}

	if len(bucket) >= c.survivors {
		worst := bucket[len(bucket)-1]
		if c.pool.blocks[worst].bits <= bits {
			c.buckets[pos] = bucket
			return
		}

		c.pool.release(worst)
		bucket = bucket[:len(bucket)-1]
	}

	r := c.pool.alloc(next, bits, int32(pos), int32(offset), int32(length), literal)

	at := len(bucket)
	for at > 0 && c.pool.blocks[bucket[at-1]].bits > bits {
		at--
	}

	bucket = append(bucket, nilRef)
	copy(bucket[at+1:], bucket[at:])
	bucket[at] = r
	c.buckets[pos] = bucket
}

// releaseBucket drops the bucket's references once no later batch can read it.
func (c *compressor) releaseBucket(pos int) {
	for _, ref := range c.buckets[pos] {
		c.pool.release(ref)
	}

	c.buckets[pos] = c.buckets[pos][:0]
}

func (c *compressor) resizeBuckets(size int) {
	if cap(c.buckets) < size {
		old := c.buckets
		c.buckets = make([][]blockRef, size)
		copy(c.buckets, old)
	} else {
		c.buckets = c.buckets[:size]
	}

	for i := range c.buckets {
		c.buckets[i] = c.buckets[i][:0]
	}
}

// reset clears per-call state. Backing arrays stay allocated for the next call.
func (c *compressor) reset() {
	c.input = nil
	c.pool.reset()

	for i := range c.buckets {
		c.buckets[i] = c.buckets[i][:0]
	}

	c.candidates = c.candidates[:0]
	c.steps = c.steps[:0]
}
