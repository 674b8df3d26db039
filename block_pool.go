// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// blockRef is a dense index into the block arena. nilRef means no block;
// index handles replace pointers so chains need no per-node allocation and
// the whole arena resets in O(1) between compress calls.
type blockRef = int32

const nilRef blockRef = -1

// parseBlock is one parse-state node: reaching input position index at a
// cumulative cost of bits, via a literal run or a match of length bytes at
// offset, continuing from the chain at next. For a literal block, offset is
// the offset inherited from the preceding match (the decoder's last offset).
type parseBlock struct {
	next    blockRef
	bits    uint32
	index   int32
	offset  int32
	length  int32
	refs    int32
	literal bool
}

// blockPool is an arena allocator with an index free list. Slabs grow the
// arena in bulk; released blocks recycle through free.
type blockPool struct {
	blocks []parseBlock
	free   []blockRef
}

// alloc returns a block with refs=1 (the caller's bucket reference) and
// retains next.
func (p *blockPool) alloc(next blockRef, bits uint32, index, offset, length int32, literal bool) blockRef {
	var r blockRef
	if n := len(p.free); n > 0 {
		r = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		if len(p.blocks) == cap(p.blocks) {
			p.grow()
		}

		r = blockRef(len(p.blocks))
		p.blocks = p.blocks[:len(p.blocks)+1]
	}

	p.blocks[r] = parseBlock{
		next:    next,
		bits:    bits,
		index:   index,
		offset:  offset,
		length:  length,
		refs:    1,
		literal: literal,
	}

	if next != nilRef {
		p.blocks[next].refs++
	}

	return r
}

func (p *blockPool) grow() {
	newCap := cap(p.blocks) * 2
	if newCap < blockSlabSize {
		newCap = blockSlabSize
	}

	grown := make([]parseBlock, len(p.blocks), newCap)
	copy(grown, p.blocks)
	p.blocks = grown
}

// retain adds a reference to r.
func (p *blockPool) retain(r blockRef) {
	p.blocks[r].refs++
}

// release drops one reference from r; a block reaching zero returns to the
// free list and drops its reference on next. The chain walk is an explicit
// loop, not recursion: parse chains are as long as the input.
func (p *blockPool) release(r blockRef) {
	for r != nilRef {
		b := &p.blocks[r]
		b.refs--
		if b.refs > 0 {
			return
		}
		if b.refs < 0 {
			panic("zx0: block refcount underrun")
		}

		p.free = append(p.free, r)
		r = b.next
	}
}

// liveBlocks reports blocks currently allocated and not freed.
func (p *blockPool) liveBlocks() int {
	return len(p.blocks) - len(p.free)
}

// reset discards every block. All refs are assumed unreachable; the backing
// arrays are kept for the next compress call.
func (p *blockPool) reset() {
	p.blocks = p.blocks[:0]
	p.free = p.free[:0]
}
