// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// Decompress decodes a ZX0 stream produced with matching bit conventions.
// opts may be nil (forward stream, inverted gamma polarity). Returns
// ErrEmptyInput for an empty src; malformed streams fail with
// ErrInputOverrun, ErrLookBehindUnderrun or ErrGammaOverflow. The format
// has no checksum, so no partial result is returned.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	data := src
	if opts.Backwards {
		data = reversedCopy(src)
	}

	g := newGammaCoding(opts.Backwards, opts.Invert, opts.LittleEndianElias)
	out, err := decompressCore(data, opts.Prefix, opts.MaxOutputSize, g)
	if err != nil {
		return nil, err
	}

	if opts.Backwards {
		reverseBytes(out)
	}

	return out, nil
}

// decompressCore runs the inverse state machine. A clear flag bit selects a
// literal run after the start or any match, and a repeat of the last offset
// after a literal run; a set flag bit reads a new offset, or ends the
// stream when the offset MSB gamma decodes to the reserved end marker.
func decompressCore(src, prefix []byte, maxOut int, g gammaCoding) ([]byte, error) {
	r := bitReader{src: src}
	out := []byte{}
	lastOffset := initialOffset
	afterLiteral := false

	for {
		flag, err := r.readBit()
		if err != nil {
			return nil, err
		}

		if flag == 0 {
			length, err := readGamma(&r, g)
			if err != nil {
				return nil, err
			}
			if maxOut > 0 && len(out)+length > maxOut {
				return nil, ErrOutputTooLarge
			}

			if afterLiteral {
				out, err = appendBackRef(out, prefix, lastOffset, length)
				if err != nil {
					return nil, err
				}
				afterLiteral = false

				continue
			}

			for i := 0; i < length; i++ {
				b, err := r.readByte()
				if err != nil {
					return nil, err
				}

				out = append(out, b)
			}
			afterLiteral = true

			continue
		}

		msb, err := readGamma(&r, g)
		if err != nil {
			return nil, err
		}
		if msb == endMarkerMSB {
			return out, nil
		}
		if msb > endMarkerMSB {
			return nil, ErrGammaOverflow
		}

		lsb, err := r.readByte()
		if err != nil {
			return nil, err
		}

		offset := offsetFromLSBByte(msb, lsb, g)
		r.beginBacktrack()

		length, err := readGamma(&r, g)
		if err != nil {
			return nil, err
		}
		length++

		if maxOut > 0 && len(out)+length > maxOut {
			return nil, ErrOutputTooLarge
		}

		out, err = appendBackRef(out, prefix, offset, length)
		if err != nil {
			return nil, err
		}

		lastOffset = offset
		afterLiteral = false
	}
}
