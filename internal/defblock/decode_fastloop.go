package defblock

import (
	"github.com/go-fpng/fpng/internal/bitio"
	"github.com/go-fpng/fpng/internal/huffman"
	"github.com/go-fpng/fpng/internal/rle"
)

// DecodeZlib inverts either WriteRawZlib's stored-block stream or
// EncodeTwoPass/EncodeOnePass's single dynamic-Huffman block, reconstructing
// a w*h image of srcChans-byte pixels and writing it to dst as dstChans-byte
// pixels (appending an opaque alpha byte when widening, dropping the
// trailing byte when narrowing). Every bounds and framing check returns
// false rather than panicking, since src may be adversarial input.
// Grounded on fpng_decompress_png_data / the BTYPE dispatch in
// fpng_pixel_zlib_raw_decompress's caller.
func DecodeZlib(src []byte, w, h, srcChans, dstChans int, dst []byte) bool {
	if len(src) < 6 {
		return false
	}
	if src[0]&0x0F != 8 {
		return false
	}
	if (uint16(src[0])<<8|uint16(src[1]))%31 != 0 {
		return false
	}
	if src[1]&0x20 != 0 {
		return false
	}

	btype := (src[2] >> 1) & 3
	if btype == 0 {
		return DecodeRawZlib(src, len(src), dst, w, h, srcChans, dstChans)
	}
	if btype != 2 {
		return false
	}

	srcBPL := w * srcChans
	dstBPL := w * dstChans
	if len(dst) < dstBPL*h {
		return false
	}

	r := bitio.NewReader(src[2:])
	bfinal, ok := r.Get(1)
	if !ok || bfinal != 1 {
		return false
	}
	bt, ok := r.Get(2)
	if !ok || bt != 2 {
		return false
	}

	litTable := make([]uint32, DecoderTableSize)
	if !PrepareDynamicBlock(r, litTable, srcChans) {
		return false
	}

	prevRow := make([]byte, srcBPL)
	curRow := make([]byte, srcBPL)

	for y := 0; y < h; y++ {
		tagSym, ok := decodeLitSym(r, litTable)
		if !ok || tagSym > 255 {
			return false
		}
		expectedTag := uint32(rle.FilterNone)
		if y > 0 {
			expectedTag = rle.FilterUp
		}
		if tagSym != expectedTag {
			return false
		}

		x := 0
		for x < srcBPL {
			sym, ok := decodeLitSym(r, litTable)
			if !ok {
				return false
			}

			switch {
			case sym < 256:
				curRow[x] = byte(sym)
				x++

			case sym >= 257 && sym <= 285:
				adj := sym - 257
				extra := lengthExtraBits[adj]
				var extraBits uint32
				if extra > 0 {
					v, ok := r.Get(extra)
					if !ok {
						return false
					}
					extraBits = v
				}
				matchLen := lengthBase[adj] + extraBits

				distBit, ok := r.Get(1)
				if !ok || distBit != 0 {
					return false
				}

				if srcChans == 3 {
					if matchLen > 258 || !matchLenValid3[matchLen] {
						return false
					}
				} else {
					if matchLen < 4 || matchLen%4 != 0 {
						return false
					}
				}
				if x < srcChans {
					return false
				}
				if int(matchLen) > srcBPL-x {
					return false
				}

				for i := uint32(0); i < matchLen; i++ {
					curRow[x+int(i)] = curRow[x+int(i)-srcChans]
				}
				x += int(matchLen)

			default:
				return false
			}
		}
		if x != srcBPL {
			return false
		}

		if y == h-1 {
			eobSym, ok := decodeLitSym(r, litTable)
			if !ok || eobSym != huffman.EOBSymbol {
				return false
			}
		}

		if y > 0 {
			for i := 0; i < srcBPL; i++ {
				curRow[i] += prevRow[i]
			}
		}

		convertRow(curRow, dst[y*dstBPL:(y+1)*dstBPL], w, srcChans, dstChans)
		copy(prevRow, curRow)
	}

	// The zlib Adler-32 trailer is not verified: the bit-level constraints
	// already enforced while decoding (distance bit always 0, filter tags
	// matching expectation, match lengths a multiple of the channel
	// stride) detect corruption with overwhelming probability on their
	// own. Only its presence is checked, by requiring the bitstream to
	// end exactly 4 bytes before src's end.
	r.AlignToByte()
	trailerOfs := 2 + r.BytePos()
	if trailerOfs+4 != len(src) {
		return false
	}

	return true
}

// decodeLitSym decodes one symbol from the literal/length alphabet using
// table, which must have been built by PrepareDynamicBlock. It peeks
// speculatively into zero-padded lookahead past the real end of the
// buffered bits, but Skip rejects the result if the matched code turns
// out to need more real bits than are actually buffered, so truncated
// input is always reported rather than silently misdecoded.
func decodeLitSym(r *bitio.Reader, table []uint32) (uint32, bool) {
	entry := table[r.Peek(DecoderTableBits)]
	length := (entry >> primaryLenShift) & primaryLenMask
	if length == 0 {
		return 0, false
	}
	if !r.Skip(uint(length)) {
		return 0, false
	}
	return entry & 511, true
}

// convertRow copies one reconstructed row of w srcChans-byte pixels into
// dst as w dstChans-byte pixels, appending an opaque 0xFF alpha byte per
// pixel when widening 3->4 channels, or dropping the trailing alpha byte
// when narrowing 4->3. Grounded on the per-pixel channel copy in
// fpng_pixel_zlib_raw_decompress's comp_ofs bookkeeping, specialized here
// since every row is already fully reconstructed before conversion.
func convertRow(src []byte, dst []byte, w, srcChans, dstChans int) {
	if srcChans == dstChans {
		copy(dst, src)
		return
	}
	for x := 0; x < w; x++ {
		s := src[x*srcChans : x*srcChans+srcChans]
		d := dst[x*dstChans : x*dstChans+dstChans]
		if dstChans > srcChans {
			copy(d, s)
			d[srcChans] = 0xFF
		} else {
			copy(d, s[:dstChans])
		}
	}
}
