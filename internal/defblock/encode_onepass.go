package defblock

import (
	"github.com/go-fpng/fpng/internal/bitio"
	"github.com/go-fpng/fpng/internal/checksum"
	"github.com/go-fpng/fpng/internal/huffman"
	"github.com/go-fpng/fpng/internal/rle"
)

// EncodeOnePass compresses filtered using the canned preamble and literal
// code table (onepass_tables.go) instead of building one from this
// image's own histogram: no frequency counting, no Huffman construction,
// just a straight scan-and-emit. This is fpng's default, fast encode
// path. Grounded on pixel_deflate_dyn_3_rle_one_pass /
// pixel_deflate_dyn_4_rle_one_pass.
func EncodeOnePass(filtered []byte, w, h, chans int, dst []byte) (n int, ok bool) {
	bpl := 1 + w*chans
	if len(filtered) < bpl*h {
		return 0, false
	}

	var preamble []byte
	var codes *[288]huffCode
	var bitBuf uint64
	var bitBufSize uint
	if chans == 3 {
		preamble, codes, bitBuf, bitBufSize = dynHuff3Preamble, &dynHuff3Codes, dynHuff3BitBuf, dynHuff3BitBufSize
	} else {
		preamble, codes, bitBuf, bitBufSize = dynHuff4Preamble, &dynHuff4Codes, dynHuff4BitBuf, dynHuff4BitBufSize
	}

	if len(dst) < len(preamble) {
		return 0, false
	}
	copy(dst, preamble)
	bw := bitio.NewWriterAt(dst, len(preamble))
	bw.SetBitBufState(bitBuf, bitBufSize)

	adler := checksum.Adler32(checksum.Adler32Init, filtered[:bpl*h])

	maxMatch := 255
	if chans == 4 {
		maxMatch = 252
	}

	putLitByte := func(b byte) bool {
		c := codes[b]
		return bw.Put(uint32(c.code), uint(c.size))
	}
	putWord := func(word uint32) bool {
		for c := 0; c < chans; c++ {
			if !putLitByte(byte(word)) {
				return false
			}
			word >>= 8
		}
		return true
	}
	litBits := func(word uint32) uint {
		var total uint
		for c := 0; c < chans; c++ {
			total += uint(codes[byte(word)].size)
			word >>= 8
		}
		return total
	}

	for y := 0; y < h; y++ {
		row := filtered[y*bpl : (y+1)*bpl]
		ofs := 1
		end := len(row)

		if !putLitByte(row[0]) {
			return 0, false
		}

		word := loadWordAt(row, ofs, chans)
		if !putWord(word) {
			return 0, false
		}
		prev := word
		ofs += chans

		for ofs < end {
			word = loadWordAt(row, ofs, chans)
			if word == prev {
				matchLen := chans
				maxLen := end - ofs
				if maxLen > maxMatch {
					maxLen = maxMatch
				}
				for matchLen < maxLen && loadWordAt(row, ofs+matchLen, chans) == word {
					matchLen += chans
				}

				adj := rle.LengthIndex(uint32(matchLen))
				sym := huffman.LenSym[adj]
				matchCode := codes[sym]
				extra := huffman.LenExtra[adj]

				// fpng's optional cost check: at the minimum match length
				// (no extended run beyond one extra pixel), a short match
				// can cost more bits than just emitting chans literals
				// under this canned table. Preserved bit-for-bit per the
				// original's 4-channel heuristic.
				if chans == 4 && matchLen == 4 {
					if uint(matchCode.size)+uint(extra)+1 > litBits(word) {
						if !putWord(word) {
							return 0, false
						}
						prev = word
						ofs += chans
						continue
					}
				}

				if !bw.Put(uint32(matchCode.code), uint(matchCode.size)) {
					return 0, false
				}
				bits := adj & huffman.Bitmasks[extra]
				if !bw.Put(bits, uint(extra)+1) {
					return 0, false
				}
				ofs += matchLen
			} else {
				if !putWord(word) {
					return 0, false
				}
				prev = word
				ofs += chans
			}
		}
	}

	eob := codes[huffman.EOBSymbol]
	if !bw.Put(uint32(eob.code), uint(eob.size)) {
		return 0, false
	}
	if !bw.FlushFinal() {
		return 0, false
	}

	trailer := []byte{byte(adler >> 24), byte(adler >> 16), byte(adler >> 8), byte(adler)}
	if !bw.PutBytes(trailer) {
		return 0, false
	}

	return bw.Pos(), true
}

// loadWordAt reads chans bytes from row starting at ofs as a little-endian
// word, matching rle.ScanRow's bounds-safe word load.
func loadWordAt(row []byte, ofs, chans int) uint32 {
	if chans == 4 {
		return uint32(row[ofs]) | uint32(row[ofs+1])<<8 | uint32(row[ofs+2])<<16 | uint32(row[ofs+3])<<24
	}
	return uint32(row[ofs]) | uint32(row[ofs+1])<<8 | uint32(row[ofs+2])<<16
}
