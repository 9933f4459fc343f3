package defblock

import (
	"github.com/go-fpng/fpng/internal/bitio"
	"github.com/go-fpng/fpng/internal/checksum"
	"github.com/go-fpng/fpng/internal/huffman"
	"github.com/go-fpng/fpng/internal/rle"
)

// EncodeTwoPass compresses filtered (the tag-prefixed filtered scanline
// buffer produced by rle.FilterImage) into a single dynamic-Huffman
// Deflate block wrapped in a minimal zlib stream, histogramming every
// literal and match symbol up front so the literal/length table is built
// to fit this exact image rather than a canned corpus average. Grounded
// on pixel_deflate_dyn_3_rle / pixel_deflate_dyn_4_rle, generalized over
// chans (3 or 4) per spec.md §9's generic-routine redesign.
//
// Returns the number of bytes written, or ok=false if dst is too small
// (the caller falls back to a raw/stored block).
func EncodeTwoPass(filtered []byte, w, h, chans int, dst []byte) (n int, ok bool) {
	tokens := make([]rle.Token, 0, (w+1)*h)
	litFreq := make([]uint32, huffman.MaxLitSymbols)
	return EncodeTwoPassScratch(filtered, w, h, chans, dst, tokens, litFreq)
}

// EncodeTwoPassScratch is EncodeTwoPass with its two per-call scratch
// arrays (the token buffer and the literal-frequency histogram) supplied
// by the caller instead of freshly allocated, so a pooled pair (see
// internal/scratch) can be reused across successive encode calls. tokens
// and litFreq are both reset internally; their capacity is all that's
// reused. litFreq must have length huffman.MaxLitSymbols.
func EncodeTwoPassScratch(filtered []byte, w, h, chans int, dst []byte, tokens []rle.Token, litFreq []uint32) (n int, ok bool) {
	bpl := 1 + w*chans
	if len(filtered) < bpl*h {
		return 0, false
	}

	tokens = tokens[:0]
	for i := range litFreq {
		litFreq[i] = 0
	}

	for y := 0; y < h; y++ {
		row := filtered[y*bpl : (y+1)*bpl]
		rle.ScanRow(row, chans, func(t rle.Token) {
			tokens = append(tokens, t)
			switch t.Kind {
			case rle.TokFilter:
				litFreq[t.Word]++
			case rle.TokLiteral:
				word := t.Word
				for c := 0; c < chans; c++ {
					litFreq[word&0xFF]++
					word >>= 8
				}
			case rle.TokMatch:
				adj := rle.LengthIndex(t.Len)
				litFreq[huffman.LenSym[adj]]++
			}
		})
	}
	litFreq[huffman.EOBSymbol] = 1

	rescaled := huffman.Rescale16(litFreq)
	litTable, err := huffman.Build(rescaled, 12)
	if err != nil {
		return 0, false
	}

	adler := checksum.Adler32(checksum.Adler32Init, filtered[:bpl*h])

	bw := bitio.NewWriter(dst)
	if !bw.PutByte(0x78) || !bw.PutByte(0x01) {
		return 0, false
	}
	if !bw.Put(1, 1) {
		return 0, false
	}
	if _, ok := WritePreamble(bw, litTable, chans); !ok {
		return 0, false
	}

	for _, t := range tokens {
		switch t.Kind {
		case rle.TokFilter:
			if !bw.Put(uint32(litTable.Codes[t.Word]), uint(litTable.CodeSizes[t.Word])) {
				return 0, false
			}
		case rle.TokLiteral:
			word := t.Word
			for c := 0; c < chans; c++ {
				sym := word & 0xFF
				if !bw.Put(uint32(litTable.Codes[sym]), uint(litTable.CodeSizes[sym])) {
					return 0, false
				}
				word >>= 8
			}
		case rle.TokMatch:
			adj := rle.LengthIndex(t.Len)
			sym := huffman.LenSym[adj]
			if !bw.Put(uint32(litTable.Codes[sym]), uint(litTable.CodeSizes[sym])) {
				return 0, false
			}
			extra := huffman.LenExtra[adj]
			bits := adj & huffman.Bitmasks[extra]
			// The +1 inserts the single always-zero distance-code bit:
			// the fixed stride distance's Huffman code has length 1 and
			// value 0, so padding one more zero bit above the length's
			// extra bits writes it for free.
			if !bw.Put(bits, uint(extra)+1) {
				return 0, false
			}
		}
	}

	if !bw.Put(uint32(litTable.Codes[huffman.EOBSymbol]), uint(litTable.CodeSizes[huffman.EOBSymbol])) {
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
