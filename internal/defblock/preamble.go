// Package defblock assembles and parses the single restricted Deflate
// block fpng-go ever emits: one final dynamic-Huffman block whose literal
// alphabet covers the 256 raw bytes plus the Deflate length codes, whose
// distance alphabet has exactly one code (always value 0, the fixed pixel
// stride), and whose row filters are limited to None (row 0) and Up
// (every other row).
package defblock

import (
	"github.com/go-fpng/fpng/internal/bitio"
	"github.com/go-fpng/fpng/internal/huffman"
)

// DistSym returns the one distance symbol this format ever emits for a
// given channel count: the fixed pixel-stride distance (3 or 4) falls
// within Deflate's first four distance codes, which carry zero extra
// bits and map symbol s to distance s+1 directly, so the stride distance
// chans is symbol chans-1. Grounded on g_defl_small_dist_sym[chans-1]
// (the small_dist_sym table's first four entries are the identity
// mapping 0,1,2,3).
func DistSym(chans int) int { return chans - 1 }

// bitLengthOrder is the order the code-length alphabet's 3-bit lengths
// are written in (and read back in), grounded on
// g_defl_packed_code_size_syms_swizzle / s_bit_length_order.
var bitLengthOrder = huffman.CodeLenSwizzle

// WritePreamble emits the dynamic-block preamble (BTYPE, HLIT, HDIST,
// HCLEN, the code-length-alphabet code lengths, and the RLE-packed
// literal/distance code length sequence) for litTable (the 288-symbol
// literal/length table) and the distance alphabet, which always has
// exactly chans codes (HDIST == chans, matching the decoder's
// num_dist_codes != num_chans check) with only DistSym(chans) non-zero.
// Grounded on defl_start_dynamic_block.
func WritePreamble(w *bitio.Writer, litTable huffman.Table, chans int) (clTable huffman.Table, ok bool) {
	numLitCodes := 286
	for numLitCodes > 257 && litTable.CodeSizes[numLitCodes-1] == 0 {
		numLitCodes--
	}
	numDistCodes := chans

	codeSizesToPack := make([]uint8, numLitCodes+numDistCodes)
	copy(codeSizesToPack, litTable.CodeSizes[:numLitCodes])
	codeSizesToPack[numLitCodes+DistSym(chans)] = 1 // the single distance code, always length 1

	clFreq := make([]uint32, huffman.MaxCodeLenSymbols)
	packed := packCodeLengths(codeSizesToPack, clFreq)

	clTable, err := huffman.Build(clFreq, 7)
	if err != nil {
		return huffman.Table{}, false
	}

	if !w.Put(2, 2) {
		return clTable, false
	}
	if !w.Put(uint32(numLitCodes-257), 5) {
		return clTable, false
	}
	if !w.Put(uint32(numDistCodes-1), 5) {
		return clTable, false
	}

	numBitLengths := 18
	for numBitLengths >= 0 && clTable.CodeSizes[bitLengthOrder[numBitLengths]] == 0 {
		numBitLengths--
	}
	numBitLengths++
	if numBitLengths < 4 {
		numBitLengths = 4
	}
	if !w.Put(uint32(numBitLengths-4), 4) {
		return clTable, false
	}
	for i := 0; i < numBitLengths; i++ {
		if !w.Put(uint32(clTable.CodeSizes[bitLengthOrder[i]]), 3) {
			return clTable, false
		}
	}

	extraBitsForSym := func(sym uint8) uint {
		switch sym {
		case 16:
			return 2
		case 17:
			return 3
		case 18:
			return 7
		}
		return 0
	}
	for i := 0; i < len(packed.syms); i++ {
		code := packed.syms[i]
		if !w.Put(uint32(clTable.Codes[code]), uint(clTable.CodeSizes[code])) {
			return clTable, false
		}
		if code >= 16 {
			i++
			if !w.Put(uint32(packed.syms[i]), extraBitsForSym(code)) {
				return clTable, false
			}
		}
	}

	return clTable, true
}

type packedCodeLengths struct {
	syms []uint8
}

// packCodeLengths RLE-encodes the concatenated literal+distance code
// length sequence into the code-length alphabet's symbols (repeat-last
// 16, zero-run 17/18, or the literal length 0-15), tallying clFreq as it
// goes. Grounded on the DEFL_RLE_PREV_CODE_SIZE / DEFL_RLE_ZERO_CODE_SIZE
// macros in defl_start_dynamic_block.
func packCodeLengths(codeSizes []uint8, clFreq []uint32) packedCodeLengths {
	var out packedCodeLengths
	prevCodeSize := uint8(0xFF)
	rleZeroCount := 0
	rleRepeatCount := 0

	flushRepeat := func() {
		if rleRepeatCount == 0 {
			return
		}
		if rleRepeatCount < 3 {
			clFreq[prevCodeSize] += uint32(rleRepeatCount)
			for ; rleRepeatCount > 0; rleRepeatCount-- {
				out.syms = append(out.syms, prevCodeSize)
			}
		} else {
			clFreq[16]++
			out.syms = append(out.syms, 16, uint8(rleRepeatCount-3))
			rleRepeatCount = 0
		}
	}
	flushZero := func() {
		switch {
		case rleZeroCount == 0:
			return
		case rleZeroCount < 3:
			clFreq[0] += uint32(rleZeroCount)
			for ; rleZeroCount > 0; rleZeroCount-- {
				out.syms = append(out.syms, 0)
			}
		case rleZeroCount <= 10:
			clFreq[17]++
			out.syms = append(out.syms, 17, uint8(rleZeroCount-3))
			rleZeroCount = 0
		default:
			clFreq[18]++
			out.syms = append(out.syms, 18, uint8(rleZeroCount-11))
			rleZeroCount = 0
		}
	}

	for _, codeSize := range codeSizes {
		if codeSize == 0 {
			flushRepeat()
			rleZeroCount++
			if rleZeroCount == 138 {
				flushZero()
			}
		} else {
			flushZero()
			if codeSize != prevCodeSize {
				flushRepeat()
				clFreq[codeSize]++
				out.syms = append(out.syms, codeSize)
			} else {
				rleRepeatCount++
				if rleRepeatCount == 6 {
					flushRepeat()
				}
			}
		}
		prevCodeSize = codeSize
	}
	if rleRepeatCount != 0 {
		flushRepeat()
	} else {
		flushZero()
	}

	return out
}
