// Package huffman builds the canonical Huffman tables the restricted
// Deflate block writer needs: minimum-redundancy code-length assignment
// with a maximum-length ceiling, and the constant tables that translate
// RLE match lengths and code-length alphabet symbols to and from their
// Deflate wire representation.
package huffman

// MaxLitSymbols is the size of the literal/length alphabet (0-255
// literals, 256 end-of-block, 257-285 length codes; 286 and 287 are
// reserved/unused but counted for table sizing parity with the source).
const MaxLitSymbols = 288

// MaxDistSymbols is the size of the distance alphabet.
const MaxDistSymbols = 32

// MaxCodeLenSymbols is the size of the code-length alphabet used to
// compress the literal/distance code-length tables in a dynamic block's
// preamble.
const MaxCodeLenSymbols = 19

// EOBSymbol is the literal/length alphabet's end-of-block symbol.
const EOBSymbol = 256

// CodeLenSwizzle is the fixed order in which the 19 code-length alphabet
// symbols' bit-lengths are emitted in a dynamic block's preamble.
var CodeLenSwizzle = [MaxCodeLenSymbols]uint8{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// CodeLenExtraBits gives the number of extra bits following code-length
// alphabet symbols 16, 17, 18 (indexed by symbol - 16).
var CodeLenExtraBits = [3]uint{2, 3, 7}

// Bitmasks[n] is a mask selecting the low n bits, for n in [0, 16].
var Bitmasks = [17]uint32{
	0x0000, 0x0001, 0x0003, 0x0007, 0x000F, 0x001F, 0x003F, 0x007F, 0x00FF,
	0x01FF, 0x03FF, 0x07FF, 0x0FFF, 0x1FFF, 0x3FFF, 0x7FFF, 0xFFFF,
}

// LenSym maps an adjusted match length (match length minus 3, i.e. 0-255)
// to its Deflate length-code symbol (257-285).
var LenSym [256]uint16

// LenExtra gives the number of extra bits following LenSym's symbol, by
// the same adjusted-length index.
var LenExtra [256]uint8

// lengthExtraBitsBySymbol / lengthBaseBySymbol describe the standard
// Deflate length-code table: symbol 257+i covers lengths
// [lengthBaseBySymbol[i], lengthBaseBySymbol[i]+2^lengthExtraBitsBySymbol[i]-1].
var lengthExtraBitsBySymbol = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1,
	2, 2, 2, 2,
	3, 3, 3, 3,
	4, 4, 4, 4,
	5, 5, 5, 5,
	0,
}

var lengthBaseBySymbol = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10,
	11, 13, 15, 17,
	19, 23, 27, 31,
	35, 43, 51, 59,
	67, 83, 99, 115,
	131, 163, 195, 227,
	258,
}

func init() {
	sym := 0
	for i := range lengthBaseBySymbol {
		base := lengthBaseBySymbol[i]
		extra := lengthExtraBitsBySymbol[i]
		count := 1 << extra
		for j := 0; j < count; j++ {
			adj := int(base) + j - 3
			if adj < 0 || adj > 255 {
				continue
			}
			LenSym[adj] = uint16(257 + sym)
			LenExtra[adj] = extra
		}
		sym++
	}
}

// SmallDistSym maps a (stride-1) distance in [0,3] to its Deflate distance
// alphabet symbol; only strides 3 and 4 are ever used by this codec
// (index 2 -> symbol 2, index 3 -> symbol 3), matching the source's
// g_defl_small_dist_sym table restricted to the range this format needs.
var SmallDistSym = [4]uint8{0, 1, 2, 3}
