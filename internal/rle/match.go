package rle

import "encoding/binary"

// TokenKind distinguishes the three things a filtered row decomposes into.
type TokenKind uint8

const (
	// TokFilter carries the row's leading filter tag byte.
	TokFilter TokenKind = iota
	// TokLiteral carries one unmatched pixel, packed little-endian into
	// the low 3 or 4 bytes of Word.
	TokLiteral
	// TokMatch carries a back-reference of Len bytes at the fixed pixel
	// stride distance (chans bytes back).
	TokMatch
)

// Token is one element of a row's RLE decomposition.
type Token struct {
	Kind TokenKind
	Word uint32
	Len  uint32
}

// ScanRow decomposes one filter-tag-prefixed scanline into a stream of
// Tokens and hands each to emit, in order. This is the one RLE/stride-
// distance match finder in the package: both the two-pass and one-pass
// compressors drive it, differing only in what emit does with each token
// (histogram-and-buffer vs. encode-immediately with canned codes).
//
// Grounded on the inner loop shared by pixel_deflate_dyn_3_rle and
// pixel_deflate_dyn_4_rle: the first pixel of a row is always a literal,
// every later pixel is matched against the immediately preceding pixel
// (the only distance fpng ever emits is exactly chans bytes), and a match
// run is extended greedily up to the channel-dependent length ceiling or
// the end of the row, whichever comes first.
func ScanRow(row []byte, chans int, emit func(Token)) {
	maxMatch := 255
	if chans == 4 {
		maxMatch = 252
	}

	emit(Token{Kind: TokFilter, Word: uint32(row[0])})

	ofs := 1
	end := len(row)
	if ofs >= end {
		return
	}

	word := loadWord(row[ofs:], chans)
	emit(Token{Kind: TokLiteral, Word: word})
	prev := word
	ofs += chans

	for ofs < end {
		word = loadWord(row[ofs:], chans)
		if word == prev {
			matchLen := chans
			maxLen := end - ofs
			if maxLen > maxMatch {
				maxLen = maxMatch
			}
			for matchLen < maxLen && loadWord(row[ofs+matchLen:], chans) == word {
				matchLen += chans
			}
			emit(Token{Kind: TokMatch, Len: uint32(matchLen)})
			ofs += matchLen
		} else {
			emit(Token{Kind: TokLiteral, Word: word})
			prev = word
			ofs += chans
		}
	}
}

// loadWord reads one pixel (chans bytes, 3 or 4) from the front of b as a
// little-endian word. The caller only ever invokes this with at least
// chans bytes remaining; ScanRow never advances past a multiple of chans
// from a row boundary, so no out-of-range or over-read access occurs.
func loadWord(b []byte, chans int) uint32 {
	if chans == 4 {
		return binary.LittleEndian.Uint32(b)
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// LengthIndex maps a match's byte length to the index into the shared
// length-symbol tables (tables.go's LenSym/LenExtra). The source always
// subtracts 3 here regardless of channel count: a match's length is a
// Deflate byte-length covering the range [3,258], and the length-code
// alphabet is indexed on that range directly, not on a per-channel run
// count.
func LengthIndex(matchLen uint32) uint32 {
	return matchLen - 3
}
