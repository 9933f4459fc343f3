package defblock

// DecoderTableBits is the width of the flat lookup table the decoder
// indexes with the low bits of its bit accumulator: one table entry
// resolves a symbol in a single array access instead of walking a code
// tree bit by bit.
const DecoderTableBits = 12

// DecoderTableSize is 1<<DecoderTableBits.
const DecoderTableSize = 1 << DecoderTableBits

// primarySymbolBits / primaryLenShift / primaryLenMask describe how one
// uint32 table entry is packed: bits [0:9) hold the symbol, bits [9:13) hold its code
// length. A zero code length means "no entry" (an invalid code prefix).
//
// prepare_dynamic_block's second-symbol lookahead (decoding two literals
// per table access on the fast path) is not carried over: the decode loop
// here resolves one symbol per lookup, which the format's own spec
// explicitly permits omitting.
const (
	primarySymbolBits = 9
	primaryLenShift   = 9
	primaryLenMask    = 0xF
)

// BuildDecoderTable constructs the flat DecoderTableSize-entry lookup
// table for a canonical code described by codeSizes (one entry per
// symbol, 0 meaning unused, max length 15). Returns false if the code is
// over- or under-subscribed in a way that can't be a valid complete (or
// fpng's specific single-code distance) prefix code. Grounded on
// build_decoder_table.
func BuildDecoderTable(codeSizes []uint8, table []uint32) bool {
	var numCodes [16]int
	for _, l := range codeSizes {
		if l > 15 {
			return false
		}
		numCodes[l]++
	}

	var nextCode [17]uint32
	nextCode[0], nextCode[1] = 0, 0
	total := uint32(0)
	for i := 1; i <= 15; i++ {
		total = (total + uint32(numCodes[i])) << 1
		nextCode[i+1] = total
	}
	if total != 0x10000 {
		j := 0
		for i := 15; i != 0; i-- {
			j += numCodes[i]
			if j > 1 {
				return false
			}
		}
		if j != 1 {
			return false
		}
	}

	revCodes := make([]uint32, len(codeSizes))
	for i, l := range codeSizes {
		revCodes[i] = nextCode[l]
		nextCode[l]++
	}

	for i := range table {
		table[i] = 0
	}

	for i, codeSize := range codeSizes {
		if codeSize == 0 {
			continue
		}
		oldCode := revCodes[i]
		var newCode uint32
		for j := uint8(0); j < codeSize; j++ {
			newCode = (newCode << 1) | (oldCode & 1)
			oldCode >>= 1
		}

		step := uint32(1) << codeSize
		for newCode < DecoderTableSize {
			table[newCode] = uint32(i) | (uint32(codeSize) << primaryLenShift)
			newCode += step
		}
	}

	return true
}
