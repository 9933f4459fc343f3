package defblock

import "github.com/go-fpng/fpng/internal/bitio"

// PrepareDynamicBlock reads the dynamic-block preamble from r (HLIT,
// HDIST, HCLEN, the code-length-alphabet's own code lengths, and the
// RLE-packed literal/distance code length sequence), builds the literal
// decoder table into litTable (len DecoderTableSize), and enforces the
// two invariants that distinguish this restricted profile from general
// Deflate: the distance alphabet has exactly one code, and it sits at
// DistSym(chans). Grounded on prepare_dynamic_block.
func PrepareDynamicBlock(r *bitio.Reader, litTable []uint32, chans int) bool {
	if !r.HasBits(5) {
		return false
	}
	numLitCodesRaw, ok := r.Get(5)
	if !ok {
		return false
	}
	numLitCodes := int(numLitCodesRaw) + 257

	numDistCodesRaw, ok := r.Get(5)
	if !ok {
		return false
	}
	numDistCodes := int(numDistCodesRaw) + 1
	if numDistCodes != chans {
		return false
	}

	totalCodes := numLitCodes + numDistCodes
	if totalCodes > huffmanMaxHuffSymbols0+32 {
		return false
	}
	codeSizes := make([]uint8, totalCodes)

	numClenCodesRaw, ok := r.Get(4)
	if !ok {
		return false
	}
	numClenCodes := int(numClenCodesRaw) + 4

	clenCodeSizes := make([]uint8, 19)
	for i := 0; i < numClenCodes; i++ {
		l, ok := r.Get(3)
		if !ok {
			return false
		}
		clenCodeSizes[bitLengthOrder[i]] = uint8(l)
	}

	clenTable := make([]uint32, DecoderTableSize)
	if !BuildDecoderTable(clenCodeSizes, clenTable) {
		return false
	}

	curCode := 0
	for curCode < totalCodes {
		if !r.HasBits(DecoderTableBits) {
			return false
		}
		entry := clenTable[r.Peek(DecoderTableBits)]
		symLen := (entry >> primaryLenShift) & primaryLenMask
		if symLen == 0 {
			return false
		}
		r.Skip(uint(symLen))
		sym := entry & 511

		if sym <= 15 {
			// a literal/distance code this format builds is never longer
			// than DecoderTableBits (the Huffman builder's max-code-length
			// argument); a longer value here means a non-conforming stream.
			if sym > DecoderTableBits {
				return false
			}
			codeSizes[curCode] = uint8(sym)
			curCode++
			continue
		}

		var repLen, repCodeSize uint32
		switch sym {
		case 16:
			v, ok := r.Get(2)
			if !ok {
				return false
			}
			repLen = v + 3
			if curCode == 0 {
				return false
			}
			repCodeSize = uint32(codeSizes[curCode-1])
		case 17:
			v, ok := r.Get(3)
			if !ok {
				return false
			}
			repLen = v + 3
		case 18:
			v, ok := r.Get(7)
			if !ok {
				return false
			}
			repLen = v + 11
		default:
			return false
		}

		if curCode+int(repLen) > totalCodes {
			return false
		}
		for ; repLen > 0; repLen-- {
			codeSizes[curCode] = uint8(repCodeSize)
			curCode++
		}
	}

	litCodeSizes := make([]uint8, huffmanMaxHuffSymbols0)
	copy(litCodeSizes, codeSizes[:numLitCodes])

	totalValidDistCodes := uint32(0)
	for i := 0; i < numDistCodes; i++ {
		totalValidDistCodes += uint32(codeSizes[numLitCodes+i])
	}
	if totalValidDistCodes != 1 {
		return false
	}
	if codeSizes[numLitCodes+DistSym(chans)] != 1 {
		return false
	}

	if !BuildDecoderTable(litCodeSizes[:numLitCodes], litTable) {
		return false
	}

	return true
}

const huffmanMaxHuffSymbols0 = 288
