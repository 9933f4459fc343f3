package defblock

// lengthExtraBits and lengthBase are indexed by (length symbol - 257):
// lengthBase gives the match length encoded when no extra bits are read,
// lengthExtraBits gives how many extra bits follow to add to it. The
// inverse of huffman.LenSym/LenExtra, needed on the decode side where the
// direction of lookup is symbol -> length rather than length -> symbol.
var lengthExtraBits = [29]uint{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0}
var lengthBase = [29]uint32{3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31, 35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258}

// matchLenValid3 reports, for a 3-channel stream, which raw Deflate match
// lengths are legal: a match can only ever be a whole number of 3-byte
// pixels, so only lengths congruent to 0 mod 3 (and >= 3) are valid; any
// other decoded length means the stream did not come from this encoder.
// Grounded on g_match_len_valid_3.
var matchLenValid3 = buildMatchLenValid3()

func buildMatchLenValid3() [259]bool {
	var v [259]bool
	for l := 3; l <= 258; l += 3 {
		v[l] = true
	}
	return v
}
