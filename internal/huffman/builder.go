package huffman

import "errors"

// ErrTooManySymbols is returned when a caller passes more than
// MaxLitSymbols non-zero-frequency symbols.
var ErrTooManySymbols = errors.New("huffman: too many non-zero-frequency symbols")

// symFreq pairs a 16-bit frequency key with the symbol it belongs to, the
// unit the radix sort and minimum-redundancy pass operate on.
type symFreq struct {
	key    uint32 // frequency, later repurposed in place to hold tree depth
	symbol uint16
}

const maxSupportedCodeSize = 32

// Table is a complete canonical Huffman code for one alphabet: the
// per-symbol code length (0 for symbols that never occur) and the
// bit-reversed Deflate wire codeword.
type Table struct {
	CodeSizes []uint8
	Codes     []uint16
}

// Build constructs a canonical Huffman Table for freq (indexed by symbol,
// length == alphabet size), enforcing a maximum code length of
// maxCodeSize. Symbols with zero frequency receive code length 0 and are
// absent from the code.
//
// This follows the source's defl_optimize_huffman_table: collect non-zero
// symbols, radix-sort them by frequency, run the Moffat/Katajainen
// in-place minimum-redundancy algorithm to get optimal code lengths,
// enforce the length ceiling while preserving the Kraft equality, then
// assign canonical (length-then-symbol-ascending) codes and bit-reverse
// them to the Deflate wire order.
func Build(freq []uint32, maxCodeSize int) (Table, error) {
	n := len(freq)
	tbl := Table{
		CodeSizes: make([]uint8, n),
		Codes:     make([]uint16, n),
	}

	syms := make([]symFreq, 0, n)
	for sym, f := range freq {
		if f != 0 {
			if len(syms) >= MaxLitSymbols {
				return tbl, ErrTooManySymbols
			}
			syms = append(syms, symFreq{key: f, symbol: uint16(sym)})
		}
	}
	if len(syms) == 0 {
		return tbl, nil
	}
	if len(syms) == 1 {
		tbl.CodeSizes[syms[0].symbol] = 1
		tbl.Codes[syms[0].symbol] = 0
		return tbl, nil
	}

	sorted := radixSortByFrequency(syms)
	calculateMinimumRedundancy(sorted)

	numCodes := make([]int, maxSupportedCodeSize+1)
	for _, s := range sorted {
		numCodes[s.key]++
	}

	enforceMaxCodeSize(numCodes, len(sorted), maxCodeSize)

	// Assign lengths back to the per-symbol table. sorted is still in
	// ascending-frequency order; walking numCodes from length 1 upward
	// while consuming sorted from its tail hands the shortest codes to
	// the highest-frequency symbols, exactly mirroring the source.
	j := len(sorted)
	for length := 1; length <= maxCodeSize; length++ {
		for c := numCodes[length]; c > 0; c-- {
			j--
			tbl.CodeSizes[sorted[j].symbol] = uint8(length)
		}
	}

	assignCanonicalCodes(&tbl, maxCodeSize)
	return tbl, nil
}

// radixSortByFrequency sorts syms ascending by key using a two-pass
// 8-bit-digit radix sort over the 16-bit frequency key, per spec.md §4.2
// step 2. Frequencies are pre-scaled to fit 16 bits by the caller (see
// rescale.go) so two passes always suffice.
func radixSortByFrequency(syms []symFreq) []symFreq {
	n := len(syms)
	a := make([]symFreq, n)
	copy(a, syms)
	b := make([]symFreq, n)

	var hist [2][256]int
	for _, s := range a {
		hist[0][s.key&0xFF]++
		hist[1][(s.key>>8)&0xFF]++
	}

	passes := 2
	if n == hist[1][0] {
		// Every key's high byte is the same (common case: all frequencies
		// fit in 8 bits) - the second pass would be a no-op, skip it.
		passes = 1
	}

	cur, next := a, b
	shift := uint(0)
	for pass := 0; pass < passes; pass++ {
		var offsets [256]int
		total := 0
		for i, c := range hist[pass] {
			offsets[i] = total
			total += c
		}
		for _, s := range cur {
			digit := (s.key >> shift) & 0xFF
			next[offsets[digit]] = s
			offsets[digit]++
		}
		cur, next = next, cur
		shift += 8
	}
	return cur
}

// calculateMinimumRedundancy implements the Moffat/Katajainen in-place
// minimum-redundancy code-length algorithm (originally by Alistair Moffat
// and Jyrki Katajainen, 1996): given A sorted ascending by frequency, it
// overwrites each A[i].key with that symbol's optimal code length.
func calculateMinimumRedundancy(a []symFreq) {
	n := len(a)
	if n == 0 {
		return
	}
	if n == 1 {
		a[0].key = 1
		return
	}

	a[0].key += a[1].key
	root, leaf := 0, 2
	for next := 1; next < n-1; next++ {
		if leaf >= n || a[root].key < a[leaf].key {
			a[next].key = a[root].key
			a[root].key = uint32(next)
			root++
		} else {
			a[next].key = a[leaf].key
			leaf++
		}
		if leaf >= n || (root < next && a[root].key < a[leaf].key) {
			a[next].key += a[root].key
			a[root].key = uint32(next)
			root++
		} else {
			a[next].key += a[leaf].key
			leaf++
		}
	}

	a[n-2].key = 0
	for next := n - 3; next >= 0; next-- {
		a[next].key = a[a[next].key].key + 1
	}

	avbl, used, depth := 1, 0, 0
	root, next := n-2, n-1
	for avbl > 0 {
		for root >= 0 && int(a[root].key) == depth {
			used++
			root--
		}
		for avbl > used {
			a[next].key = uint32(depth)
			next--
			avbl--
		}
		avbl = 2 * used
		depth++
		used = 0
	}
}

// enforceMaxCodeSize caps the canonical code's maximum length at
// maxCodeSize by migrating every longer bucket's count into the ceiling
// bucket, then restores the Kraft equality by repeatedly removing one code
// at the ceiling length and splitting one code of the deepest non-empty
// shorter bucket into two codes one bit longer.
func enforceMaxCodeSize(numCodes []int, codeListLen, maxCodeSize int) {
	if codeListLen <= 1 {
		return
	}
	for i := maxCodeSize + 1; i <= maxSupportedCodeSize; i++ {
		numCodes[maxCodeSize] += numCodes[i]
		numCodes[i] = 0
	}

	var total uint32
	for i := maxCodeSize; i > 0; i-- {
		total += uint32(numCodes[i]) << uint(maxCodeSize-i)
	}

	target := uint32(1) << uint(maxCodeSize)
	for total != target {
		numCodes[maxCodeSize]--
		for i := maxCodeSize - 1; i > 0; i-- {
			if numCodes[i] != 0 {
				numCodes[i]--
				numCodes[i+1] += 2
				break
			}
		}
		total--
	}
}

// assignCanonicalCodes fills tbl.Codes from tbl.CodeSizes: codes are
// assigned in ascending length, then ascending symbol order (the standard
// canonical-Huffman construction), and each is bit-reversed to produce
// the value Deflate actually writes to the stream.
func assignCanonicalCodes(tbl *Table, maxCodeSize int) {
	var numCodes [maxSupportedCodeSize + 2]int
	for _, l := range tbl.CodeSizes {
		if l != 0 {
			numCodes[l]++
		}
	}

	var nextCode [maxSupportedCodeSize + 2]uint32
	code := uint32(0)
	for l := 1; l <= maxCodeSize; l++ {
		nextCode[l] = code
		code = (code + uint32(numCodes[l])) << 1
	}

	for sym, l := range tbl.CodeSizes {
		if l == 0 {
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		tbl.Codes[sym] = reverseBits(uint16(c), uint(l))
	}
}

// reverseBits reverses the low n bits of v.
func reverseBits(v uint16, n uint) uint16 {
	var r uint16
	for i := uint(0); i < n; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}
