// Package scratch pools the per-call buffers encoding allocates: the
// filtered-scanline staging buffer every encode path needs, and the
// token/histogram working set EncodeTwoPass needs on top of that.
// Adapted from the teacher's internal/pool package (bucketed sync.Pool of
// byte slices) and internal/lossless's losslessEncoderPool (struct-level
// reuse of an encoder's whole working set across calls); this package
// takes the latter's shape (one pooled struct holding every scratch
// array a call needs) since, unlike the teacher's generic byte pool, the
// shapes needed here are fixed and few.
package scratch

import (
	"sync"

	"github.com/go-fpng/fpng/internal/huffman"
	"github.com/go-fpng/fpng/internal/rle"
)

// Buffers is one encode call's scratch working set. Filtered backs
// rle.FilterImageInto's output and is sized to (1+w*chans)*h bytes.
// Tokens and LitFreq back EncodeTwoPassScratch; EncodeOnePass never
// touches them.
type Buffers struct {
	Filtered []byte
	Tokens   []rle.Token
	LitFreq  []uint32
}

var pool = sync.Pool{
	New: func() any { return &Buffers{} },
}

// Acquire returns a Buffers from the pool with Filtered sized to exactly
// filteredLen bytes and Tokens backed by at least tokenCap capacity.
// Existing backing arrays are reused and grown only if too small; callers
// must not assume zeroed memory beyond what FilterImageInto/
// EncodeTwoPassScratch themselves overwrite.
func Acquire(filteredLen, tokenCap int) *Buffers {
	b := pool.Get().(*Buffers)
	if cap(b.Filtered) < filteredLen {
		b.Filtered = make([]byte, filteredLen)
	} else {
		b.Filtered = b.Filtered[:filteredLen]
	}
	if cap(b.Tokens) < tokenCap {
		b.Tokens = make([]rle.Token, 0, tokenCap)
	} else {
		b.Tokens = b.Tokens[:0]
	}
	if b.LitFreq == nil {
		b.LitFreq = make([]uint32, huffman.MaxLitSymbols)
	}
	return b
}

// Release returns b to the pool. The caller must not use b afterward.
func Release(b *Buffers) {
	pool.Put(b)
}
