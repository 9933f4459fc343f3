// Package rle implements the encode-side row filtering and RLE/stride-
// distance match finding shared by the two-pass and one-pass compressors:
// both consume the same filtered-scanline-plus-token stream, they just
// differ in what they do with it (histogram-then-emit vs. emit directly
// with precomputed codes).
package rle

// FilterNone is the PNG "None" filter tag: the scanline is copied as-is.
const FilterNone = 0

// FilterUp is the PNG "Up" filter tag: each byte is the source minus the
// byte directly above it (mod 256).
const FilterUp = 2

// FilterImage produces the tag-prefixed filtered scanline buffer spec.md
// §4.12 defines: row 0 always uses FilterNone; rows >= 1 use FilterUp when
// useUp is true, or FilterNone when useUp is false. useUp is false only on
// the raw-block fallback path (§4.7), which re-filters with no delta so
// the stored-block decoder never needs to reconstruct an Up filter.
func FilterImage(pixels []byte, w, h, chans int, useUp bool) []byte {
	bpl := w * chans
	return FilterImageInto(pixels, w, h, chans, useUp, make([]byte, (1+bpl)*h))
}

// FilterImageInto is FilterImage with its output buffer supplied by the
// caller (see internal/scratch), avoiding an allocation on every encode
// call when dst is already sized correctly.
func FilterImageInto(pixels []byte, w, h, chans int, useUp bool, out []byte) []byte {
	bpl := w * chans
	out = out[:(1+bpl)*h]
	for y := 0; y < h; y++ {
		src := pixels[y*bpl : (y+1)*bpl]
		dst := out[y*(1+bpl) : (y+1)*(1+bpl)]
		if useUp && y > 0 {
			prev := pixels[(y-1)*bpl : y*bpl]
			dst[0] = FilterUp
			for i := 0; i < bpl; i++ {
				dst[1+i] = src[i] - prev[i]
			}
		} else {
			dst[0] = FilterNone
			copy(dst[1:], src)
		}
	}
	return out
}
