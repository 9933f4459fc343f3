// Package fpng implements a restricted, high-throughput PNG encoder and
// decoder.
//
// It trades generality for speed: every file it writes uses a single
// fixed compression shape — one final Deflate block with a dynamic
// Huffman table, the "up" row filter only, and a single always-present
// back-reference distance equal to the pixel stride (3 or 4 bytes). The
// files this produces are standards-conformant PNGs any general decoder
// can read; this package's own decoder, in exchange for only ever
// accepting files built to that shape, skips the general case entirely
// and runs table-driven and bulk-copy-friendly instead.
//
// Basic usage for encoding:
//
//	data, err := fpng.Encode(pixels, w, h, 4, 0)
//
// Basic usage for decoding:
//
//	img, err := fpng.Decode(data, 4, nil)
//
// A file this package did not produce — any general PNG, or one using a
// feature outside the restricted profile (indexed color, 16-bit depth,
// interlacing) — is rejected with a *DecodeError whose Kind is NotFpng;
// the caller should fall back to a general-purpose PNG decoder such as
// the standard library's image/png.
package fpng
