package pngchunk

import "encoding/binary"

// colorType returns the IHDR color type byte for chans (2 = RGB, 6 =
// RGBA); callers must only pass 3 or 4.
func colorType(chans int) byte {
	if chans == 4 {
		return 6
	}
	return 2
}

// WriteFile assembles a complete PNG: signature, IHDR, the fdEC
// self-identification chunk, an IDAT chunk wrapping zlibStream, and IEND.
// Grounded on the chunk sequence fpng_encode_image_to_memory emits.
func WriteFile(dst []byte, w, h, chans int, zlibStream []byte) (int, bool) {
	ofs := copy(dst, Signature[:])

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(h))
	ihdr[8] = 8 // bit depth
	ihdr[9] = colorType(chans)
	ihdr[10] = 0 // compression
	ihdr[11] = 0 // filter
	ihdr[12] = 0 // interlace

	n, ok := WriteChunk(dst[ofs:], TypeIHDR, ihdr[:])
	if !ok {
		return 0, false
	}
	ofs += n

	n, ok = WriteChunk(dst[ofs:], TypeFdEC, fdECPayload[:])
	if !ok {
		return 0, false
	}
	ofs += n

	n, ok = WriteChunk(dst[ofs:], TypeIDAT, zlibStream)
	if !ok {
		return 0, false
	}
	ofs += n

	n, ok = WriteChunk(dst[ofs:], TypeIEND, nil)
	if !ok {
		return 0, false
	}
	ofs += n

	return ofs, true
}

// FileSize returns the exact byte length WriteFile will produce for the
// given zlib stream length, letting callers size their output buffer
// without a trial write.
func FileSize(zlibLen int) int {
	return len(Signature) +
		(chunkPrefixLen + 13 + chunkCRCLen) + // IHDR
		(chunkPrefixLen + len(fdECPayload) + chunkCRCLen) + // fdEC
		(chunkPrefixLen + zlibLen + chunkCRCLen) + // IDAT
		(chunkPrefixLen + 0 + chunkCRCLen) // IEND
}
