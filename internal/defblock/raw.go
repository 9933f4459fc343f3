package defblock

import (
	"encoding/binary"

	"github.com/go-fpng/fpng/internal/checksum"
)

// maxStoredBlockLen is Deflate's per-stored-block payload ceiling (LEN is
// a 16-bit field).
const maxStoredBlockLen = 0xFFFF

// WriteRawZlib writes src as one or more Deflate stored (BTYPE=0) blocks
// inside a minimal zlib stream (2-byte header, Adler-32 trailer), used as
// the fallback path when the dynamic-block encoders fail to fit the
// destination buffer. Grounded on write_raw_block.
func WriteRawZlib(dst []byte, src []byte) (n int, ok bool) {
	if len(dst) < 2 {
		return 0, false
	}
	dst[0] = 0x78
	dst[1] = 0x01
	dstOfs := 2

	srcOfs := 0
	for srcOfs < len(src) {
		remaining := len(src) - srcOfs
		blockSize := remaining
		if blockSize > maxStoredBlockLen {
			blockSize = maxStoredBlockLen
		}
		final := blockSize == remaining

		if dstOfs+5+blockSize > len(dst) {
			return 0, false
		}

		if final {
			dst[dstOfs] = 1
		} else {
			dst[dstOfs] = 0
		}
		binary.LittleEndian.PutUint16(dst[dstOfs+1:], uint16(blockSize))
		binary.LittleEndian.PutUint16(dst[dstOfs+3:], ^uint16(blockSize))
		copy(dst[dstOfs+5:], src[srcOfs:srcOfs+blockSize])

		srcOfs += blockSize
		dstOfs += 5 + blockSize
	}

	adler := checksum.Adler32(checksum.Adler32Init, src)
	if dstOfs+4 > len(dst) {
		return 0, false
	}
	binary.BigEndian.PutUint32(dst[dstOfs:], adler)
	dstOfs += 4

	return dstOfs, true
}

// DecodeRawZlib inverts a stream WriteRawZlib produced, converting between
// srcChans and dstChans in the process (appending an opaque 0xFF alpha
// byte or dropping the alpha byte) exactly as the compressed-path decoder does. Every byte of the
// decoded raster is expected to have come from filter tag 0 (None): the
// encoder's fallback path always re-filters with no delta, so the
// stored-block decoder never needs to reconstruct an Up-filtered row.
// Grounded on fpng_pixel_zlib_raw_decompress.
func DecodeRawZlib(src []byte, zlibLen int, dst []byte, w, h, srcChans, dstChans int) bool {
	srcBPL := w * srcChans
	dstBPL := w * dstChans
	dstLen := dstBPL * h

	srcOfs := 2
	dstOfs := 0
	rasterOfs := 0
	compOfs := 0

	for {
		if srcOfs+1 > len(src) {
			return false
		}
		bfinal := src[srcOfs]&1 != 0
		btype := (src[srcOfs] >> 1) & 3
		if btype != 0 {
			return false
		}
		srcOfs++

		if srcOfs+4 > len(src) {
			return false
		}
		length := int(binary.LittleEndian.Uint16(src[srcOfs:]))
		nlength := int(binary.LittleEndian.Uint16(src[srcOfs+2:]))
		srcOfs += 4
		if length != (^nlength)&0xFFFF {
			return false
		}
		if srcOfs+length > len(src) {
			return false
		}

		for i := 0; i < length; i++ {
			c := src[srcOfs+i]

			if rasterOfs == 0 {
				if c != 0 {
					return false
				}
			} else {
				if compOfs < dstChans {
					if dstOfs == dstLen {
						return false
					}
					dst[dstOfs] = c
					dstOfs++
				}
				compOfs++
				if compOfs == srcChans {
					if dstChans > srcChans {
						if dstOfs == dstLen {
							return false
						}
						dst[dstOfs] = 0xFF
						dstOfs++
					}
					compOfs = 0
				}
			}

			rasterOfs++
			if rasterOfs == srcBPL+1 {
				rasterOfs = 0
			}
		}

		srcOfs += length
		if bfinal {
			break
		}
	}

	if compOfs != 0 {
		return false
	}
	if srcOfs+4 != zlibLen {
		return false
	}
	return dstOfs == dstLen
}
