// Package pngchunk assembles and parses the PNG chunk framing this codec
// wraps its zlib stream in: the 8-byte signature, IHDR, a private
// self-identification chunk ("fdEC"), IDAT, and IEND. It owns chunk-level
// CRC-32 handling; the pixel-level integrity of the compressed payload is
// the Deflate block's own business, not this package's.
package pngchunk

import (
	"encoding/binary"

	"github.com/go-fpng/fpng/internal/checksum"
)

// Signature is the 8-byte PNG magic every file must begin with.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// Chunk type names this codec ever writes or specifically recognizes.
const (
	TypeIHDR = "IHDR"
	TypeIDAT = "IDAT"
	TypeIEND = "IEND"
	TypeFdEC = "fdEC"
)

// fdECPayload is the 5-byte self-identification payload: a 4-byte magic
// plus a version byte, grounded on fpng's private ancillary chunk used to
// flag a stream as this restricted profile rather than general PNG.
var fdECPayload = [5]byte{82, 36, 147, 227, 0}

const (
	chunkPrefixLen = 8 // 4-byte length + 4-byte type
	chunkCRCLen    = 4
)

// isTypeByte reports whether b is a valid PNG chunk type letter (the type
// alphabet is ASCII letters only, case carrying the property bits).
func isTypeByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// isCriticalType reports whether typ's first byte has its uppercase bit
// set, marking it a critical chunk a decoder must understand to safely
// render the image.
func isCriticalType(typ [4]byte) bool {
	return typ[0]&0x20 == 0
}

// WriteChunk encodes one chunk (4-byte big-endian length, 4-byte type,
// payload, big-endian CRC-32 over type+payload) into dst at offset 0,
// returning the number of bytes written.
func WriteChunk(dst []byte, typ string, payload []byte) (int, bool) {
	total := chunkPrefixLen + len(payload) + chunkCRCLen
	if len(dst) < total {
		return 0, false
	}
	binary.BigEndian.PutUint32(dst[0:4], uint32(len(payload)))
	copy(dst[4:8], typ)
	copy(dst[8:], payload)
	crc := checksum.CRC32IEEE(0, dst[4:8+len(payload)])
	binary.BigEndian.PutUint32(dst[8+len(payload):total], crc)
	return total, true
}

// chunkHeader is one chunk's parsed length/type/payload/crc bounds within
// a source buffer, with typeOfs pointing at the chunk's 4-byte type field
// (just after its length field).
type chunkHeader struct {
	length  uint32
	typ     [4]byte
	typeOfs int
	payload []byte
	crcOfs  int
	next    int // offset of the following chunk's length field
}

// readChunkHeader parses one chunk starting at ofs, validating that its
// declared length and trailing CRC both fit within src. Returns ok=false
// on any framing violation (too short, length overruns the buffer).
func readChunkHeader(src []byte, ofs int) (chunkHeader, bool) {
	if ofs+chunkPrefixLen > len(src) {
		return chunkHeader{}, false
	}
	length := binary.BigEndian.Uint32(src[ofs : ofs+4])
	var typ [4]byte
	copy(typ[:], src[ofs+4:ofs+8])
	for _, b := range typ {
		if !isTypeByte(b) {
			return chunkHeader{}, false
		}
	}

	payloadOfs := ofs + chunkPrefixLen
	// Guard the addition itself: a corrupt 32-bit length near 2^32-1
	// must not wrap payloadOfs+int(length) back into bounds.
	if length > uint32(len(src)) || payloadOfs > len(src)-int(length) {
		return chunkHeader{}, false
	}
	crcOfs := payloadOfs + int(length)
	if crcOfs+chunkCRCLen > len(src) {
		return chunkHeader{}, false
	}

	return chunkHeader{
		length:  length,
		typ:     typ,
		typeOfs: ofs + 4,
		payload: src[payloadOfs:crcOfs],
		crcOfs:  crcOfs,
		next:    crcOfs + chunkCRCLen,
	}, true
}

// checkCRC reports whether h's trailing CRC-32 matches its type+payload.
func checkCRC(src []byte, h chunkHeader) bool {
	want := binary.BigEndian.Uint32(src[h.crcOfs : h.crcOfs+chunkCRCLen])
	got := checksum.CRC32IEEE(0, src[h.typeOfs:h.crcOfs])
	return want == got
}
