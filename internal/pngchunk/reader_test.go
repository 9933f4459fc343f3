package pngchunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-fpng/fpng/internal/checksum"
)

func buildFile(t *testing.T, w, h, chans int, idat []byte) []byte {
	t.Helper()
	dst := make([]byte, FileSize(len(idat)))
	n, ok := WriteFile(dst, w, h, chans, idat)
	require.True(t, ok)
	require.Equal(t, len(dst), n)
	return dst
}

func TestGetInfoParsesWellFormedFile(t *testing.T) {
	idat := []byte{0x78, 0x01, 0, 0, 0, 0}
	src := buildFile(t, 4, 3, 3, idat)

	info, err := GetInfo(src, false)
	require.NoError(t, err)
	require.Equal(t, 4, info.W)
	require.Equal(t, 3, info.H)
	require.Equal(t, 3, info.ChannelsInFile)
	require.Equal(t, idat, src[info.IDATOffset:info.IDATOffset+info.IDATLen])
}

func TestGetInfoRejectsBadSignature(t *testing.T) {
	src := buildFile(t, 4, 3, 3, []byte{0x78, 0x01, 0, 0, 0, 0})
	src[0] = 0

	_, err := GetInfo(src, false)
	require.Error(t, err)
	require.Equal(t, ReasonNotPNG, err.(*FrameError).Reason)
}

func TestGetInfoRejectsCorruptIHDRCRC(t *testing.T) {
	src := buildFile(t, 4, 3, 3, []byte{0x78, 0x01, 0, 0, 0, 0})
	ihdrCRCOfs := 8 + chunkPrefixLen + 13
	src[ihdrCRCOfs+3] ^= 0xFF // corrupt the IHDR CRC's last byte

	_, err := GetInfo(src, false)
	require.Error(t, err)
	require.Equal(t, ReasonHeaderCRC32, err.(*FrameError).Reason)
}

func TestGetInfoRejectsZeroDimensions(t *testing.T) {
	src := buildFile(t, 0, 3, 3, []byte{0x78, 0x01, 0, 0, 0, 0})
	_, err := GetInfo(src, false)
	require.Error(t, err)
	require.Equal(t, ReasonInvalidDimensions, err.(*FrameError).Reason)
}

func TestGetInfoRejectsOversizedDimensions(t *testing.T) {
	src := buildFile(t, 1<<20, 1<<20, 3, []byte{0x78, 0x01, 0, 0, 0, 0})
	_, err := GetInfo(src, false)
	require.Error(t, err)
	require.Equal(t, ReasonDimensionsTooLarge, err.(*FrameError).Reason)
}

func TestGetInfoRejectsUnsupportedBitDepthAsNotFpng(t *testing.T) {
	src := buildFile(t, 4, 3, 3, []byte{0x78, 0x01, 0, 0, 0, 0})
	ihdrPayloadOfs := 8 + chunkPrefixLen
	src[ihdrPayloadOfs+8] = 16 // bit depth 16
	// Recompute the IHDR CRC so the bit-depth change alone is exercised,
	// not a CRC mismatch.
	recomputeIHDRCRC(t, src)

	_, err := GetInfo(src, false)
	require.Error(t, err)
	require.Equal(t, ReasonNotFpng, err.(*FrameError).Reason)
}

func recomputeIHDRCRC(t *testing.T, src []byte) {
	t.Helper()
	ch, ok := readChunkHeader(src, 8)
	require.True(t, ok)
	crc := checksum.CRC32IEEE(0, src[ch.typeOfs:ch.crcOfs])
	src[ch.crcOfs] = byte(crc >> 24)
	src[ch.crcOfs+1] = byte(crc >> 16)
	src[ch.crcOfs+2] = byte(crc >> 8)
	src[ch.crcOfs+3] = byte(crc)
}

func TestGetInfoRejectsMissingIDAT(t *testing.T) {
	// Build signature + IHDR + fdEC + IEND, with no IDAT chunk at all
	// (distinct from an IDAT chunk that happens to be zero-length).
	dst := make([]byte, 256)
	ofs := copy(dst, Signature[:])

	var ihdr [13]byte
	ihdr[0], ihdr[1], ihdr[2], ihdr[3] = 0, 0, 0, 4
	ihdr[4], ihdr[5], ihdr[6], ihdr[7] = 0, 0, 0, 3
	ihdr[8], ihdr[9] = 8, 2
	n, ok := WriteChunk(dst[ofs:], TypeIHDR, ihdr[:])
	require.True(t, ok)
	ofs += n

	n, ok = WriteChunk(dst[ofs:], TypeFdEC, fdECPayload[:])
	require.True(t, ok)
	ofs += n

	n, ok = WriteChunk(dst[ofs:], TypeIEND, nil)
	require.True(t, ok)
	ofs += n

	_, err := GetInfo(dst[:ofs], false)
	require.Error(t, err)
	require.Equal(t, ReasonInvalidIdat, err.(*FrameError).Reason)
}

func TestGetInfoRejectsIDATBeforeFdEC(t *testing.T) {
	idat := []byte{0x78, 0x01, 0, 0, 0, 0}
	src := buildFile(t, 4, 3, 3, idat)

	// Swap the fdEC and IDAT chunks by rebuilding the tail manually.
	ihdrEnd := 8 + chunkPrefixLen + 13 + chunkCRCLen
	fdEC := make([]byte, chunkPrefixLen+5+chunkCRCLen)
	copy(fdEC, src[ihdrEnd:ihdrEnd+len(fdEC)])
	idatChunk := make([]byte, chunkPrefixLen+len(idat)+chunkCRCLen)
	copy(idatChunk, src[ihdrEnd+len(fdEC):ihdrEnd+len(fdEC)+len(idatChunk)])

	swapped := append([]byte{}, src[:ihdrEnd]...)
	swapped = append(swapped, idatChunk...)
	swapped = append(swapped, fdEC...)
	swapped = append(swapped, src[ihdrEnd+len(fdEC)+len(idatChunk):]...)

	_, err := GetInfo(swapped, false)
	require.Error(t, err)
	require.Equal(t, ReasonNotFpng, err.(*FrameError).Reason)
}

func TestGetInfoRejectsUnknownCriticalChunk(t *testing.T) {
	idat := []byte{0x78, 0x01, 0, 0, 0, 0}
	src := buildFile(t, 4, 3, 3, idat)

	extra := make([]byte, chunkPrefixLen+chunkCRCLen)
	_, ok := WriteChunk(extra, "zzZZ", nil)
	require.True(t, ok)
	// Force the injected chunk's type to be critical (uppercase first letter).
	extra[4] = 'Z'

	ihdrEnd := 8 + chunkPrefixLen + 13 + chunkCRCLen
	withExtra := append([]byte{}, src[:ihdrEnd]...)
	withExtra = append(withExtra, extra...)
	withExtra = append(withExtra, src[ihdrEnd:]...)

	_, err := GetInfo(withExtra, false)
	require.Error(t, err)
	require.Equal(t, ReasonNotFpng, err.(*FrameError).Reason)
}
