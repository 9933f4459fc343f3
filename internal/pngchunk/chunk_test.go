package pngchunk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteChunkThenReadChunkHeaderRoundTrip(t *testing.T) {
	dst := make([]byte, 64)
	n, ok := WriteChunk(dst, TypeIDAT, []byte("hello"))
	require.True(t, ok)
	require.Equal(t, chunkPrefixLen+5+chunkCRCLen, n)

	ch, ok := readChunkHeader(dst, 0)
	require.True(t, ok)
	require.Equal(t, uint32(5), ch.length)
	require.Equal(t, TypeIDAT, string(ch.typ[:]))
	require.Equal(t, []byte("hello"), ch.payload)
	require.True(t, checkCRC(dst, ch))
}

func TestReadChunkHeaderRejectsLengthOverrunningBuffer(t *testing.T) {
	dst := make([]byte, 64)
	WriteChunk(dst, TypeIDAT, []byte("hello"))
	dst[3] = 0xFF // blow up the declared length

	_, ok := readChunkHeader(dst, 0)
	require.False(t, ok)
}

func TestReadChunkHeaderRejectsNonLetterType(t *testing.T) {
	dst := make([]byte, 64)
	WriteChunk(dst, TypeIDAT, []byte("hello"))
	dst[4] = '1'

	_, ok := readChunkHeader(dst, 0)
	require.False(t, ok)
}

func TestCheckCRCDetectsPayloadCorruption(t *testing.T) {
	dst := make([]byte, 64)
	WriteChunk(dst, TypeIDAT, []byte("hello"))
	dst[8] ^= 0xFF

	ch, ok := readChunkHeader(dst, 0)
	require.True(t, ok)
	require.False(t, checkCRC(dst, ch))
}

func TestIsCriticalType(t *testing.T) {
	require.True(t, isCriticalType([4]byte{'I', 'H', 'D', 'R'}))
	require.False(t, isCriticalType([4]byte{'f', 'd', 'E', 'C'}))
}
