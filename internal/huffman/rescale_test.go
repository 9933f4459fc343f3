package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRescale16PreservesZeros(t *testing.T) {
	freq := []uint32{0, 100, 0, 50}
	out := Rescale16(freq)
	require.Zero(t, out[0])
	require.Zero(t, out[2])
	require.NotZero(t, out[1])
	require.NotZero(t, out[3])
}

func TestRescale16FitsUint16(t *testing.T) {
	freq := make([]uint32, 300)
	for i := range freq {
		freq[i] = uint32(i + 1)
	}
	out := Rescale16(freq)
	var total uint64
	for _, v := range out {
		require.LessOrEqual(t, v, uint32(0xFFFF))
		total += uint64(v)
	}
	require.LessOrEqual(t, total, uint64(0xFFFF))
}

func TestRescale16AllZero(t *testing.T) {
	freq := make([]uint32, 5)
	out := Rescale16(freq)
	for _, v := range out {
		require.Zero(t, v)
	}
}

func TestRescale16HugeCounts(t *testing.T) {
	freq := []uint32{1 << 30, 1}
	out := Rescale16(freq)
	require.LessOrEqual(t, out[0], uint32(0xFFFF))
	require.GreaterOrEqual(t, out[1], uint32(1))
}
