package rle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterImageRowZeroAlwaysNone(t *testing.T) {
	pixels := []byte{10, 20, 30, 40, 50, 60}
	out := FilterImage(pixels, 1, 2, 3, true)
	require.Equal(t, byte(FilterNone), out[0])
	require.Equal(t, []byte{10, 20, 30}, out[1:4])
}

func TestFilterImageUpSubtractsPreviousRow(t *testing.T) {
	pixels := []byte{
		10, 20, 30,
		15, 18, 40,
	}
	out := FilterImage(pixels, 1, 2, 3, true)
	row1 := out[4:8]
	require.Equal(t, byte(FilterUp), row1[0])
	a, b := byte(15), byte(10)
	c, d := byte(18), byte(20)
	e, f := byte(40), byte(30)
	require.Equal(t, a-b, row1[1])
	require.Equal(t, c-d, row1[2])
	require.Equal(t, e-f, row1[3])
}

func TestFilterImageNoneModeNeverUsesUp(t *testing.T) {
	pixels := []byte{
		10, 20, 30,
		15, 18, 40,
	}
	out := FilterImage(pixels, 1, 2, 3, false)
	require.Equal(t, byte(FilterNone), out[0])
	require.Equal(t, byte(FilterNone), out[4])
	require.Equal(t, []byte{15, 18, 40}, out[5:8])
}

func TestFilterImageFourChannel(t *testing.T) {
	pixels := []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}
	out := FilterImage(pixels, 1, 2, 4, true)
	require.Len(t, out, 2*(1+4))
	row1 := out[5:10]
	require.Equal(t, byte(FilterUp), row1[0])
	require.Equal(t, []byte{4, 4, 4, 4}, row1[1:5])
}
