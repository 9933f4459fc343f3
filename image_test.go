package fpng

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeImageDecodeImageRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: byte(x * 40), G: byte(y * 40), B: 200, A: 255})
		}
	}

	data, err := EncodeImage(img, 0)
	require.NoError(t, err)

	out, err := DecodeImage(data, nil)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), out.Bounds())

	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			require.Equal(t, img.NRGBAAt(x, y), out.(*image.NRGBA).NRGBAAt(x, y), "x=%d y=%d", x, y)
		}
	}
}

// TestEncodeImagePreservesStraightAlphaUnderPremultiplication guards
// against writing img.At(...).RGBA()'s premultiplied values directly:
// a half-transparent pixel's straight RGB must survive unchanged, not
// come back darkened by its own alpha.
func TestEncodeImagePreservesStraightAlphaUnderPremultiplication(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 250, B: 80, A: 1})
	img.SetNRGBA(0, 1, color.NRGBA{R: 0, G: 0, B: 0, A: 0})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	data, err := EncodeImage(img, 0)
	require.NoError(t, err)

	out, err := DecodeImage(data, nil)
	require.NoError(t, err)
	nrgba, ok := out.(*image.NRGBA)
	require.True(t, ok)

	require.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 128}, nrgba.NRGBAAt(0, 0))
	require.Equal(t, color.NRGBA{R: 10, G: 250, B: 80, A: 1}, nrgba.NRGBAAt(1, 0))
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nrgba.NRGBAAt(1, 1))
}

func TestEncodeImageOpaqueTypeUsesThreeChannels(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 17)
	}

	data, err := EncodeImage(img, 0)
	require.NoError(t, err)

	info, err := GetInfo(data, nil)
	require.NoError(t, err)
	require.Equal(t, 3, info.ChannelsInFile)
}
