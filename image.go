package fpng

import (
	"image"
	"image/color"
)

// EncodeImage encodes img as a complete PNG file using Encode. Images
// backed by a type this package recognizes as always-opaque (*image.YCbCr,
// *image.Gray, *image.Gray16, *image.CMYK) are encoded with 3 channels;
// everything else is encoded with 4, alpha included. Not registered with
// the standard image package's format registry: the files this produces
// are standards-conformant PNGs, and registering a second "fpng" format
// under the same magic bytes image/png already claims would just create
// an ambiguous duplicate, not a useful alternative.
func EncodeImage(img image.Image, flags EncodeFlags) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	chans := 4
	if isAlwaysOpaque(img) {
		chans = 3
	}

	pixels := make([]byte, w*h*chans)
	for y := 0; y < h; y++ {
		row := pixels[y*w*chans : (y+1)*w*chans]
		for x := 0; x < w; x++ {
			// img.At(...).RGBA() returns alpha-premultiplied values; this
			// format stores straight color, so convert through NRGBA
			// first rather than writing the premultiplied values directly
			// (which would darken every partially transparent pixel).
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			px := row[x*chans : x*chans+chans]
			px[0] = c.R
			px[1] = c.G
			px[2] = c.B
			if chans == 4 {
				px[3] = c.A
			}
		}
	}

	return Encode(pixels, w, h, chans, flags)
}

func isAlwaysOpaque(img image.Image) bool {
	switch img.(type) {
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return true
	default:
		return false
	}
}

// DecodeImage decodes src into an *image.NRGBA. The file's own channel
// count is transparent to the caller: RGB files gain an opaque alpha
// channel, matching Decode's desiredChannels=4 conversion.
func DecodeImage(src []byte, opts *DecodeOptions) (image.Image, error) {
	decoded, err := Decode(src, 4, opts)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, decoded.W, decoded.H))
	copy(img.Pix, decoded.Pixels)
	return img, nil
}
