package fpng

import (
	"errors"
	"os"

	"github.com/go-fpng/fpng/internal/defblock"
	"github.com/go-fpng/fpng/internal/pngchunk"
	"github.com/go-fpng/fpng/internal/rle"
	"github.com/go-fpng/fpng/internal/scratch"
)

// MaxDimension is the largest width or height this package will encode or
// accept on decode.
const MaxDimension = 1 << 24

// MaxPixels is the largest width*height product this package will encode
// or accept on decode.
const MaxPixels = 1 << 30

// EncodeFlags selects optional Encode behavior.
type EncodeFlags uint32

const (
	// FlagSlower selects the two-pass encoder, which histograms the whole
	// image before building its Huffman tables instead of using a canned
	// preamble. Slower, and sometimes a little smaller; the default
	// (unset) is the one-pass encoder.
	FlagSlower EncodeFlags = 1 << iota

	// FlagForceUncompressed skips both compressed encoders and writes a
	// stored (uncompressed) Deflate block directly.
	FlagForceUncompressed
)

// DecodeOptions controls optional Decode/GetInfo behavior.
type DecodeOptions struct {
	// SkipAncillaryCRC32 disables CRC-32 verification of ancillary chunks
	// encountered while walking to IDAT. IHDR's CRC is always checked.
	SkipAncillaryCRC32 bool
}

// Info is the lightweight result of GetInfo: framing and dimensions
// without decoding any pixel data.
type Info struct {
	W, H           int
	ChannelsInFile int
}

// DecodedImage is the result of a successful Decode.
type DecodedImage struct {
	W, H           int
	ChannelsInFile int
	Pixels         []byte
}

// Encode compresses pixels (w*h*channels bytes, row-major, top-to-bottom,
// no padding) into a complete PNG file. channels must be 3 (RGB) or 4
// (RGBA). Encode never fails on a well-formed input: if the compressed
// path would overflow its buffer, it transparently falls back to an
// uncompressed stored block, per spec.
func Encode(pixels []byte, w, h, channels int, flags EncodeFlags) ([]byte, error) {
	if channels != 3 && channels != 4 {
		return nil, ErrInvalidChannels
	}
	if w < 1 || h < 1 || w > MaxDimension || h > MaxDimension {
		return nil, ErrInvalidDimensions
	}
	if uint64(w)*uint64(h) > MaxPixels {
		return nil, ErrInvalidDimensions
	}
	if len(pixels) != w*h*channels {
		return nil, ErrInvalidDimensions
	}

	zlibStream, err := encodeZlib(pixels, w, h, channels, flags)
	if err != nil {
		return nil, err
	}

	out := make([]byte, pngchunk.FileSize(len(zlibStream)))
	n, ok := pngchunk.WriteFile(out, w, h, channels, zlibStream)
	if !ok {
		return nil, errors.New("fpng: internal error sizing output file")
	}
	return out[:n], nil
}

// encodeZlib runs the requested compressed encoder, falling back to a
// stored block if it doesn't fit maxZlibStreamSize's worst-case buffer
// (which the raw fallback is guaranteed to fit, by construction).
func encodeZlib(pixels []byte, w, h, chans int, flags EncodeFlags) ([]byte, error) {
	bpl := w * chans
	filteredLen := (1 + bpl) * h
	maxSize := maxZlibStreamSize(filteredLen)

	buf := scratch.Acquire(filteredLen, (w+1)*h)
	defer scratch.Release(buf)

	if flags&FlagForceUncompressed == 0 {
		filtered := rle.FilterImageInto(pixels, w, h, chans, true, buf.Filtered)
		dst := make([]byte, maxSize)

		var n int
		var ok bool
		if flags&FlagSlower != 0 {
			n, ok = defblock.EncodeTwoPassScratch(filtered, w, h, chans, dst, buf.Tokens, buf.LitFreq)
		} else {
			n, ok = defblock.EncodeOnePass(filtered, w, h, chans, dst)
		}
		if ok {
			return dst[:n], nil
		}
	}

	filtered := rle.FilterImageInto(pixels, w, h, chans, false, buf.Filtered)
	dst := make([]byte, maxSize)
	n, ok := defblock.WriteRawZlib(dst, filtered)
	if !ok {
		return nil, errors.New("fpng: internal error: raw fallback overflowed its sized buffer")
	}
	return dst[:n], nil
}

// maxZlibStreamSize upper-bounds the zlib stream WriteRawZlib would
// produce for filteredLen bytes: a 2-byte header, one 5-byte stored-block
// header per 65535-byte chunk, the bytes themselves, and a 4-byte Adler-32
// trailer. Used to size the buffer both compressed encoders attempt
// first, since the raw fallback is the one path guaranteed to fit.
func maxZlibStreamSize(filteredLen int) int {
	const maxStoredBlockLen = 0xFFFF
	numBlocks := (filteredLen + maxStoredBlockLen - 1) / maxStoredBlockLen
	if numBlocks == 0 {
		numBlocks = 1
	}
	return 2 + numBlocks*5 + filteredLen + 4
}

// GetInfo parses a PNG file's framing and self-identification chunk
// without decoding pixel data.
func GetInfo(src []byte, opts *DecodeOptions) (Info, error) {
	skip := opts != nil && opts.SkipAncillaryCRC32
	info, err := pngchunk.GetInfo(src, skip)
	if err != nil {
		return Info{}, framingErr(err)
	}
	return Info{W: info.W, H: info.H, ChannelsInFile: info.ChannelsInFile}, nil
}

// Decode parses and decompresses src, a complete PNG file produced by
// Encode, into desiredChannels-per-pixel output (3 or 4; may differ from
// the file's own channel count, in which case alpha is synthesized as
// 0xFF or dropped).
func Decode(src []byte, desiredChannels int, opts *DecodeOptions) (*DecodedImage, error) {
	if desiredChannels != 3 && desiredChannels != 4 {
		return nil, ErrInvalidChannels
	}

	skip := opts != nil && opts.SkipAncillaryCRC32
	info, err := pngchunk.GetInfo(src, skip)
	if err != nil {
		return nil, framingErr(err)
	}

	zlibStream := src[info.IDATOffset : info.IDATOffset+info.IDATLen]
	pixels := make([]byte, info.W*desiredChannels*info.H)
	if !defblock.DecodeZlib(zlibStream, info.W, info.H, info.ChannelsInFile, desiredChannels, pixels) {
		return nil, decodeErr(NotFpng)
	}

	return &DecodedImage{
		W:              info.W,
		H:              info.H,
		ChannelsInFile: info.ChannelsInFile,
		Pixels:         pixels,
	}, nil
}

// EncodeFile encodes pixels and writes the result to path.
func EncodeFile(path string, pixels []byte, w, h, channels int, flags EncodeFlags) error {
	data, err := Encode(pixels, w, h, channels, flags)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DecodeFile reads path and decodes it exactly as Decode would.
func DecodeFile(path string, desiredChannels int, opts *DecodeOptions) (*DecodedImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, desiredChannels, opts)
}
