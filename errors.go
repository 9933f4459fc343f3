package fpng

import (
	"errors"

	"github.com/go-fpng/fpng/internal/pngchunk"
)

// Sentinel errors for invalid caller input. Encode returns either one;
// Decode returns only ErrInvalidChannels (for a desiredChannels other than
// 3 or 4) and reports every problem with the file itself as a
// *DecodeError, since a decode failure needs to carry which of several
// taxonomized reasons caused it.
var (
	// ErrInvalidDimensions is returned when w or h is zero, exceeds
	// MaxDimension, the product exceeds MaxPixels, or the supplied pixel
	// buffer's length doesn't match w*h*channels.
	ErrInvalidDimensions = errors.New("fpng: invalid image dimensions")

	// ErrInvalidChannels is returned when channels is not 3 or 4.
	ErrInvalidChannels = errors.New("fpng: channels must be 3 or 4")
)

// Kind taxonomizes why Decode or GetInfo rejected a buffer.
type Kind int

const (
	// NotPng means the signature didn't match, or the buffer was too
	// short to possibly hold a valid file.
	NotPng Kind = iota

	// HeaderCrc32 means a chunk's CRC-32 (IHDR, the self-identification
	// chunk, or a CRC-checked ancillary chunk) didn't match its contents.
	HeaderCrc32

	// InvalidDimensions means IHDR's width/height fields were zero or
	// exceeded MaxDimension.
	InvalidDimensions

	// ChunkParsing means chunk framing itself was malformed: a declared
	// length overran the buffer, a type byte wasn't an ASCII letter, or
	// the chunk sequence never reached IEND.
	ChunkParsing

	// InvalidIdat means the IDAT chunk was absent, duplicated, or too
	// short to hold a minimal zlib stream.
	InvalidIdat

	// DimensionsTooLarge means width*height exceeded MaxPixels.
	DimensionsTooLarge

	// NotFpng means the file is valid PNG but deviates from this
	// package's restricted profile somewhere: an unsupported bit
	// depth/color type/compression/filter/interlace value, a misordered
	// or duplicated fdEC/IDAT chunk, an unrecognized critical chunk, or
	// (once framing passes) a Deflate stream that isn't exactly the
	// single dynamic or stored block this encoder produces. The caller
	// should retry with a general PNG decoder.
	NotFpng
)

func (k Kind) String() string {
	switch k {
	case NotPng:
		return "NotPng"
	case HeaderCrc32:
		return "HeaderCrc32"
	case InvalidDimensions:
		return "InvalidDimensions"
	case ChunkParsing:
		return "ChunkParsing"
	case InvalidIdat:
		return "InvalidIdat"
	case DimensionsTooLarge:
		return "DimensionsTooLarge"
	case NotFpng:
		return "NotFpng"
	default:
		return "Unknown"
	}
}

// DecodeError reports why Decode or GetInfo rejected a buffer, carrying
// both the taxonomized Kind and, where available, the lower-level cause.
type DecodeError struct {
	Kind Kind
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return "fpng: decode failed: " + e.Kind.String() + ": " + e.Err.Error()
	}
	return "fpng: decode failed: " + e.Kind.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(k Kind) error                { return &DecodeError{Kind: k} }
func decodeErrWrap(k Kind, err error) error { return &DecodeError{Kind: k, Err: err} }

// reasonKind maps internal/pngchunk's local Reason vocabulary onto this
// package's exported Kind enum. pngchunk can't import Kind directly (fpng
// imports pngchunk), so the two enums are kept in lockstep by hand here.
func reasonKind(r pngchunk.Reason) Kind {
	switch r {
	case pngchunk.ReasonNotPNG:
		return NotPng
	case pngchunk.ReasonHeaderCRC32:
		return HeaderCrc32
	case pngchunk.ReasonInvalidDimensions:
		return InvalidDimensions
	case pngchunk.ReasonChunkParsing:
		return ChunkParsing
	case pngchunk.ReasonInvalidIdat:
		return InvalidIdat
	case pngchunk.ReasonDimensionsTooLarge:
		return DimensionsTooLarge
	default:
		return NotFpng
	}
}

// framingErr converts a pngchunk.GetInfo error (always a *pngchunk.FrameError
// on the error paths that matter) into a *DecodeError.
func framingErr(err error) error {
	if fe, ok := err.(*pngchunk.FrameError); ok {
		return decodeErr(reasonKind(fe.Reason))
	}
	return decodeErrWrap(ChunkParsing, err)
}
