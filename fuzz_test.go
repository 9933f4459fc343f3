package fpng

import (
	"testing"
)

// addRoundTripSeeds seeds the fuzz corpus with complete, valid encoded
// files covering both channel counts and both encoders, so the fuzzer
// starts from well-formed input and mutates outward from there.
func addRoundTripSeeds(f *testing.F) {
	f.Helper()
	for _, chans := range []int{3, 4} {
		for _, flags := range []EncodeFlags{0, FlagSlower, FlagForceUncompressed} {
			px := makeGradient(9, 7, chans)
			data, err := Encode(px, 9, 7, chans, flags)
			if err == nil {
				f.Add(data)
			}
		}
	}
}

// FuzzDecode exercises property 5: for arbitrary byte mutations of a
// valid encoded stream, Decode must never panic, never read or write out
// of bounds, and must either return an error or a length-consistent
// result.
func FuzzDecode(f *testing.F) {
	addRoundTripSeeds(f)
	f.Add([]byte(nil))
	f.Add([]byte{0x89, 0x50, 0x4E, 0x47})
	f.Add(make([]byte, 4096))

	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := Decode(data, 4, nil)
		if err != nil {
			return
		}
		if len(out.Pixels) != out.W*out.H*4 {
			t.Fatalf("decoded pixel buffer length %d, want %d", len(out.Pixels), out.W*out.H*4)
		}
	})
}

// FuzzGetInfo exercises the same property for the lighter-weight framing
// parse, which a caller might run over untrusted input far more often
// than a full decode.
func FuzzGetInfo(f *testing.F) {
	addRoundTripSeeds(f)
	f.Add([]byte(nil))
	f.Add(make([]byte, 64))

	f.Fuzz(func(t *testing.T, data []byte) {
		info, err := GetInfo(data, nil)
		if err != nil {
			return
		}
		if info.W <= 0 || info.H <= 0 {
			t.Fatalf("GetInfo returned non-positive dimensions %dx%d with no error", info.W, info.H)
		}
	})
}

// FuzzEncodeRoundTrip exercises property 1 (round-trip) and property 5
// (never panics) together: arbitrary byte sequences, reinterpreted as a
// one-row image whose width is the input length over the channel count
// (lengths that do not divide evenly are skipped), must always encode and
// decode back to themselves without panicking regardless of content.
func FuzzEncodeRoundTrip(f *testing.F) {
	f.Add(make([]byte, 3*4*4))
	f.Add(make([]byte, 3*4*3))
	for i := 0; i < 3*4*4; i++ {
		seed := make([]byte, 3*4*4)
		seed[i] = 0xFF
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		chans := 3
		if len(data)%4 == 0 && len(data) > 0 {
			chans = 4
		}
		if len(data) == 0 || len(data)%chans != 0 {
			return
		}
		pixelCount := len(data) / chans
		w := pixelCount
		h := 1
		if w == 0 {
			return
		}

		encoded, err := Encode(data, w, h, chans, 0)
		if err != nil {
			t.Fatalf("Encode failed on valid input: %v", err)
		}

		out, err := Decode(encoded, chans, nil)
		if err != nil {
			t.Fatalf("Decode failed on self-produced data: %v", err)
		}
		if len(out.Pixels) != len(data) {
			t.Fatalf("round-tripped pixel length %d, want %d", len(out.Pixels), len(data))
		}
		for i := range data {
			if out.Pixels[i] != data[i] {
				t.Fatalf("pixel mismatch at byte %d: got %d want %d", i, out.Pixels[i], data[i])
			}
		}
	})
}
