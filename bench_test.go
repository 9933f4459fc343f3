package fpng

import (
	"testing"
)

func loadBenchImage(chans int) []byte {
	w, h := 640, 480
	px := make([]byte, w*h*chans)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ofs := (y*w + x) * chans
			px[ofs] = byte(x % 256)
			px[ofs+1] = byte(y % 256)
			px[ofs+2] = byte((x + y) % 256)
			if chans == 4 {
				px[ofs+3] = 255
			}
		}
	}
	return px
}

func BenchmarkEncodeOnePassRGB(b *testing.B) {
	px := loadBenchImage(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, err := Encode(px, 640, 480, 3, 0)
		if err != nil {
			b.Fatal(err)
		}
		if i == 0 {
			b.SetBytes(int64(len(data)))
		}
	}
}

func BenchmarkEncodeTwoPassRGB(b *testing.B) {
	px := loadBenchImage(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, err := Encode(px, 640, 480, 3, FlagSlower)
		if err != nil {
			b.Fatal(err)
		}
		if i == 0 {
			b.SetBytes(int64(len(data)))
		}
	}
}

func BenchmarkEncodeOnePassRGBA(b *testing.B) {
	px := loadBenchImage(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, err := Encode(px, 640, 480, 4, 0)
		if err != nil {
			b.Fatal(err)
		}
		if i == 0 {
			b.SetBytes(int64(len(data)))
		}
	}
}

func BenchmarkDecodeRGB(b *testing.B) {
	px := loadBenchImage(3)
	data, err := Encode(px, 640, 480, 3, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(data, 3, nil); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(len(data)))
}

func BenchmarkDecodeRGBA(b *testing.B) {
	px := loadBenchImage(4)
	data, err := Encode(px, 640, 480, 4, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(data, 4, nil); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(len(data)))
}

func BenchmarkGetInfo(b *testing.B) {
	px := loadBenchImage(3)
	data, err := Encode(px, 640, 480, 3, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := GetInfo(data, nil); err != nil {
			b.Fatal(err)
		}
	}
}
