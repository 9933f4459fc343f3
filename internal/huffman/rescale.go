package huffman

// Rescale16 compresses 32-bit frequency counts into 16-bit buckets so the
// radix sort's two-pass 8-bit-digit keys always suffice, per spec.md §4.3.
// Each non-zero bucket is scaled to floor(f * 65535 / total) with a floor
// of 1, preserving relative ordering; if the rescaled total overflows
// 65535 (possible from the min-1 floor pushing small buckets up), every
// non-zero bucket is halved (floor, min 1) and the total recomputed until
// it fits.
func Rescale16(freq []uint32) []uint32 {
	out := make([]uint32, len(freq))

	var total uint64
	for _, f := range freq {
		total += uint64(f)
	}
	if total == 0 {
		return out
	}

	var total16 uint64
	for i, f := range freq {
		if f == 0 {
			continue
		}
		v := (uint64(f) * 0xFFFF) / total
		if v < 1 {
			v = 1
		}
		out[i] = uint32(v)
		total16 += v
	}

	for total16 > 0xFFFF {
		total16 = 0
		for i, v := range out {
			if v != 0 {
				v >>= 1
				if v < 1 {
					v = 1
				}
				out[i] = v
				total16 += uint64(v)
			}
		}
	}

	return out
}
