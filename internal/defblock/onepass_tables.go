package defblock

// The one-pass encoder skips histogramming and table construction
// entirely: it ships a single canned dynamic-block preamble and literal
// code table, trained once offline over a representative corpus and
// checked in as a generated artifact (the training path itself is not
// part of this module; see the design notes this ports from). Everything
// below is a verbatim port of fpng's g_dyn_huff_3/g_dyn_huff_3_codes and
// g_dyn_huff_4/g_dyn_huff_4_codes tables: byte-identical preamble bytes,
// byte-identical per-symbol (length,code) pairs, and the bit-buffer
// continuation state needed to keep writing immediately after the canned
// preamble without re-deriving it.

// huffCode is one canonical (length, code) pair in a canned literal table.
type huffCode struct {
	size uint8
	code uint16
}

// dynHuff3Preamble is the canned dynamic-block preamble (everything up to
// and including the code-length-alphabet-coded preamble bits) for the
// 3-channel one-pass encoder, trailing into a non-byte-aligned bit
// position captured by dynHuff3BitBuf/dynHuff3BitBufSize.
var dynHuff3Preamble = []byte{
	120, 1, 229, 194, 3, 176, 37, 75, 148, 5, 208, 189, 79, 102, 86, 213, 197, 99, 187, 231, 143, 109, 219, 182, 109, 219, 182, 109, 219, 182, 109, 219,
	198, 31, 207, 159, 118, 63, 94, 84, 85, 102, 158, 61, 21, 241, 34, 58, 38, 198, 102, 196,
}

const (
	dynHuff3BitBuf     uint64 = 0x2
	dynHuff3BitBufSize uint   = 3
)

var dynHuff3Codes = [288]huffCode{
	{3, 0x0}, {3, 0x4}, {4, 0x6}, {5, 0x1}, {5, 0x11}, {5, 0x9}, {6, 0xD}, {6, 0x2D}, {6, 0x1D}, {7, 0x33}, {7, 0x73}, {7, 0xB}, {7, 0x4B}, {8, 0x3B}, {8, 0xBB}, {8, 0x7B},
	{8, 0xFB}, {8, 0x7}, {8, 0x87}, {9, 0x97}, {9, 0x197}, {9, 0x57}, {9, 0x157}, {9, 0xD7}, {9, 0x1D7}, {9, 0x37}, {9, 0x137}, {12, 0x24F}, {10, 0x18F}, {12, 0xA4F}, {12, 0x64F}, {12, 0xE4F},
	{12, 0x14F}, {12, 0x94F}, {12, 0x54F}, {12, 0xD4F}, {12, 0x34F}, {12, 0xB4F}, {12, 0x74F}, {12, 0xF4F}, {12, 0xCF}, {12, 0x8CF}, {12, 0x4CF}, {12, 0xCCF}, {12, 0x2CF}, {12, 0xACF}, {12, 0x6CF}, {12, 0xECF},
	{12, 0x1CF}, {12, 0x9CF}, {12, 0x5CF}, {12, 0xDCF}, {12, 0x3CF}, {12, 0xBCF}, {12, 0x7CF}, {12, 0xFCF}, {12, 0x2F}, {12, 0x82F}, {12, 0x42F}, {12, 0xC2F}, {12, 0x22F}, {12, 0xA2F}, {12, 0x62F}, {12, 0xE2F},
	{12, 0x12F}, {12, 0x92F}, {12, 0x52F}, {12, 0xD2F}, {12, 0x32F}, {12, 0xB2F}, {12, 0x72F}, {12, 0xF2F}, {12, 0xAF}, {12, 0x8AF}, {12, 0x4AF}, {12, 0xCAF}, {12, 0x2AF}, {12, 0xAAF}, {12, 0x6AF}, {12, 0xEAF},
	{12, 0x1AF}, {12, 0x9AF}, {12, 0x5AF}, {12, 0xDAF}, {12, 0x3AF}, {12, 0xBAF}, {12, 0x7AF}, {12, 0xFAF}, {12, 0x6F}, {12, 0x86F}, {12, 0x46F}, {12, 0xC6F}, {12, 0x26F}, {12, 0xA6F}, {12, 0x66F}, {12, 0xE6F},
	{12, 0x16F}, {12, 0x96F}, {12, 0x56F}, {12, 0xD6F}, {12, 0x36F}, {12, 0xB6F}, {12, 0x76F}, {12, 0xF6F}, {12, 0xEF}, {12, 0x8EF}, {12, 0x4EF}, {12, 0xCEF}, {12, 0x2EF}, {12, 0xAEF}, {12, 0x6EF}, {12, 0xEEF},
	{12, 0x1EF}, {12, 0x9EF}, {12, 0x5EF}, {12, 0xDEF}, {12, 0x3EF}, {12, 0xBEF}, {12, 0x7EF}, {12, 0xFEF}, {12, 0x1F}, {12, 0x81F}, {12, 0x41F}, {12, 0xC1F}, {12, 0x21F}, {12, 0xA1F}, {12, 0x61F}, {12, 0xE1F},
	{12, 0x11F}, {12, 0x91F}, {12, 0x51F}, {12, 0xD1F}, {12, 0x31F}, {12, 0xB1F}, {12, 0x71F}, {12, 0xF1F}, {12, 0x9F}, {12, 0x89F}, {12, 0x49F}, {12, 0xC9F}, {12, 0x29F}, {12, 0xA9F}, {12, 0x69F}, {12, 0xE9F},
	{12, 0x19F}, {12, 0x99F}, {12, 0x59F}, {12, 0xD9F}, {12, 0x39F}, {12, 0xB9F}, {12, 0x79F}, {12, 0xF9F}, {12, 0x5F}, {12, 0x85F}, {12, 0x45F}, {12, 0xC5F}, {12, 0x25F}, {12, 0xA5F}, {12, 0x65F}, {12, 0xE5F},
	{12, 0x15F}, {12, 0x95F}, {12, 0x55F}, {12, 0xD5F}, {12, 0x35F}, {12, 0xB5F}, {12, 0x75F}, {12, 0xF5F}, {12, 0xDF}, {12, 0x8DF}, {12, 0x4DF}, {12, 0xCDF}, {12, 0x2DF}, {12, 0xADF}, {12, 0x6DF}, {12, 0xEDF},
	{12, 0x1DF}, {12, 0x9DF}, {12, 0x5DF}, {12, 0xDDF}, {12, 0x3DF}, {12, 0xBDF}, {12, 0x7DF}, {12, 0xFDF}, {12, 0x3F}, {12, 0x83F}, {12, 0x43F}, {12, 0xC3F}, {12, 0x23F}, {12, 0xA3F}, {12, 0x63F}, {12, 0xE3F},
	{12, 0x13F}, {12, 0x93F}, {12, 0x53F}, {12, 0xD3F}, {12, 0x33F}, {12, 0xB3F}, {12, 0x73F}, {12, 0xF3F}, {12, 0xBF}, {12, 0x8BF}, {12, 0x4BF}, {12, 0xCBF}, {12, 0x2BF}, {12, 0xABF}, {12, 0x6BF}, {12, 0xEBF},
	{12, 0x1BF}, {12, 0x9BF}, {12, 0x5BF}, {12, 0xDBF}, {12, 0x3BF}, {12, 0xBBF}, {12, 0x7BF}, {12, 0xFBF}, {12, 0x7F}, {12, 0x87F}, {12, 0x47F}, {10, 0x38F}, {12, 0xC7F}, {12, 0x27F}, {12, 0xA7F}, {12, 0x67F},
	{12, 0xE7F}, {12, 0x17F}, {12, 0x97F}, {12, 0x57F}, {10, 0x4F}, {12, 0xD7F}, {9, 0xB7}, {9, 0x1B7}, {9, 0x77}, {9, 0x177}, {9, 0xF7}, {9, 0x1F7}, {9, 0xF}, {9, 0x10F}, {8, 0x47}, {8, 0xC7},
	{8, 0x27}, {8, 0xA7}, {8, 0x67}, {8, 0xE7}, {7, 0x2B}, {7, 0x6B}, {7, 0x1B}, {7, 0x5B}, {6, 0x3D}, {6, 0x3}, {6, 0x23}, {5, 0x19}, {5, 0x5}, {5, 0x15}, {4, 0xE}, {3, 0x2},
	{12, 0x37F}, {6, 0x13}, {0, 0x0}, {0, 0x0}, {8, 0x17}, {0, 0x0}, {0, 0x0}, {9, 0x8F}, {0, 0x0}, {12, 0xB7F}, {0, 0x0}, {12, 0x77F}, {12, 0xF7F}, {12, 0xFF}, {12, 0x8FF}, {12, 0x4FF},
	{12, 0xCFF}, {12, 0x2FF}, {12, 0xAFF}, {12, 0x6FF}, {12, 0xEFF}, {12, 0x1FF}, {12, 0x9FF}, {12, 0x5FF}, {12, 0xDFF}, {12, 0x3FF}, {12, 0xBFF}, {12, 0x7FF}, {12, 0xFFF}, {0, 0x0}, {0, 0x0}, {0, 0x0},
}

var dynHuff4Preamble = []byte{
	120, 1, 229, 195, 83, 144, 37, 219, 182, 0, 208, 49, 87, 230, 70, 177, 171, 121, 204, 171, 103, 219, 182, 109, 219, 182, 109, 219, 182, 109, 219, 214,
	197, 177, 154, 213, 197, 141, 204, 53, 95, 228, 71, 69, 116, 156, 56, 207, 126, 251, 99,
}

const (
	dynHuff4BitBuf     uint64 = 0x0
	dynHuff4BitBufSize uint   = 2
)

var dynHuff4Codes = [288]huffCode{
	{1, 0x0}, {4, 0x1}, {5, 0x5}, {6, 0xD}, {6, 0x2D}, {7, 0x23}, {7, 0x63}, {7, 0x13}, {7, 0x53}, {8, 0x6B}, {8, 0xEB}, {8, 0x1B}, {8, 0x9B}, {8, 0x5B}, {8, 0xDB}, {9, 0xA7},
	{8, 0x3B}, {9, 0x1A7}, {9, 0x67}, {9, 0x167}, {9, 0xE7}, {9, 0x1E7}, {9, 0x17}, {10, 0x137}, {10, 0x337}, {10, 0xB7}, {10, 0x2B7}, {10, 0x1B7}, {10, 0x3B7}, {10, 0x77}, {10, 0x277}, {10, 0x177},
	{10, 0x377}, {10, 0xF7}, {10, 0x2F7}, {11, 0x34F}, {11, 0x74F}, {11, 0xCF}, {11, 0x4CF}, {11, 0x2CF}, {12, 0x7CF}, {12, 0xFCF}, {12, 0x2F}, {12, 0x82F}, {12, 0x42F}, {12, 0xC2F}, {12, 0x22F}, {12, 0xA2F},
	{12, 0x62F}, {12, 0xE2F}, {12, 0x12F}, {12, 0x92F}, {12, 0x52F}, {12, 0xD2F}, {12, 0x32F}, {12, 0xB2F}, {12, 0x72F}, {12, 0xF2F}, {12, 0xAF}, {12, 0x8AF}, {12, 0x4AF}, {12, 0xCAF}, {12, 0x2AF}, {12, 0xAAF},
	{12, 0x6AF}, {12, 0xEAF}, {12, 0x1AF}, {12, 0x9AF}, {12, 0x5AF}, {12, 0xDAF}, {12, 0x3AF}, {12, 0xBAF}, {12, 0x7AF}, {12, 0xFAF}, {12, 0x6F}, {12, 0x86F}, {12, 0x46F}, {12, 0xC6F}, {12, 0x26F}, {12, 0xA6F},
	{12, 0x66F}, {12, 0xE6F}, {12, 0x16F}, {12, 0x96F}, {12, 0x56F}, {12, 0xD6F}, {12, 0x36F}, {12, 0xB6F}, {12, 0x76F}, {12, 0xF6F}, {12, 0xEF}, {12, 0x8EF}, {12, 0x4EF}, {12, 0xCEF}, {12, 0x2EF}, {12, 0xAEF},
	{12, 0x6EF}, {12, 0xEEF}, {12, 0x1EF}, {12, 0x9EF}, {12, 0x5EF}, {12, 0xDEF}, {12, 0x3EF}, {12, 0xBEF}, {12, 0x7EF}, {12, 0xFEF}, {12, 0x1F}, {12, 0x81F}, {12, 0x41F}, {12, 0xC1F}, {12, 0x21F}, {12, 0xA1F},
	{12, 0x61F}, {12, 0xE1F}, {12, 0x11F}, {12, 0x91F}, {12, 0x51F}, {12, 0xD1F}, {12, 0x31F}, {12, 0xB1F}, {12, 0x71F}, {12, 0xF1F}, {12, 0x9F}, {12, 0x89F}, {12, 0x49F}, {12, 0xC9F}, {12, 0x29F}, {12, 0xA9F},
	{12, 0x69F}, {12, 0xE9F}, {12, 0x19F}, {12, 0x99F}, {12, 0x59F}, {12, 0xD9F}, {12, 0x39F}, {12, 0xB9F}, {12, 0x79F}, {12, 0xF9F}, {12, 0x5F}, {12, 0x85F}, {12, 0x45F}, {12, 0xC5F}, {12, 0x25F}, {12, 0xA5F},
	{12, 0x65F}, {12, 0xE5F}, {12, 0x15F}, {12, 0x95F}, {12, 0x55F}, {12, 0xD5F}, {12, 0x35F}, {12, 0xB5F}, {12, 0x75F}, {12, 0xF5F}, {12, 0xDF}, {12, 0x8DF}, {12, 0x4DF}, {12, 0xCDF}, {12, 0x2DF}, {12, 0xADF},
	{12, 0x6DF}, {12, 0xEDF}, {12, 0x1DF}, {12, 0x9DF}, {12, 0x5DF}, {12, 0xDDF}, {12, 0x3DF}, {12, 0xBDF}, {12, 0x7DF}, {12, 0xFDF}, {12, 0x3F}, {12, 0x83F}, {12, 0x43F}, {12, 0xC3F}, {12, 0x23F}, {12, 0xA3F},
	{12, 0x63F}, {12, 0xE3F}, {12, 0x13F}, {12, 0x93F}, {12, 0x53F}, {12, 0xD3F}, {12, 0x33F}, {12, 0xB3F}, {12, 0x73F}, {12, 0xF3F}, {12, 0xBF}, {12, 0x8BF}, {12, 0x4BF}, {12, 0xCBF}, {12, 0x2BF}, {12, 0xABF},
	{12, 0x6BF}, {12, 0xEBF}, {12, 0x1BF}, {12, 0x9BF}, {12, 0x5BF}, {12, 0xDBF}, {12, 0x3BF}, {12, 0xBBF}, {12, 0x7BF}, {12, 0xFBF}, {12, 0x7F}, {12, 0x87F}, {12, 0x47F}, {12, 0xC7F}, {12, 0x27F}, {12, 0xA7F},
	{12, 0x67F}, {12, 0xE7F}, {12, 0x17F}, {12, 0x97F}, {12, 0x57F}, {12, 0xD7F}, {12, 0x37F}, {12, 0xB7F}, {12, 0x77F}, {12, 0xF7F}, {12, 0xFF}, {11, 0x6CF}, {11, 0x1CF}, {11, 0x5CF}, {11, 0x3CF}, {10, 0x1F7},
	{10, 0x3F7}, {10, 0xF}, {10, 0x20F}, {10, 0x10F}, {10, 0x30F}, {10, 0x8F}, {10, 0x28F}, {10, 0x18F}, {10, 0x38F}, {10, 0x4F}, {9, 0x117}, {9, 0x97}, {9, 0x197}, {9, 0x57}, {9, 0x157}, {9, 0xD7},
	{8, 0xBB}, {9, 0x1D7}, {8, 0x7B}, {8, 0xFB}, {8, 0x7}, {8, 0x87}, {8, 0x47}, {8, 0xC7}, {7, 0x33}, {7, 0x73}, {7, 0xB}, {7, 0x4B}, {6, 0x1D}, {6, 0x3D}, {5, 0x15}, {4, 0x9},
	{12, 0x8FF}, {0, 0x0}, {6, 0x3}, {0, 0x0}, {0, 0x0}, {0, 0x0}, {8, 0x27}, {0, 0x0}, {0, 0x0}, {9, 0x37}, {0, 0x0}, {10, 0x24F}, {0, 0x0}, {10, 0x14F}, {12, 0x4FF}, {12, 0xCFF},
	{12, 0x2FF}, {12, 0xAFF}, {12, 0x6FF}, {12, 0xEFF}, {12, 0x1FF}, {12, 0x9FF}, {12, 0x5FF}, {12, 0xDFF}, {12, 0x3FF}, {12, 0xBFF}, {12, 0x7FF}, {12, 0xFFF}, {7, 0x2B}, {0, 0x0}, {0, 0x0}, {0, 0x0},
}
