// Package blend implements Porter-Duff compositing over premultiplied,
// packed 32-bit ARGB pixels using fixed-point SWAR (SIMD-within-a-register)
// arithmetic: a pixel's four 8-bit channels are spread into alternating
// 16-bit lanes of a uint64 so a single multiply-and-shift handles all four
// channels at once.
package blend

// expand spreads a packed 0xAARRGGBB pixel into alternating 16-bit lanes of
// a 64-bit word: 0xAARRGGBB becomes 0x00AA00GG00RR00BB, so each channel
// occupies its own lane and a scalar multiply cannot carry into a neighbor.
func expand(x uint32) uint64 {
	hi := uint64(x) & 0xFF00FF00 // A and G
	lo := uint64(x) & 0x00FF00FF // R and B
	return (hi << 24) | lo
}

// replicate copies the low byte of x into all four 16-bit lanes.
func replicate(x uint64) uint64 {
	return (x << 48) | (x << 32) | (x << 16) | x
}

// compact reverses expand, packing the low byte of each 16-bit lane back
// into a single 0xAARRGGBB pixel.
func compact(x uint64) uint32 {
	return uint32(((x >> 24) & 0xFF00FF00) | (x & 0x00FF00FF))
}

// quadMulDiv255 multiplies every channel of the packed pixel x by the
// scalar a (0-255) and divides by 255 with rounding, in one 64-bit multiply
// covering all four channels.
//
// Per-channel formula: (x*a + 128 + ((x*a+128)>>8)) >> 8 — exact for all
// byte inputs (Alvy Ray Smith's div-255 identity).
func quadMulDiv255(x uint32, a uint8) uint32 {
	prod := expand(x) * uint64(a)
	prod += replicate(128)
	prod += (prod >> 8) & replicate(0xFF)
	prod >>= 8
	return compact(prod)
}

// MultiplyPixels multiplies two packed premultiplied pixels channel by
// channel, dividing each product by 255 with rounding (original_source/
// combined_shader.h's multiplyPixels). Used by shader composition to
// combine a texture sample with an interpolated color.
func MultiplyPixels(x, y uint32) uint32 {
	return pack(
		mulDiv255(byte(x>>24), byte(y>>24)),
		mulDiv255(byte(x>>16), byte(y>>16)),
		mulDiv255(byte(x>>8), byte(y>>8)),
		mulDiv255(byte(x), byte(y)),
	)
}

// div255 divides a 16-bit product by 255 with correct rounding.
func div255(x uint32) uint32 {
	x += 128
	return (x + (x >> 8)) >> 8
}

// mulDiv255 multiplies two byte channels and divides by 255 with rounding.
func mulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint32(a) * uint32(b)))
}
