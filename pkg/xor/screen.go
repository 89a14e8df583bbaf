package xor

// Screen sets dst[i] = src[i] ^ stream[i] for each position shared by all three slices, and returns the number of bytes screened.
// dst and src may be the same slice, but must not otherwise overlap.
func Screen(dst, src, stream []byte) int {
	n := min(len(dst), len(src), len(stream))
	if n == 0 {
		return 0
	}
	// Hoisted bounds checks.
	dst, src, stream = dst[:n], src[:n], stream[:n]
	for i := range src {
		dst[i] = src[i] ^ stream[i]
	}
	return n
}
