package keymat

// Key is the user supplied secret, normally the UTF-8 bytes of a passphrase.
type Key []byte

// Permutation is a gather map: the value at position i was taken from position Permutation[i].
type Permutation []int

// Keystream is XOR'd with a permuted buffer, one byte per position.
type Keystream []byte

// DerivePermutation shuffles the positions [0, n) using a Stream seeded with the key.
// A negative n is treated as 0.
func DerivePermutation(key Key, n int, digest ...Digest) Permutation {
	if n < 0 {
		n = 0
	}
	perm := make(Permutation, n)
	for i := range perm {
		perm[i] = i
	}
	s := NewStream(key, permDomain, digest...)
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// DeriveKeystream returns the first n bytes of a Stream seeded with the key.
// A negative n is treated as 0.
func DeriveKeystream(key Key, n int, digest ...Digest) Keystream {
	if n < 0 {
		n = 0
	}
	ks := make(Keystream, n)
	_, _ = NewStream(key, xorDomain, digest...).Read(ks)
	return ks
}

// Valid reports whether every index in [0, len(p)) appears exactly once.
func (p Permutation) Valid() bool {
	seen := make([]bool, len(p))
	for _, idx := range p {
		if idx < 0 || idx >= len(p) || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
