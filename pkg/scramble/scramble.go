package scramble

import (
	"github.com/nethra567/PRODIGY-CS-02/pkg/keymat"
	"github.com/nethra567/PRODIGY-CS-02/pkg/xor"
)

// Encrypt gathers buf through the key's permutation, then screens the result with the key's keystream.
// The material is derived from len(buf) and the first given Digest, or keymat.SHA256.
func Encrypt(buf []byte, key keymat.Key, digest ...keymat.Digest) []byte {
	n := len(buf)
	perm := keymat.DerivePermutation(key, n, digest...)
	ks := keymat.DeriveKeystream(key, n, digest...)

	out := make([]byte, n)
	for i, src := range perm {
		out[i] = buf[src]
	}
	xor.Screen(out, out, ks)
	return out
}

// Decrypt reverses Encrypt, given the same key and Digest.
// The permutation is applied as a scatter, which is the exact inverse of the gather in Encrypt.
func Decrypt(buf []byte, key keymat.Key, digest ...keymat.Digest) []byte {
	n := len(buf)
	ks := keymat.DeriveKeystream(key, n, digest...)
	perm := keymat.DerivePermutation(key, n, digest...)

	permuted := make([]byte, n)
	xor.Screen(permuted, buf, ks)
	out := make([]byte, n)
	for i, dst := range perm {
		out[dst] = permuted[i]
	}
	return out
}
