package keymat

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Digest selects the hash function used to seed and expand key material.
// The zero value is SHA256.
type Digest uint8

const (
	SHA256 Digest = iota
	BLAKE2b256
	SHA3_256
)

var ErrUnknownDigest = errors.New("unknown digest")

var digestNames = [...]string{
	SHA256:     "sha256",
	BLAKE2b256: "blake2b-256",
	SHA3_256:   "sha3-256",
}

func (d Digest) String() string {
	if int(d) < len(digestNames) {
		return digestNames[d]
	}
	return fmt.Sprintf("Digest(%d)", d)
}

// ParseDigest returns the Digest with the given name, ignoring case.
func ParseDigest(name string) (Digest, error) {
	for i, n := range digestNames {
		if strings.EqualFold(n, name) {
			return Digest(i), nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", ErrUnknownDigest, name)
}

// Digests lists the names accepted by ParseDigest.
func Digests() []string {
	names := make([]string, len(digestNames))
	copy(names, digestNames[:])
	return names
}

func (d Digest) new() hash.Hash {
	switch d {
	case SHA256:
		return sha256.New()
	case BLAKE2b256:
		// Only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	case SHA3_256:
		return sha3.New256()
	default:
		panic(fmt.Sprintf("keymat: %v", d))
	}
}

func pickDigest(digest []Digest) Digest {
	if len(digest) > 0 {
		return digest[0]
	}
	return SHA256
}
