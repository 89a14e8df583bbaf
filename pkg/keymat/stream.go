package keymat

import (
	"encoding/binary"
	"hash"
	"io"
)

const (
	permDomain = "perm"
	xorDomain  = "xor"
)

var _ io.Reader = (*Stream)(nil)

// Stream is a deterministic, unbounded byte stream expanded from a key and a domain string.
// Block c of the stream is H(seed || BE64(c)), where seed is H(key || domain).
type Stream struct {
	h       hash.Hash
	seed    []byte
	counter uint64
	block   []byte
	off     int
	ctr     [8]byte
}

// NewStream creates a Stream for the given key and domain, using the first given Digest or SHA256.
func NewStream(key Key, domain string, digest ...Digest) *Stream {
	h := pickDigest(digest).new()
	h.Write(key)
	h.Write([]byte(domain))
	s := &Stream{
		h:    h,
		seed: h.Sum(nil),
	}
	return s
}

func (s *Stream) next() {
	binary.BigEndian.PutUint64(s.ctr[:], s.counter)
	s.counter++
	s.h.Reset()
	s.h.Write(s.seed)
	s.h.Write(s.ctr[:])
	s.block = s.h.Sum(s.block[:0])
	s.off = 0
}

// Read fills out with the next bytes of the stream. It never returns an error.
func (s *Stream) Read(out []byte) (n int, err error) {
	for n < len(out) {
		if s.off >= len(s.block) {
			s.next()
		}
		c := copy(out[n:], s.block[s.off:])
		s.off += c
		n += c
	}
	return n, nil
}

// Uint64 reads the next 8 bytes of the stream as a big-endian integer.
func (s *Stream) Uint64() uint64 {
	var buf [8]byte
	_, _ = s.Read(buf[:])
	return binary.BigEndian.Uint64(buf[:])
}

// Intn returns a uniformly distributed value in [0, bound).
// Values below 2^64 mod bound are rejected so the result isn't biased toward small values.
func (s *Stream) Intn(bound int) int {
	if bound <= 0 {
		panic("keymat: bound must be positive")
	}
	b := uint64(bound)
	threshold := -b % b
	for {
		v := s.Uint64()
		if v >= threshold {
			return int(v % b)
		}
	}
}
