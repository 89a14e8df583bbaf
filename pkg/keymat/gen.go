package keymat

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// GenerateKey will generate a random key from length bytes of OS entropy.
// The bytes are hex encoded, so the result is twice as long and can be typed in as a passphrase.
func GenerateKey(length int) (Key, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a 0-length key")
	}
	buf := make([]byte, length)
	n, err := rand.Read(buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	key := make(Key, hex.EncodedLen(length))
	hex.Encode(key, buf)
	return key, nil
}
