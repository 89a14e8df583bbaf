package imgfile

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nethra567/PRODIGY-CS-02/pkg/keymat"
	"github.com/nethra567/PRODIGY-CS-02/pkg/scramble"
)

type transformFunc = func(buf []byte, key keymat.Key, digest ...keymat.Digest) []byte

// EncryptFile scrambles the image at in and writes it to out with the same pixel layout.
func EncryptFile(in, out string, key keymat.Key, opts ...Opt) error {
	return transformFile("encrypt", scramble.Encrypt, in, out, key, opts)
}

// DecryptFile reverses EncryptFile, given the same key and digest.
// A wrong key is not detected, the output is simply scrambled.
func DecryptFile(in, out string, key keymat.Key, opts ...Opt) error {
	return transformFile("decrypt", scramble.Decrypt, in, out, key, opts)
}

func transformFile(op string, transform transformFunc, in, out string, key keymat.Key, opts []Opt) error {
	params := newParams(opts)
	img, err := Decode(in)
	if err != nil {
		return err
	}
	log.Debug().
		Str("op", op).
		Str("input", in).
		Int("width", img.Width).
		Int("height", img.Height).
		Int("channels", img.Channels).
		Int("depth", img.BitDepth()).
		Msg("Decoded image")

	start := time.Now()
	result := &Image{
		Pix:      transform(img.Pix, key, params.Digest),
		Width:    img.Width,
		Height:   img.Height,
		Channels: img.Channels,
		Depth:    img.Depth,
	}
	log.Debug().
		Str("op", op).
		Stringer("digest", params.Digest).
		Int("bytes", len(result.Pix)).
		Dur("elapsed", time.Since(start)).
		Msg("Transformed pixel buffer")

	if err := Encode(out, result, opts...); err != nil {
		return err
	}
	log.Debug().Str("op", op).Str("output", out).Msg("Wrote image")
	return nil
}

// RoundTrip encrypts the image at in to a temporary PNG, decrypts that to another, and reports whether the result matches the original.
func RoundTrip(in string, key keymat.Key, opts ...Opt) (bool, error) {
	dir, err := os.MkdirTemp("", "imgcrypt-")
	if err != nil {
		return false, err
	}
	defer func() {
		_ = os.RemoveAll(dir)
	}()

	var (
		encPath = filepath.Join(dir, uuid.NewString()+".png")
		decPath = filepath.Join(dir, uuid.NewString()+".png")
	)
	if err := EncryptFile(in, encPath, key, opts...); err != nil {
		return false, err
	}
	if err := DecryptFile(encPath, decPath, key, opts...); err != nil {
		return false, err
	}
	orig, err := Decode(in)
	if err != nil {
		return false, err
	}
	got, err := Decode(decPath)
	if err != nil {
		return false, err
	}
	equal := orig.Equal(got)
	log.Debug().Str("input", in).Bool("equal", equal).Msg("Round trip complete")
	return equal, nil
}
