package imgfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// A nil holds means the container stores any image exactly.
type format struct {
	name   string
	lossy  bool
	holds  func(img *Image) bool
	encode func(w io.Writer, img *Image) error
}

var formats = map[string]format{
	".png":  {name: "png", encode: encodePNG},
	".bmp":  {name: "bmp", holds: bmpHolds, encode: encodeWith(bmp.Encode)},
	".tif":  {name: "tiff", encode: encodeTIFF},
	".tiff": {name: "tiff", encode: encodeTIFF},
	".pxr":  {name: "raw", encode: writeRaw},
	".jpg":  {name: "jpeg", lossy: true, encode: encodeJPEG},
	".jpeg": {name: "jpeg", lossy: true, encode: encodeJPEG},
	".gif":  {name: "gif", lossy: true, encode: encodeGIF},
}

func encodeWith(enc func(io.Writer, image.Image) error) func(io.Writer, *Image) error {
	return func(w io.Writer, img *Image) error {
		m, err := img.ToImage()
		if err != nil {
			return err
		}
		return enc(w, m)
	}
}

// keepAlpha hides Opaque, so that encoders deciding on content still write an alpha channel.
type keepAlpha struct {
	image.Image
}

func (keepAlpha) Opaque() bool {
	return false
}

func encodePNG(w io.Writer, img *Image) error {
	return encodeWith(func(w io.Writer, m image.Image) error {
		if img.Channels == 4 {
			m = keepAlpha{m}
		}
		return png.Encode(w, m)
	})(w, img)
}

// BMP reads back without alpha, and only with 8 bits per sample.
func bmpHolds(img *Image) bool {
	return img.Channels != 4 && img.BitDepth() == 8
}

func encodeTIFF(w io.Writer, img *Image) error {
	return encodeWith(func(w io.Writer, m image.Image) error {
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	})(w, img)
}

func encodeJPEG(w io.Writer, img *Image) error {
	return encodeWith(func(w io.Writer, m image.Image) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 100})
	})(w, img)
}

func encodeGIF(w io.Writer, img *Image) error {
	return encodeWith(func(w io.Writer, m image.Image) error {
		return gif.Encode(w, m, nil)
	})(w, img)
}

// Decode reads the image at path, detecting its container by content.
func Decode(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if isRaw(data) {
		img, err := readRaw(data)
		if err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		return img, nil
	}
	m, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			err = fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, &DecodeError{Path: path, Err: err}
	}
	return FromImage(m), nil
}

// Encode writes img to path, in the container named by the path's extension.
// Lossy containers, and containers that can't hold img's layout exactly, are refused unless AllowLossy is given.
// The image is written to a temporary file next to path and renamed into place, so a failed Encode leaves nothing behind.
func Encode(path string, img *Image, opts ...Opt) error {
	params := newParams(opts)
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formats[ext]
	if !ok {
		return &EncodeError{Path: path, Err: fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, ext)}
	}
	if f.lossy && !params.AllowLossy {
		return &EncodeError{Path: path, Err: fmt.Errorf("%w: %s", ErrLossyContainer, f.name)}
	}
	if err := img.Validate(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if f.holds != nil && !f.holds(img) && !params.AllowLossy {
		return &EncodeError{Path: path, Err: fmt.Errorf("%w: %s can't hold %d channels at %d bits", ErrLossyContainer, f.name, img.Channels, img.BitDepth())}
	}
	if err := writeFile(path, func(w io.Writer) error { return f.encode(w, img) }); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

func writeFile(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = write(buf); err != nil {
		return err
	}
	if err = buf.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
