package imgfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math/bits"
)

// Image is a decoded image as a flat pixel buffer.
// Depth is the bits per sample, 8 or 16. Zero means 8.
// 16-bit samples are stored big-endian, as in image.Gray16 and image.NRGBA64.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
	Depth    int
}

// Len is the expected length of Pix.
func (img *Image) Len() int {
	n, _ := pixLen(img.Width, img.Height, img.Channels*img.sampleSize())
	return n
}

// BitDepth is the bits per sample, with the zero value resolved to 8.
func (img *Image) BitDepth() int {
	if img.Depth == 0 {
		return 8
	}
	return img.Depth
}

func (img *Image) sampleSize() int {
	return img.BitDepth() / 8
}

// Validate checks that the image layout describes Pix exactly.
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	if !validChannels(img.Channels) {
		return fmt.Errorf("%w: unsupported channel count %d", ErrInvalidImage, img.Channels)
	}
	if !validDepth(img.Depth) {
		return fmt.Errorf("%w: unsupported depth %d", ErrInvalidImage, img.Depth)
	}
	n, ok := pixLen(img.Width, img.Height, img.Channels*img.sampleSize())
	if !ok {
		return fmt.Errorf("%w: dimensions %dx%dx%d out of range", ErrInvalidImage, img.Width, img.Height, img.Channels)
	}
	if len(img.Pix) != n {
		return fmt.Errorf("%w: expected %d bytes for %dx%dx%d at %d bits, got %d", ErrInvalidImage, n, img.Width, img.Height, img.Channels, img.BitDepth(), len(img.Pix))
	}
	return nil
}

// Equal reports whether both images have the same shape and pixels.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	return img.Width == other.Width &&
		img.Height == other.Height &&
		img.Channels == other.Channels &&
		img.BitDepth() == other.BitDepth() &&
		bytes.Equal(img.Pix, other.Pix)
}

func validChannels(c int) bool {
	return c == 1 || c == 3 || c == 4
}

func validDepth(d int) bool {
	return d == 0 || d == 8 || d == 16
}

func pixLen(w, h, c int) (int, bool) {
	if w < 0 || h < 0 || c < 0 {
		return 0, false
	}
	hi, wh := bits.Mul64(uint64(w), uint64(h))
	if hi != 0 {
		return 0, false
	}
	hi, n := bits.Mul64(wh, uint64(c))
	if hi != 0 || n > uint64(maxInt) {
		return 0, false
	}
	return int(n), true
}

const maxInt = int(^uint(0) >> 1)

// FromImage flattens m.
// The layout follows the concrete pixel format rather than the pixel values, so a container that stores alpha always yields 4 channels.
// Gray formats yield 1 channel. Formats with alpha yield 4 channels of non-premultiplied RGBA, others yield 3 channels of RGB.
// 16-bit formats keep 16 bits per sample.
func FromImage(m image.Image) *Image {
	b := m.Bounds()
	channels, depth := layoutOf(m)
	img := &Image{Width: b.Dx(), Height: b.Dy(), Channels: channels, Depth: depth}
	img.Pix = make([]byte, img.Len())
	if len(img.Pix) == 0 {
		return img
	}

	rowLen := img.Width * channels * img.sampleSize()
	if pix, stride, ok := directPix(m); ok {
		for y := 0; y < img.Height; y++ {
			copy(img.Pix[y*rowLen:(y+1)*rowLen], pix[y*stride:y*stride+rowLen])
		}
		return img
	}
	px := channels * img.sampleSize()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			putPixel(img.Pix[i:i+px], m.At(x, y), channels, depth)
			i += px
		}
	}
	return img
}

// layoutOf picks channels and depth from the pixel format of m.
func layoutOf(m image.Image) (channels, depth int) {
	switch t := m.(type) {
	case *image.Gray:
		return 1, 8
	case *image.Gray16:
		return 1, 16
	case *image.NRGBA:
		return 4, 8
	case *image.NRGBA64:
		return 4, 16
	case *image.NYCbCrA:
		return 4, 8
	case *image.YCbCr, *image.CMYK:
		return 3, 8
	case *image.Paletted:
		switch {
		case grayPalette(t.Palette):
			return 1, 8
		case opaquePalette(t.Palette):
			return 3, 8
		}
		return 4, 8
	// Premultiplied formats carry an alpha channel even for opaque sources, such as PNG truecolor without alpha.
	case *image.RGBA:
		if t.Opaque() {
			return 3, 8
		}
		return 4, 8
	case *image.RGBA64:
		if t.Opaque() {
			return 3, 16
		}
		return 4, 16
	}

	depth = 8
	model := m.ColorModel()
	switch model {
	case color.GrayModel:
		return 1, 8
	case color.Gray16Model:
		return 1, 16
	case color.RGBA64Model, color.NRGBA64Model, color.Alpha16Model:
		depth = 16
	}
	if o, ok := m.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3, depth
	}
	return 4, depth
}

// directPix exposes the pixel rows of formats whose memory layout matches Image.
func directPix(m image.Image) (pix []byte, stride int, ok bool) {
	switch t := m.(type) {
	case *image.Gray:
		return t.Pix[t.PixOffset(t.Rect.Min.X, t.Rect.Min.Y):], t.Stride, true
	case *image.Gray16:
		return t.Pix[t.PixOffset(t.Rect.Min.X, t.Rect.Min.Y):], t.Stride, true
	case *image.NRGBA:
		return t.Pix[t.PixOffset(t.Rect.Min.X, t.Rect.Min.Y):], t.Stride, true
	case *image.NRGBA64:
		return t.Pix[t.PixOffset(t.Rect.Min.X, t.Rect.Min.Y):], t.Stride, true
	}
	return nil, 0, false
}

func putPixel(dst []byte, c color.Color, channels, depth int) {
	if depth == 16 {
		if channels == 1 {
			binary.BigEndian.PutUint16(dst, color.Gray16Model.Convert(c).(color.Gray16).Y)
			return
		}
		n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
		for k, v := range [4]uint16{n.R, n.G, n.B, n.A} {
			if k == channels {
				break
			}
			binary.BigEndian.PutUint16(dst[2*k:], v)
		}
		return
	}
	if channels == 1 {
		dst[0] = color.GrayModel.Convert(c).(color.Gray).Y
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	copy(dst, []byte{n.R, n.G, n.B, n.A}[:channels])
}

// BMP stores gray images as a gray palette.
func grayPalette(p color.Palette) bool {
	if len(p) == 0 {
		return false
	}
	for _, c := range p {
		r, g, b, a := c.RGBA()
		if r != g || g != b || a != 0xffff {
			return false
		}
	}
	return true
}

func opaquePalette(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return false
		}
	}
	return true
}

// ToImage expands the buffer into an image.Image suitable for the standard encoders.
// 1 channel yields *image.Gray, 3 channels an opaque *image.RGBA, 4 channels *image.NRGBA.
// 16-bit buffers use the 16-bit variant of each.
func (img *Image) ToImage() (image.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, img.Width, img.Height)
	wide := img.BitDepth() == 16
	switch img.Channels {
	case 1:
		if wide {
			g := image.NewGray16(rect)
			copy(g.Pix, img.Pix)
			return g, nil
		}
		g := image.NewGray(rect)
		copy(g.Pix, img.Pix)
		return g, nil
	case 3:
		if wide {
			m := image.NewRGBA64(rect)
			for i, j := 0, 0; i < len(img.Pix); i, j = i+6, j+8 {
				copy(m.Pix[j:j+6], img.Pix[i:i+6])
				m.Pix[j+6], m.Pix[j+7] = 0xff, 0xff
			}
			return m, nil
		}
		m := image.NewRGBA(rect)
		for i, j := 0, 0; i < len(img.Pix); i, j = i+3, j+4 {
			m.Pix[j], m.Pix[j+1], m.Pix[j+2], m.Pix[j+3] = img.Pix[i], img.Pix[i+1], img.Pix[i+2], 0xff
		}
		return m, nil
	default:
		if wide {
			n := image.NewNRGBA64(rect)
			copy(n.Pix, img.Pix)
			return n, nil
		}
		n := image.NewNRGBA(rect)
		copy(n.Pix, img.Pix)
		return n, nil
	}
}
