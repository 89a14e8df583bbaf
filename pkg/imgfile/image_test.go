package imgfile

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomImage(w, h, channels int) *Image {
	return randomImageDepth(w, h, channels, 8)
}

func randomImageDepth(w, h, channels, depth int) *Image {
	img := &Image{Pix: make([]byte, w*h*channels*depth/8), Width: w, Height: h, Channels: channels, Depth: depth}
	r := rand.New(rand.NewSource(int64(w*h + channels + depth)))
	_, _ = r.Read(img.Pix)
	return img
}

func TestImage_Validate(t *testing.T) {
	assert.NoError(t, randomImage(3, 2, 1).Validate())
	assert.NoError(t, randomImage(3, 2, 3).Validate())
	assert.NoError(t, randomImage(3, 2, 4).Validate())
	assert.NoError(t, (&Image{Channels: 3}).Validate())
	assert.NoError(t, randomImageDepth(3, 2, 4, 16).Validate())
	assert.NoError(t, (&Image{Pix: make([]byte, 6), Width: 3, Height: 1, Channels: 1, Depth: 16}).Validate())

	var nilImg *Image
	assert.ErrorIs(t, nilImg.Validate(), ErrInvalidImage)
	assert.ErrorIs(t, (&Image{Pix: make([]byte, 4), Width: 2, Height: 1, Channels: 2}).Validate(), ErrInvalidImage)
	assert.ErrorIs(t, (&Image{Pix: make([]byte, 5), Width: 2, Height: 1, Channels: 3}).Validate(), ErrInvalidImage)
	assert.ErrorIs(t, (&Image{Width: -1, Height: 1, Channels: 1}).Validate(), ErrInvalidImage)
	assert.ErrorIs(t, (&Image{Width: maxInt, Height: maxInt, Channels: 4}).Validate(), ErrInvalidImage)
	assert.ErrorIs(t, (&Image{Pix: make([]byte, 3), Width: 3, Height: 1, Channels: 1, Depth: 16}).Validate(), ErrInvalidImage)
	assert.ErrorIs(t, (&Image{Pix: make([]byte, 3), Width: 3, Height: 1, Channels: 1, Depth: 12}).Validate(), ErrInvalidImage)
}

func TestImage_Len(t *testing.T) {
	assert.Equal(t, 225*225*3, (&Image{Width: 225, Height: 225, Channels: 3}).Len())
	assert.Equal(t, 225*225*3*2, (&Image{Width: 225, Height: 225, Channels: 3, Depth: 16}).Len())
}

func TestFromImage_Gray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 3, 2))
	copy(g.Pix, []byte{1, 2, 3, 4, 5, 6})
	img := FromImage(g)
	assert.Equal(t, 1, img.Channels)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, img.Pix)

	g16 := image.NewGray16(image.Rect(0, 0, 1, 1))
	g16.SetGray16(0, 0, color.Gray16{Y: 0xab12})
	img = FromImage(g16)
	assert.Equal(t, 1, img.Channels)
	assert.Equal(t, 16, img.Depth)
	assert.Equal(t, []byte{0xab, 0x12}, img.Pix)
}

func TestFromImage_SubImage(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 3, 3))
	copy(g.Pix, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	img := FromImage(g.SubImage(image.Rect(1, 1, 3, 3)))
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, []byte{5, 6, 8, 9}, img.Pix)
}

func TestFromImage_Opaque(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 2, 1))
	m.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 0xff})
	m.SetRGBA(1, 0, color.RGBA{R: 4, G: 5, B: 6, A: 0xff})
	img := FromImage(m)
	assert.Equal(t, 3, img.Channels)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, img.Pix)
}

func TestFromImage_OpaqueAlphaFormat(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	m.SetNRGBA(0, 0, color.NRGBA{R: 96, G: 68, B: 190, A: 0xff})
	img := FromImage(m)
	assert.Equal(t, 4, img.Channels)
	assert.Equal(t, []byte{96, 68, 190, 0xff}, img.Pix)
}

func TestFromImage_16Bit(t *testing.T) {
	rgb := image.NewRGBA64(image.Rect(0, 0, 2, 1))
	rgb.SetRGBA64(0, 0, color.RGBA64{R: 0x0102, G: 0x0304, B: 0x0506, A: 0xffff})
	rgb.SetRGBA64(1, 0, color.RGBA64{R: 0xa1a2, G: 0xb1b2, B: 0xc1c2, A: 0xffff})
	img := FromImage(rgb)
	assert.Equal(t, 3, img.Channels)
	assert.Equal(t, 16, img.Depth)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 0xa1, 0xa2, 0xb1, 0xb2, 0xc1, 0xc2}, img.Pix)

	nrgba := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	nrgba.SetNRGBA64(0, 0, color.NRGBA64{R: 0x1234, G: 0x5678, B: 0x9abc, A: 0xffff})
	img = FromImage(nrgba)
	assert.Equal(t, 4, img.Channels)
	assert.Equal(t, 16, img.Depth)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xff, 0xff}, img.Pix)
}

func TestFromImage_Alpha(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	m.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 0})
	m.SetNRGBA(1, 0, color.NRGBA{R: 4, G: 5, B: 6, A: 7})
	img := FromImage(m)
	assert.Equal(t, 4, img.Channels)
	assert.Equal(t, []byte{1, 2, 3, 0, 4, 5, 6, 7}, img.Pix)
}

func TestFromImage_GrayPalette(t *testing.T) {
	p := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{color.Gray{Y: 0}, color.Gray{Y: 200}})
	p.SetColorIndex(1, 0, 1)
	img := FromImage(p)
	assert.Equal(t, 1, img.Channels)
	assert.Equal(t, []byte{0, 200}, img.Pix)
}

func TestToImage(t *testing.T) {
	for _, depth := range []int{8, 16} {
		for _, channels := range []int{1, 3, 4} {
			orig := randomImageDepth(5, 4, channels, depth)
			m, err := orig.ToImage()
			require.NoError(t, err)
			assert.True(t, orig.Equal(FromImage(m)), "channels: %d, depth: %d", channels, depth)
		}
	}

	_, err := (&Image{Pix: []byte{1}, Width: 2, Height: 2, Channels: 1}).ToImage()
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestImage_Equal(t *testing.T) {
	a := randomImage(2, 2, 3)
	b := &Image{Pix: append([]byte(nil), a.Pix...), Width: 2, Height: 2, Channels: 3}
	assert.True(t, a.Equal(b))
	b.Pix[0]++
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(&Image{Pix: a.Pix, Width: 4, Height: 1, Channels: 3}))
	assert.False(t, a.Equal(nil))
	assert.True(t, a.Equal(&Image{Pix: a.Pix, Width: 2, Height: 2, Channels: 3, Depth: 8}))
	assert.False(t, a.Equal(&Image{Pix: a.Pix, Width: 2, Height: 1, Channels: 3, Depth: 16}))
}
