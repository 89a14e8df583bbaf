package imgfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
)

// "PIXLRAW" and a version byte.
const rawMagic uint64 = 0x5049584C52415702

const rawHeaderLen = 8 + 8 + 8 + 1 + 1

type rawHeader struct {
	magic    uint64
	width    uint64
	height   uint64
	channels uint8
	depth    uint8
}

func (h *rawHeader) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&h.magic),
		bin.Int(&h.width),
		bin.Int(&h.height),
		bin.Byte(&h.channels),
		bin.Byte(&h.depth),
	)
}

func isRaw(data []byte) bool {
	return len(data) >= 8 && binary.BigEndian.Uint64(data) == rawMagic
}

func writeRaw(w io.Writer, img *Image) error {
	h := rawHeader{
		magic:    rawMagic,
		width:    uint64(img.Width),
		height:   uint64(img.Height),
		channels: uint8(img.Channels),
		depth:    uint8(img.BitDepth()),
	}
	if err := h.mapper().Write(w, binary.BigEndian); err != nil {
		return err
	}
	_, err := w.Write(img.Pix)
	return err
}

func readRaw(data []byte) (*Image, error) {
	if len(data) < rawHeaderLen {
		return nil, fmt.Errorf("%w: too short to contain a header", ErrInvalidRaw)
	}
	var h rawHeader
	if err := h.mapper().Read(bytes.NewReader(data[:rawHeaderLen]), binary.BigEndian); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRaw, err)
	}
	if h.magic != rawMagic {
		return nil, fmt.Errorf("%w: bad magic %#x", ErrInvalidRaw, h.magic)
	}
	if !validChannels(int(h.channels)) {
		return nil, fmt.Errorf("%w: unsupported channel count %d", ErrInvalidRaw, h.channels)
	}
	if h.depth != 8 && h.depth != 16 {
		return nil, fmt.Errorf("%w: unsupported depth %d", ErrInvalidRaw, h.depth)
	}
	if h.width > uint64(maxInt) || h.height > uint64(maxInt) {
		return nil, fmt.Errorf("%w: dimensions %dx%d out of range", ErrInvalidRaw, h.width, h.height)
	}
	img := &Image{
		Width:    int(h.width),
		Height:   int(h.height),
		Channels: int(h.channels),
		Depth:    int(h.depth),
	}
	n, ok := pixLen(img.Width, img.Height, img.Channels*img.sampleSize())
	if !ok {
		return nil, fmt.Errorf("%w: dimensions %dx%dx%d out of range", ErrInvalidRaw, h.width, h.height, h.channels)
	}
	payload := data[rawHeaderLen:]
	if len(payload) != n {
		return nil, fmt.Errorf("%w: expected %d pixel bytes, found %d", ErrInvalidRaw, n, len(payload))
	}
	img.Pix = bytes.Clone(payload)
	return img, nil
}
