package raster

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"gradient-shine/internal/utils"

	"github.com/pierrec/lz4/v4"
)

// CaptureMagic opens every capture stream.
const CaptureMagic = "GSCAP0001"

const maxMagicLength = 64

var ErrBadCapture = errors.New("malformed capture stream")

// A capture stream is the length-prefixed magic, the frame size, then one
// record per frame: timestamp, raw size, stored size, payload. A stored size
// below the raw size marks an lz4 block, otherwise the pixels are raw. All
// integers are little endian.

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	if size > maxMagicLength {
		return "", fmt.Errorf("%w: header string of %d bytes", ErrBadCapture, size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

type frameHeader struct {
	Timestamp float64
	RawSize   uint32
	Stored    uint32
}

// CaptureWriter appends premultiplied RGBA frames of a fixed size to w.
type CaptureWriter struct {
	w      io.Writer
	width  int
	height int
	raw    []byte
	block  []byte
	frames int
	stored int64
}

// NewCaptureWriter writes the stream header.
func NewCaptureWriter(w io.Writer, width, height int) (*CaptureWriter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("capture: invalid size %dx%d", width, height)
	}
	if err := writeString(w, CaptureMagic); err != nil {
		return nil, fmt.Errorf("capture: write header: %w", err)
	}
	size := [2]uint32{uint32(width), uint32(height)}
	if err := binary.Write(w, binary.LittleEndian, size); err != nil {
		return nil, fmt.Errorf("capture: write header: %w", err)
	}
	n := width * height * 4
	return &CaptureWriter{
		w:      w,
		width:  width,
		height: height,
		raw:    make([]byte, n),
		block:  make([]byte, lz4.CompressBlockBound(n)),
	}, nil
}

// WriteFrame appends img, which must match the stream size.
func (c *CaptureWriter) WriteFrame(timestampMs float64, img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != c.width || b.Dy() != c.height {
		return fmt.Errorf("capture: frame is %dx%d, stream is %dx%d", b.Dx(), b.Dy(), c.width, c.height)
	}
	row := c.width * 4
	for y := 0; y < c.height; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(c.raw[y*row:(y+1)*row], img.Pix[i:i+row])
	}

	payload := c.raw
	n, err := lz4.CompressBlock(c.raw, c.block, nil)
	if err != nil {
		return fmt.Errorf("capture: compress frame %d: %w", c.frames, err)
	}
	if n > 0 && n < len(c.raw) {
		payload = c.block[:n]
	}

	h := frameHeader{Timestamp: timestampMs, RawSize: uint32(len(c.raw)), Stored: uint32(len(payload))}
	if err := binary.Write(c.w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("capture: write frame %d: %w", c.frames, err)
	}
	if _, err := c.w.Write(payload); err != nil {
		return fmt.Errorf("capture: write frame %d: %w", c.frames, err)
	}
	c.frames++
	c.stored += int64(len(payload))
	return nil
}

func (c *CaptureWriter) Frames() int { return c.frames }

// Ratio is the stored size over the raw size of everything written so far.
func (c *CaptureWriter) Ratio() float64 {
	if c.frames == 0 {
		return 0
	}
	return float64(c.stored) / float64(int64(c.frames)*int64(len(c.raw)))
}

// CaptureFrame is one decoded record.
type CaptureFrame struct {
	Timestamp  float64
	Image      *image.RGBA
	Compressed bool
}

type CaptureReader struct {
	r      io.Reader
	width  int
	height int
	block  []byte
}

// NewCaptureReader reads and validates the stream header.
func NewCaptureReader(r io.Reader) (*CaptureReader, error) {
	magic, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("capture: read header: %w", err)
	}
	if magic != CaptureMagic {
		return nil, fmt.Errorf("%w: unknown magic %q", ErrBadCapture, magic)
	}
	var size [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("capture: read header: %w", err)
	}
	if size[0] == 0 || size[1] == 0 {
		return nil, fmt.Errorf("%w: empty frame size", ErrBadCapture)
	}
	utils.Debug("Capture: Stream %s, %dx%d", magic, size[0], size[1])
	return &CaptureReader{r: r, width: int(size[0]), height: int(size[1])}, nil
}

func (c *CaptureReader) Size() (width, height int) { return c.width, c.height }

// Next decodes the following frame. It returns io.EOF at the clean end of
// the stream; a stream cut inside a record is an ErrBadCapture.
func (c *CaptureReader) Next() (CaptureFrame, error) {
	var h frameHeader
	if err := binary.Read(c.r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.EOF) {
			return CaptureFrame{}, io.EOF
		}
		return CaptureFrame{}, fmt.Errorf("%w: truncated frame header", ErrBadCapture)
	}
	want := c.width * c.height * 4
	if int(h.RawSize) != want {
		return CaptureFrame{}, fmt.Errorf("%w: frame of %d bytes, expected %d", ErrBadCapture, h.RawSize, want)
	}
	if h.Stored > h.RawSize {
		return CaptureFrame{}, fmt.Errorf("%w: stored size %d exceeds raw size %d", ErrBadCapture, h.Stored, h.RawSize)
	}

	if cap(c.block) < int(h.Stored) {
		c.block = make([]byte, h.Stored)
	}
	payload := c.block[:h.Stored]
	if _, err := io.ReadFull(c.r, payload); err != nil {
		return CaptureFrame{}, fmt.Errorf("%w: truncated frame payload", ErrBadCapture)
	}

	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	frame := CaptureFrame{Timestamp: h.Timestamp, Image: img}
	if h.Stored < h.RawSize {
		n, err := lz4.UncompressBlock(payload, img.Pix)
		if err != nil {
			return CaptureFrame{}, fmt.Errorf("%w: %v", ErrBadCapture, err)
		}
		if n != want {
			return CaptureFrame{}, fmt.Errorf("%w: frame decompressed to %d bytes, expected %d", ErrBadCapture, n, want)
		}
		frame.Compressed = true
	} else {
		copy(img.Pix, payload)
	}
	return frame, nil
}

// Record steps sc frames times, interval apart, painting each frame with p
// and appending it to cw.
func Record(sc *Scene, p *Painter, cw *CaptureWriter, frames int, interval time.Duration) error {
	for i := 0; i < frames; i++ {
		ts := sc.Step(interval)
		sc.Paint(p)
		if err := cw.WriteFrame(ts, p.Image()); err != nil {
			return err
		}
	}
	utils.Info("Capture: Recorded %d frames, %.1f%% of raw size", cw.Frames(), cw.Ratio()*100)
	return nil
}
