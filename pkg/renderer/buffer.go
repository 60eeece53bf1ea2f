package renderer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math"
	"sync/atomic"

	"github.com/shirou/gopsutil/mem"

	"github.com/df07/go-preview-raytracer/pkg/core"
)

var (
	// ErrInvalidSize is returned for non-positive buffer dimensions
	ErrInvalidSize = errors.New("invalid buffer size")
	// ErrBufferTooLarge is returned when a buffer would not fit in available memory
	ErrBufferTooLarge = errors.New("buffer too large")
)

// bytesPerPixel is the in-memory size of one core.Color
const bytesPerPixel = 16

// availableMemory reports the bytes the system can allocate without swapping
var availableMemory = func() (uint64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return v.Available, nil
}

// Frame is one generation of buffer storage: row-major pixels with their dimensions
type Frame struct {
	Width  int
	Height int
	Stride int          // Pixels per row
	Pix    []core.Color // Width × Height colors, row 0 first
}

// Len returns the number of pixels in the frame
func (f *Frame) Len() int {
	return len(f.Pix)
}

// At returns the color of pixel x, y
func (f *Frame) At(x, y int) core.Color {
	return f.Pix[f.index(x, y)]
}

func (f *Frame) set(x, y int, c core.Color) {
	f.Pix[f.index(x, y)] = c
}

func (f *Frame) index(x, y int) int {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		panic(fmt.Sprintf("pixel (%d, %d) outside %dx%d frame", x, y, f.Width, f.Height))
	}
	return y*f.Stride + x
}

// RenderBuffer holds the pixels of the image being rendered.
// The current frame is swapped atomically on Resize, so readers always see
// dimensions that match the pixel slice. Pixel writes are not synchronized:
// a reader running alongside a render may see pixels from two passes.
type RenderBuffer struct {
	frame atomic.Pointer[Frame]
}

// NewRenderBuffer creates a buffer of width × height pixels
func NewRenderBuffer(width, height int) (*RenderBuffer, error) {
	b := &RenderBuffer{}
	if err := b.Resize(width, height); err != nil {
		return nil, err
	}
	return b, nil
}

// Resize replaces the buffer storage with a new width × height frame.
// Previous contents are discarded. On error the buffer is unchanged.
func (b *RenderBuffer) Resize(width, height int) error {
	frame, err := newFrame(width, height)
	if err != nil {
		return err
	}
	b.frame.Store(frame)
	return nil
}

func newFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	pixels := uint64(width) * uint64(height)
	if uint64(width) > math.MaxInt/uint64(height) || pixels > math.MaxUint64/bytesPerPixel {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrBufferTooLarge, width, height)
	}

	// Skip the check when the platform cannot report memory
	if available, err := availableMemory(); err == nil && pixels*bytesPerPixel > available {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, %d available",
			ErrBufferTooLarge, width, height, pixels*bytesPerPixel, available)
	}

	return &Frame{
		Width:  width,
		Height: height,
		Stride: width,
		Pix:    make([]core.Color, pixels),
	}, nil
}

// View returns the current frame. The frame stays valid after a Resize
// but no longer receives writes.
func (b *RenderBuffer) View() *Frame {
	return b.frame.Load()
}

// Width returns the current width in pixels
func (b *RenderBuffer) Width() int { return b.View().Width }

// Height returns the current height in pixels
func (b *RenderBuffer) Height() int { return b.View().Height }

// Len returns the current number of pixels
func (b *RenderBuffer) Len() int { return b.View().Len() }

// SetPixel writes the color of pixel x, y. It panics outside the buffer extent.
func (b *RenderBuffer) SetPixel(x, y int, c core.Color) {
	b.View().set(x, y, c)
}

// Pixel returns the color of pixel x, y. It panics outside the buffer extent.
func (b *RenderBuffer) Pixel(x, y int) core.Color {
	return b.View().At(x, y)
}

// CopyBGRA packs the buffer into dst as 32-bit little-endian B, G, R, A pixels.
// It copies as many pixels as fit and returns that count.
func (b *RenderBuffer) CopyBGRA(dst []byte) int {
	frame := b.View()
	n := min(len(dst)/4, frame.Len())
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:], frame.Pix[i].ToBGRA32())
	}
	return n
}

// CopyRGBA packs the buffer into dst as 8-bit R, G, B, A pixels.
// It copies as many pixels as fit and returns that count.
func (b *RenderBuffer) CopyRGBA(dst []byte) int {
	return b.View().CopyRGBA(dst)
}

// CopyRGBA packs the frame into dst as 8-bit R, G, B, A pixels
func (f *Frame) CopyRGBA(dst []byte) int {
	n := min(len(dst)/4, f.Len())
	for i := 0; i < n; i++ {
		dst[i*4], dst[i*4+1], dst[i*4+2], dst[i*4+3] = f.Pix[i].Bytes()
	}
	return n
}

// Image returns a copy of the buffer as an RGBA image
func (b *RenderBuffer) Image() *image.RGBA {
	frame := b.View()
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	frame.CopyRGBA(img.Pix)
	return img
}
