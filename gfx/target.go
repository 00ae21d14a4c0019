// Package gfx draws into RGB565 framebuffers.
//
// RGB565Target implements the segment drawing used by wire3d and the
// drivers.Displayer interface used by tinyfont, and records the rectangle touched
// since the last flush so callers can push only that region to the panel.
package gfx

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*RGB565Target)(nil)

// RGB565Target renders into a little-endian RGB565 buffer.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int

	dirty image.Rectangle
}

func NewRGB565Target(buf []byte, stride, w, h int) *RGB565Target {
	return &RGB565Target{Buf: buf, Stride: stride, W: w, H: h}
}

func (t *RGB565Target) ok() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Bounds() image.Rectangle { return image.Rect(0, 0, t.W, t.H) }

// Dirty returns the region written since the last ResetDirty.
func (t *RGB565Target) Dirty() image.Rectangle { return t.dirty }

func (t *RGB565Target) ResetDirty() { t.dirty = image.Rectangle{} }

func (t *RGB565Target) markDirty(r image.Rectangle) {
	r = r.Intersect(t.Bounds())
	if r.Empty() {
		return
	}
	t.dirty = t.dirty.Union(r)
}

func (t *RGB565Target) Clear(c color.RGBA) {
	if !t.ok() {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
	t.markDirty(t.Bounds())
}

func (t *RGB565Target) put(x, y int, p uint16) {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// At returns the stored pixel as RGB565.
func (t *RGB565Target) At(x, y int) uint16 {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return 0
	}
	return uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
}

// Size implements drivers.Displayer.
func (t *RGB565Target) Size() (x, y int16) {
	if t == nil {
		return 0, 0
	}
	return int16(t.W), int16(t.H)
}

// SetPixel implements drivers.Displayer.
func (t *RGB565Target) SetPixel(x, y int16, c color.RGBA) {
	if !t.ok() {
		return
	}
	t.put(int(x), int(y), rgb565From888(c.R, c.G, c.B))
	t.markDirty(image.Rect(int(x), int(y), int(x)+1, int(y)+1))
}

// Display implements drivers.Displayer. Presenting is the caller's job.
func (t *RGB565Target) Display() error { return nil }

func (t *RGB565Target) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if !t.ok() {
		return nil
	}
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(t.Bounds())
	if r.Empty() {
		return nil
	}
	p := rgb565From888(c.R, c.G, c.B)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			t.put(px, py, p)
		}
	}
	t.markDirty(r)
	return nil
}

// DrawSegment draws a 1px line. Endpoints may lie anywhere; the segment is clipped
// to the target first so off-screen coordinates cost nothing.
func (t *RGB565Target) DrawSegment(x0, y0, x1, y1 int, c color.RGBA) {
	if !t.ok() {
		return
	}
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, t.W-1, t.H-1)
	if !ok {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	bresenham(x0, y0, x1, y1, func(x, y int) { t.put(x, y, p) })
	t.markDirty(image.Rect(min(x0, x1), min(y0, y1), max(x0, x1)+1, max(y0, y1)+1))
}

// RGBA converts the buffer to an image.
func (t *RGB565Target) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.W, t.H))
	if !t.ok() {
		return img
	}
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			r, g, b := rgb888From565(t.At(x, y))
			j := img.PixOffset(x, y)
			img.Pix[j+0] = r
			img.Pix[j+1] = g
			img.Pix[j+2] = b
			img.Pix[j+3] = 0xFF
		}
	}
	return img
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return uint8((rr * 255) / 31), uint8((gg * 255) / 63), uint8((bb * 255) / 31)
}
