//go:build !tinygo

package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	// front is what the window shows; Present copies buf into it.
	front    []byte
	presents uint64
	pushed   uint64 // pixels copied to front
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	return f.PresentRegion(image.Rect(0, 0, f.width, f.height))
}

func (f *hostFramebuffer) PresentRegion(r image.Rectangle) error {
	r, err := clipRegion(r, f.width, f.height)
	if err != nil || r.Empty() {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		lo := y*f.stride + r.Min.X*2
		hi := y*f.stride + r.Max.X*2
		copy(f.front[lo:hi], f.buf[lo:hi])
	}
	f.presents++
	f.pushed += uint64(r.Dx() * r.Dy())
	return nil
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}

func (f *hostFramebuffer) stats() (presents, pushed uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents, f.pushed
}
