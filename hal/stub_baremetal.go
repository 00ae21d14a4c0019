//go:build tinygo && baremetal

package hal

import (
	"image"

	"tinygo.org/x/drivers/touch"
)

// stubFramebuffer keeps the app running when the panel fails to initialise.
// Drawing still lands in buf; nothing reaches the screen.
type stubFramebuffer struct {
	w   int
	h   int
	buf []byte
}

func newStubFramebuffer(w, h int) *stubFramebuffer {
	return &stubFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *stubFramebuffer) Width() int                            { return f.w }
func (f *stubFramebuffer) Height() int                           { return f.h }
func (f *stubFramebuffer) Format() PixelFormat                   { return PixelFormatRGB565 }
func (f *stubFramebuffer) StrideBytes() int                      { return f.w * 2 }
func (f *stubFramebuffer) Buffer() []byte                        { return f.buf }
func (f *stubFramebuffer) Present() error                        { return ErrNotImplemented }
func (f *stubFramebuffer) PresentRegion(_ image.Rectangle) error { return ErrNotImplemented }

type stubKeyboard struct{}

func (k *stubKeyboard) Events() <-chan KeyEvent { return nil }

type stubTouch struct{}

func (stubTouch) Poll() (touch.Point, bool) { return touch.Point{}, false }
