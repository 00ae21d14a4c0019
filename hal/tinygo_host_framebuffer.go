//go:build tinygo && !baremetal

package hal

import "image"

type tinyGoHostFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte
}

func newTinyGoHostFramebuffer(w, h int) *tinyGoHostFramebuffer {
	stride := w * 2
	return &tinyGoHostFramebuffer{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*h),
	}
}

func (f *tinyGoHostFramebuffer) Width() int          { return f.w }
func (f *tinyGoHostFramebuffer) Height() int         { return f.h }
func (f *tinyGoHostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *tinyGoHostFramebuffer) StrideBytes() int    { return f.stride }
func (f *tinyGoHostFramebuffer) Buffer() []byte      { return f.buf }

// Present is a no-op: there is no panel behind this target.
func (f *tinyGoHostFramebuffer) Present() error { return nil }

func (f *tinyGoHostFramebuffer) PresentRegion(r image.Rectangle) error {
	_, err := clipRegion(r, f.w, f.h)
	return err
}
