package app

import (
	"image"
	"strings"

	"wirecube/hal"

	"tinygo.org/x/drivers/touch"
)

type fakeFB struct {
	w, h    int
	buf     []byte
	regions []image.Rectangle
	full    int
	err     error
}

func newFakeFB(w, h int) *fakeFB {
	return &fakeFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }

func (f *fakeFB) Present() error {
	f.full++
	return f.err
}

func (f *fakeFB) PresentRegion(r image.Rectangle) error {
	f.regions = append(f.regions, r)
	return f.err
}

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *fakeLogger) has(prefix string) bool {
	for _, line := range l.lines {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

type fakeLED struct{ on bool }

func (l *fakeLED) High() { l.on = true }
func (l *fakeLED) Low()  { l.on = false }

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeTouch struct {
	p    touch.Point
	down bool
}

func (t *fakeTouch) Poll() (touch.Point, bool) { return t.p, t.down }

type fakeTime struct{ ch chan uint64 }

func (t fakeTime) Ticks() <-chan uint64 { return t.ch }

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeInput struct {
	kbd   hal.Keyboard
	touch hal.Touch
}

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }
func (in fakeInput) Touch() hal.Touch       { return in.touch }

type fakeHAL struct {
	log   *fakeLogger
	led   *fakeLED
	fb    *fakeFB
	keys  chan hal.KeyEvent
	touch *fakeTouch
	ticks chan uint64
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		log:   &fakeLogger{},
		led:   &fakeLED{},
		fb:    newFakeFB(480, 320),
		keys:  make(chan hal.KeyEvent, 16),
		touch: &fakeTouch{},
		ticks: make(chan uint64, 1024),
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) LED() hal.LED         { return h.led }
func (h *fakeHAL) Display() hal.Display { return fakeDisplay{fb: h.fb} }
func (h *fakeHAL) Input() hal.Input {
	return fakeInput{kbd: fakeKeyboard{ch: h.keys}, touch: h.touch}
}
func (h *fakeHAL) Time() hal.Time { return fakeTime{ch: h.ticks} }

// advance queues ticks up to and including seq.
func (h *fakeHAL) advance(seq uint64) { h.ticks <- seq }
