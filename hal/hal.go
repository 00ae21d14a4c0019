package hal

import (
	"errors"
	"image"

	"tinygo.org/x/drivers/touch"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrBadRegion      = errors.New("region outside framebuffer")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, stored little-endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus "present" hooks.
//
// PresentRegion pushes only the given rectangle to the panel. Backends without a
// slow bus may treat it as Present.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Present() error
	PresentRegion(r image.Rectangle) error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Touch reports the current contact on a touch panel.
//
// Poll returns false when nothing is touching the panel. Coordinates are in the
// controller's native units; see Calibration for mapping them to pixels.
type Touch interface {
	Poll() (touch.Point, bool)
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Touch() Touch
}

// Time provides a base tick stream.
//
// One tick is one millisecond on every backend.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the program and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Input() Input
	Time() Time
}
