//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Host panel size, matching the ILI9488 in landscape.
const (
	HostWidth  = 480
	HostHeight = 320
)

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	touch  *hostTouch
	t      *hostTime
}

// New returns a host HAL implementation.
func New() HAL {
	return newHostHAL(os.Stdout)
}

func newHostHAL(w io.Writer) *hostHAL {
	logger := &hostLogger{w: w}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		fb:     newHostFramebuffer(HostWidth, HostHeight),
		kbd:    newHostKeyboard(),
		touch:  &hostTouch{},
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, touch: h.touch} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd   *hostKeyboard
	touch *hostTouch
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Touch() Touch       { return in.touch }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		return
	}
	l.on = true
	l.logger.WriteLineString("hal: led on")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		return
	}
	l.on = false
	l.logger.WriteLineString("hal: led off")
}
