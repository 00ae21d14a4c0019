//go:build !tinygo

package hal

import (
	"sync"

	"tinygo.org/x/drivers/touch"
)

// hostTouch emulates the touch panel with the mouse or a touch screen. Samples
// are already in framebuffer pixels.
type hostTouch struct {
	mu   sync.Mutex
	p    touch.Point
	down bool
}

func (t *hostTouch) Poll() (touch.Point, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p, t.down
}

func (t *hostTouch) set(x, y int, down bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.down = down
	if down {
		t.p = touch.Point{X: x, Y: y, Z: 1}
	}
}
