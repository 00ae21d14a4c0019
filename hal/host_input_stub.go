//go:build !tinygo && !cgo

package hal

// Without cgo there is no ebiten backend: keyboard and pointer stay silent and
// only the headless runner is available.

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 1)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }
func (k *hostKeyboard) poll()                   {}

func (t *hostTouch) poll() {}
