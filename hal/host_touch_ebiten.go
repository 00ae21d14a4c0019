//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

var touchIDs []ebiten.TouchID

// poll runs on the ebiten update goroutine.
func (t *hostTouch) poll() {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		t.set(x, y, true)
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		t.set(x, y, true)
		return
	}
	t.set(0, 0, false)
}
