package wire3d

import (
	"testing"

	"tinygo.org/x/drivers/touch"
)

func TestAutoRotateWraps(t *testing.T) {
	c := NewOrientationController(DefaultSensitivity, DefaultAutoStep)
	c.Xan, c.Yan = 10, 355

	const n = 400
	for i := 0; i < n; i++ {
		c.Update(touch.Point{}, false)
		if c.Xan < 0 || c.Xan >= 360 || c.Yan < 0 || c.Yan >= 360 {
			t.Fatalf("tick %d: angles (%v,%v) out of [0,360)", i, c.Xan, c.Yan)
		}
	}
	if c.Xan != float64((10+n)%360) {
		t.Fatalf("Xan = %v, want %d", c.Xan, (10+n)%360)
	}
	if c.Yan != float64((355+n)%360) {
		t.Fatalf("Yan = %v, want %d", c.Yan, (355+n)%360)
	}
}

func TestDragAccumulation(t *testing.T) {
	c := NewOrientationController(0.5, 1)

	if changed := c.Update(touch.Point{X: 10, Y: 10}, true); !changed {
		t.Fatalf("first touch should report a state change")
	}
	if c.Xan != 0 || c.Yan != 0 {
		t.Fatalf("anchor tick moved angles to (%v,%v)", c.Xan, c.Yan)
	}
	if c.State() != Dragging {
		t.Fatalf("state = %v, want %v", c.State(), Dragging)
	}

	c.Update(touch.Point{X: 15, Y: 12}, true)
	if c.Xan != 2.5 || c.Yan != 1.0 {
		t.Fatalf("after second sample angles = (%v,%v), want (2.5,1)", c.Xan, c.Yan)
	}

	c.Update(touch.Point{X: 20, Y: 8}, true)
	if c.Xan != 5.0 || c.Yan != -1.0 {
		t.Fatalf("after third sample angles = (%v,%v), want (5,-1)", c.Xan, c.Yan)
	}
}

func TestDragDoesNotWrap(t *testing.T) {
	c := NewOrientationController(1, 1)
	c.Xan = 350
	c.Update(touch.Point{X: 0, Y: 0}, true)
	c.Update(touch.Point{X: 30, Y: -400}, true)
	if c.Xan != 380 || c.Yan != -400 {
		t.Fatalf("drag angles = (%v,%v), want (380,-400)", c.Xan, c.Yan)
	}

	// Release: auto-rotation resumes from the dragged angle and wraps.
	if changed := c.Update(touch.Point{}, false); !changed {
		t.Fatalf("release should report a state change")
	}
	if c.Xan != 21 || c.Yan != 321 {
		t.Fatalf("after release angles = (%v,%v), want (21,321)", c.Xan, c.Yan)
	}
}

func TestNewDragReanchors(t *testing.T) {
	c := NewOrientationController(0.5, 1)
	c.Update(touch.Point{X: 100, Y: 100}, true)
	c.Update(touch.Point{X: 110, Y: 100}, true)
	c.Update(touch.Point{}, false)
	x, y := c.Xan, c.Yan

	// A new press far away must not produce a jump.
	c.Update(touch.Point{X: 900, Y: 900}, true)
	if c.Xan != x || c.Yan != y {
		t.Fatalf("re-anchor moved angles from (%v,%v) to (%v,%v)", x, y, c.Xan, c.Yan)
	}
}

func TestOrientationReset(t *testing.T) {
	c := NewOrientationController(0.5, 1)
	c.Update(touch.Point{X: 1, Y: 1}, true)
	c.Rotate(12, 34)
	c.Reset()
	if c.Xan != 0 || c.Yan != 0 || c.State() != DragIdle {
		t.Fatalf("after Reset: (%v,%v,%v)", c.Xan, c.Yan, c.State())
	}
}
