package wire3d

import (
	"math"

	"tinygo.org/x/drivers/touch"
)

// DragState is the touch state of an OrientationController.
type DragState uint8

const (
	DragIdle DragState = iota
	Dragging
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case Dragging:
		return "drag"
	default:
		return "unknown"
	}
}

const (
	DefaultSensitivity = 0.5
	DefaultAutoStep    = 1.0
)

// OrientationController turns touch drags or elapsed ticks into two rotation
// angles in degrees.
//
// While a drag is held the angles follow the finger and are not wrapped. When no
// touch is present the angles advance by AutoStep and wrap into [0,360). Releasing
// a drag carries no momentum.
type OrientationController struct {
	Xan, Yan float64

	Sensitivity float64
	AutoStep    float64

	state DragState
	lastX int
	lastY int
}

func NewOrientationController(sensitivity, autoStep float64) *OrientationController {
	return &OrientationController{Sensitivity: sensitivity, AutoStep: autoStep}
}

func (c *OrientationController) State() DragState { return c.state }

// Update applies one tick of input. It reports whether the drag state changed.
func (c *OrientationController) Update(p touch.Point, touched bool) bool {
	prev := c.state
	if !touched {
		c.state = DragIdle
		c.Xan = wrapDegrees(c.Xan + c.AutoStep)
		c.Yan = wrapDegrees(c.Yan + c.AutoStep)
		return prev != c.state
	}

	if c.state == DragIdle {
		// Anchor only; the first sample of a drag never moves the model.
		c.state = Dragging
		c.lastX, c.lastY = p.X, p.Y
		return true
	}

	dx := p.X - c.lastX
	dy := p.Y - c.lastY
	c.Xan += float64(dx) * c.Sensitivity
	c.Yan += float64(dy) * c.Sensitivity
	c.lastX, c.lastY = p.X, p.Y
	return false
}

// Rotate adds raw angle deltas without touching the drag state.
func (c *OrientationController) Rotate(dXan, dYan float64) {
	c.Xan += dXan
	c.Yan += dYan
}

// Reset zeroes both angles and drops any drag in progress.
func (c *OrientationController) Reset() {
	c.Xan, c.Yan = 0, 0
	c.state = DragIdle
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
