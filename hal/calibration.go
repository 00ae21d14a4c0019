package hal

import "tinygo.org/x/drivers/touch"

// Calibration maps raw resistive-touch samples onto screen pixels.
//
// Raw values between Min and Max scale linearly onto [0,Width) and [0,Height).
// Inverted axes map Min to the far edge, which is what a panel mounted in
// landscape with a portrait controller reports.
type Calibration struct {
	MinX, MaxX int
	MinY, MaxY int
	Width      int
	Height     int
	InvertX    bool
	InvertY    bool
}

// DefaultCalibration returns the bounds measured on the reference 480x320 panel.
func DefaultCalibration(width, height int) Calibration {
	return Calibration{
		MinX:    300,
		MaxX:    3800,
		MinY:    300,
		MaxY:    3800,
		Width:   width,
		Height:  height,
		InvertX: true,
		InvertY: true,
	}
}

// Map converts p to screen space, clamped to the screen. Pressure passes through.
func (c Calibration) Map(p touch.Point) touch.Point {
	return touch.Point{
		X: scaleAxis(p.X, c.MinX, c.MaxX, c.Width, c.InvertX),
		Y: scaleAxis(p.Y, c.MinY, c.MaxY, c.Height, c.InvertY),
		Z: p.Z,
	}
}

func scaleAxis(v, lo, hi, size int, invert bool) int {
	if size <= 0 || hi == lo {
		return v
	}
	out0, out1 := 0, size
	if invert {
		out0, out1 = size, 0
	}
	m := (v-lo)*(out1-out0)/(hi-lo) + out0
	if m < 0 {
		return 0
	}
	if m >= size {
		return size - 1
	}
	return m
}

// CalibratedTouch applies a Calibration to every sample of an underlying Touch.
type CalibratedTouch struct {
	Touch Touch
	Cal   Calibration
}

func (c CalibratedTouch) Poll() (touch.Point, bool) {
	if c.Touch == nil {
		return touch.Point{}, false
	}
	p, ok := c.Touch.Poll()
	if !ok {
		return p, false
	}
	return c.Cal.Map(p), true
}
