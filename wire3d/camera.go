package wire3d

const (
	DefaultZoff    = 550
	DefaultZoomInc = -2
	DefaultZoomMin = 160
	DefaultZoomMax = 500
)

// Camera holds the projection offsets and the oscillating camera distance.
type Camera struct {
	Xoff, Yoff int

	// Zoff is the camera distance. It moves by Inc every frame and bounces
	// between ZMin and ZMax.
	Zoff int
	Inc  int
	ZMin int
	ZMax int
}

// NewCamera centers the projection on a width x height screen with the reference
// zoom settings.
func NewCamera(width, height int) Camera {
	return Camera{
		Xoff: width / 2,
		Yoff: height / 2,
		Zoff: DefaultZoff,
		Inc:  DefaultZoomInc,
		ZMin: DefaultZoomMin,
		ZMax: DefaultZoomMax,
	}
}

// StepZoom advances Zoff by one increment. The increment flips sign at the bound
// it is moving towards and Zoff is held on that bound, so once inside
// [ZMin, ZMax] it never leaves. A start outside the range drifts back in.
func (c *Camera) StepZoom() {
	if c.Inc == 0 {
		return
	}
	step := c.Inc
	if step < 0 {
		step = -step
	}

	c.Zoff += c.Inc
	switch {
	case c.Inc > 0 && c.Zoff > c.ZMax:
		c.Zoff = c.ZMax
		c.Inc = -step
	case c.Inc < 0 && c.Zoff < c.ZMin:
		c.Zoff = c.ZMin
		c.Inc = step
	}
}
