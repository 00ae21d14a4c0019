package wire3d

import (
	"image/color"

	"tinygo.org/x/drivers/touch"
)

type segment struct {
	x0, y0, x1, y1 int
	c              color.RGBA
}

type recordingSurface struct {
	segs []segment
}

func (s *recordingSurface) DrawSegment(x0, y0, x1, y1 int, c color.RGBA) {
	s.segs = append(s.segs, segment{x0, y0, x1, y1, c})
}

func (s *recordingSurface) reset() { s.segs = s.segs[:0] }

// scriptedTouch replays one entry per Poll; nil entries mean "not touched".
type scriptedTouch struct {
	samples []*touch.Point
	i       int
}

func (t *scriptedTouch) Poll() (touch.Point, bool) {
	if t.i >= len(t.samples) {
		return touch.Point{}, false
	}
	p := t.samples[t.i]
	t.i++
	if p == nil {
		return touch.Point{}, false
	}
	return *p, true
}

func pt(x, y int) *touch.Point { return &touch.Point{X: x, Y: y} }
