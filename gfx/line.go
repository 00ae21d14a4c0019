package gfx

import "math"

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

func outcode(x, y, xmax, ymax float64) int {
	code := 0
	if x < 0 {
		code |= outLeft
	} else if x > xmax {
		code |= outRight
	}
	if y < 0 {
		code |= outTop
	} else if y > ymax {
		code |= outBottom
	}
	return code
}

// clipSegment clips to [0,xmax]x[0,ymax] (Cohen–Sutherland). Segments already
// inside are returned untouched so on-screen lines rasterize exactly as given.
func clipSegment(x0, y0, x1, y1, xmax, ymax int) (int, int, int, int, bool) {
	fx0, fy0, fx1, fy1 := float64(x0), float64(y0), float64(x1), float64(y1)
	fxm, fym := float64(xmax), float64(ymax)

	c0 := outcode(fx0, fy0, fxm, fym)
	c1 := outcode(fx1, fy1, fxm, fym)
	if c0|c1 == 0 {
		return x0, y0, x1, y1, true
	}

	for i := 0; i < 8; i++ {
		if c0|c1 == 0 {
			return iround(fx0), iround(fy0), iround(fx1), iround(fy1), true
		}
		if c0&c1 != 0 {
			return 0, 0, 0, 0, false
		}
		out := c0
		if out == 0 {
			out = c1
		}

		var x, y float64
		switch {
		case out&outTop != 0:
			x = fx0 + (fx1-fx0)*(0-fy0)/(fy1-fy0)
			y = 0
		case out&outBottom != 0:
			x = fx0 + (fx1-fx0)*(fym-fy0)/(fy1-fy0)
			y = fym
		case out&outRight != 0:
			y = fy0 + (fy1-fy0)*(fxm-fx0)/(fx1-fx0)
			x = fxm
		default:
			y = fy0 + (fy1-fy0)*(0-fx0)/(fx1-fx0)
			x = 0
		}

		if out == c0 {
			fx0, fy0 = x, y
			c0 = outcode(fx0, fy0, fxm, fym)
		} else {
			fx1, fy1 = x, y
			c1 = outcode(fx1, fy1, fxm, fym)
		}
	}
	return 0, 0, 0, 0, false
}

func iround(f float64) int {
	return int(math.Round(math.Max(-1<<20, math.Min(1<<20, f))))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
