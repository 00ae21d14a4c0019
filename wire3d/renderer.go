package wire3d

import "image/color"

// Surface is the drawing collaborator. DrawSegment must tolerate coordinates
// outside the visible area.
type Surface interface {
	DrawSegment(x0, y0, x1, y1 int, c color.RGBA)
}

// Palette selects the background and the three edge-group colors.
type Palette struct {
	Background color.RGBA
	Groups     [3]color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{A: 0xFF},
		Groups: [3]color.RGBA{
			{R: 0xFF, A: 0xFF},
			{B: 0xFF, A: 0xFF},
			{G: 0xFF, A: 0xFF},
		},
	}
}

// EdgeColor returns the color of edge i out of n: the first n/3 edges use the
// first group, the next n/3 the second, the rest the third.
func (p Palette) EdgeColor(i, n int) color.RGBA {
	band := n / 3
	switch {
	case i < band:
		return p.Groups[0]
	case i < 2*band:
		return p.Groups[1]
	default:
		return p.Groups[2]
	}
}

// FrameStats counts the segments issued by one Render call.
type FrameStats struct {
	Erased int
	Drawn  int
}

// RenderDiff erases previous in the background color and draws current in the
// palette colors. Invalid entries are skipped.
func RenderDiff(s Surface, pal Palette, previous, current []Edge2D) FrameStats {
	var st FrameStats
	for _, e := range previous {
		if !e.Valid {
			continue
		}
		s.DrawSegment(e.P0.X, e.P0.Y, e.P1.X, e.P1.Y, pal.Background)
		st.Erased++
	}
	n := len(current)
	for i, e := range current {
		if !e.Valid {
			continue
		}
		s.DrawSegment(e.P0.X, e.P0.Y, e.P1.X, e.P1.Y, pal.EdgeColor(i, n))
		st.Drawn++
	}
	return st
}

// EdgeBuffers is the double buffer of projected edges.
type EdgeBuffers struct {
	prev []Edge2D
	cur  []Edge2D
}

func NewEdgeBuffers(n int) *EdgeBuffers {
	return &EdgeBuffers{
		prev: make([]Edge2D, n),
		cur:  make([]Edge2D, n),
	}
}

func (b *EdgeBuffers) Len() int           { return len(b.cur) }
func (b *EdgeBuffers) Previous() []Edge2D { return b.prev }
func (b *EdgeBuffers) Current() []Edge2D  { return b.cur }

// Begin seeds the current generation with the previous one so edges that cannot
// be projected this frame keep their last position.
func (b *EdgeBuffers) Begin() []Edge2D {
	copy(b.cur, b.prev)
	return b.cur
}

// Swap makes the current generation the previous one.
func (b *EdgeBuffers) Swap() {
	b.prev, b.cur = b.cur, b.prev
}

// Reset resizes both generations to n and marks every entry invalid.
func (b *EdgeBuffers) Reset(n int) {
	if cap(b.prev) >= n && cap(b.cur) >= n {
		b.prev = b.prev[:n]
		b.cur = b.cur[:n]
		clear(b.prev)
		clear(b.cur)
		return
	}
	b.prev = make([]Edge2D, n)
	b.cur = make([]Edge2D, n)
}

// Renderer owns the two projected-edge generations and redraws the difference
// between them.
type Renderer struct {
	Palette Palette

	bufs *EdgeBuffers
}

func NewRenderer(n int, pal Palette) *Renderer {
	return &Renderer{Palette: pal, bufs: NewEdgeBuffers(n)}
}

func (r *Renderer) Buffers() *EdgeBuffers { return r.bufs }

// Next starts a frame and returns the generation the projector writes into.
func (r *Renderer) Next() []Edge2D { return r.bufs.Begin() }

// Render draws the frame started by Next and swaps generations. A nil surface
// only swaps.
func (r *Renderer) Render(s Surface) FrameStats {
	var st FrameStats
	if s != nil {
		st = RenderDiff(s, r.Palette, r.bufs.Previous(), r.bufs.Current())
	}
	r.bufs.Swap()
	return st
}

// Reset erases what is on screen and resizes both generations for a model with
// n edges.
func (r *Renderer) Reset(s Surface, n int) {
	if s != nil {
		RenderDiff(s, r.Palette, r.bufs.Previous(), nil)
	}
	r.bufs.Reset(n)
}
