package wire3d

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers/touch"
)

func newTestSession(t *testing.T, m *Model) *Session {
	t.Helper()
	s, err := NewSession(m, Options{Width: 480, Height: 320})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionReferenceTick(t *testing.T) {
	s := newTestSession(t, Cube(50))
	surf := &recordingSurface{}

	info := s.Tick(nil, surf)
	if info.Xan != 1 || info.Yan != 1 {
		t.Fatalf("angles = (%v,%v), want (1,1)", info.Xan, info.Yan)
	}
	if info.Zoff != 548 {
		t.Fatalf("Zoff = %d, want 548", info.Zoff)
	}
	if info.Updated != 12 || info.Retained != 0 {
		t.Fatalf("updated/retained = %d/%d, want 12/0", info.Updated, info.Retained)
	}
	if info.Erased != 0 || info.Drawn != 12 {
		t.Fatalf("first frame stats = %+v, want 0 erased 12 drawn", info.FrameStats)
	}
	if info.State != DragIdle || info.Frame != 1 {
		t.Fatalf("info = %+v", info)
	}
	if s.matrix != BuildRotation(1, 1) {
		t.Fatalf("session matrix does not match BuildRotation(1,1)")
	}
}

func TestSessionGenerationsStayCorrelated(t *testing.T) {
	s := newTestSession(t, Cube(50))
	surf := &recordingSurface{}
	src := &scriptedTouch{samples: []*touch.Point{nil, pt(10, 10), pt(40, 30), pt(90, -20), nil, nil}}

	for tick := 0; tick < 300; tick++ {
		surf.reset()
		info := s.Tick(src, surf)

		b := s.Renderer().Buffers()
		if len(b.Previous()) != s.Model().Len() || len(b.Current()) != s.Model().Len() {
			t.Fatalf("tick %d: buffer lengths %d/%d, model %d",
				tick, len(b.Previous()), len(b.Current()), s.Model().Len())
		}
		if tick > 0 && info.Erased != 12 {
			t.Fatalf("tick %d: erased %d, want 12", tick, info.Erased)
		}
		// Every erase must match the draw of the same index one frame earlier.
		if tick > 0 {
			for i := 0; i < 12; i++ {
				erase := surf.segs[i]
				if erase.c != s.Renderer().Palette.Background {
					t.Fatalf("tick %d: segment %d is not an erase", tick, i)
				}
			}
		}
	}
}

func TestSessionEraseMatchesPreviousDraw(t *testing.T) {
	s := newTestSession(t, Cube(50))
	first := &recordingSurface{}
	s.Tick(nil, first)

	second := &recordingSurface{}
	s.Tick(nil, second)
	for i := 0; i < 12; i++ {
		d, e := first.segs[i], second.segs[i]
		if d.x0 != e.x0 || d.y0 != e.y0 || d.x1 != e.x1 || d.y1 != e.y1 {
			t.Fatalf("edge %d: erased %+v, drawn %+v", i, e, d)
		}
	}
}

func TestSessionDragTransitions(t *testing.T) {
	s := newTestSession(t, Cube(50))
	src := &scriptedTouch{samples: []*touch.Point{pt(10, 10), pt(15, 12), pt(20, 8), nil}}

	info := s.Tick(src, nil)
	if !info.Transition || info.State != Dragging {
		t.Fatalf("press: %+v", info)
	}
	if info.Xan != 0 || info.Yan != 0 {
		t.Fatalf("press moved angles to (%v,%v)", info.Xan, info.Yan)
	}
	s.Tick(src, nil)
	info = s.Tick(src, nil)
	if info.Xan != 5 || info.Yan != -1 || info.Transition {
		t.Fatalf("drag: %+v", info)
	}
	info = s.Tick(src, nil)
	if !info.Transition || info.State != DragIdle || info.Xan != 6 || info.Yan != 0 {
		t.Fatalf("release: %+v", info)
	}
}

func TestSessionRetainsEdgesNearCamera(t *testing.T) {
	s, err := NewSession(Cube(50), Options{
		Width:    480,
		Height:   320,
		AutoStep: 360, // identity orientation every tick
		Zoff:     600,
		ZoomInc:  -20,
		ZoomMin:  40,
		ZoomMax:  600,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var last FrameInfo
	var prev []Edge2D
	for i := 0; i < 40; i++ {
		prev = append(prev[:0], s.Renderer().Buffers().Previous()...)
		last = s.Tick(nil, &recordingSurface{})
		if last.Zoff == 40 {
			break
		}
	}
	if last.Zoff != 40 {
		t.Fatalf("Zoff = %d, want 40", last.Zoff)
	}
	if last.Updated != 4 || last.Retained != 8 {
		t.Fatalf("updated/retained = %d/%d, want 4/8", last.Updated, last.Retained)
	}
	cur := s.Renderer().Buffers().Previous()
	for i := range cur {
		back := i >= 4 && i < 8
		if !back && cur[i] != prev[i] {
			t.Fatalf("gated edge %d changed from %+v to %+v", i, prev[i], cur[i])
		}
	}
}

func TestSessionSetModel(t *testing.T) {
	s := newTestSession(t, Cube(50))
	s.Tick(nil, &recordingSurface{})

	surf := &recordingSurface{}
	if err := s.SetModel(Tetrahedron(50), surf); err != nil {
		t.Fatalf("SetModel: %v", err)
	}
	if len(surf.segs) != 12 {
		t.Fatalf("SetModel erased %d segments, want 12", len(surf.segs))
	}

	surf.reset()
	info := s.Tick(nil, surf)
	if info.Erased != 0 || info.Drawn != 6 {
		t.Fatalf("first tetrahedron frame = %+v, want 0 erased 6 drawn", info.FrameStats)
	}
	if err := s.SetModel(nil, surf); !errors.Is(err, ErrEmptyModel) {
		t.Fatalf("SetModel(nil) err = %v, want ErrEmptyModel", err)
	}
}

func TestNewSessionValidation(t *testing.T) {
	if _, err := NewSession(nil, Options{Width: 1, Height: 1}); !errors.Is(err, ErrEmptyModel) {
		t.Fatalf("nil model err = %v", err)
	}
	if _, err := NewSession(Cube(50), Options{}); err == nil {
		t.Fatalf("zero screen size accepted")
	}
	if _, err := NewSession(Cube(50), Options{Width: 10, Height: 10, ZoomInc: 1, ZoomMin: 500, ZoomMax: 100}); err == nil {
		t.Fatalf("inverted zoom range accepted")
	}
}
