package wire3d

import (
	"fmt"

	"tinygo.org/x/drivers/touch"
)

// TouchSource is the touch collaborator. Poll must not block.
type TouchSource interface {
	Poll() (touch.Point, bool)
}

// Options configures a Session. Zero fields take the reference values.
type Options struct {
	Width, Height int

	Sensitivity float64
	AutoStep    float64

	// Zoom overrides; a zero ZoomInc keeps the reference zoom settings.
	Zoff    int
	ZoomInc int
	ZoomMin int
	ZoomMax int

	Palette *Palette
}

// FrameInfo describes one completed tick.
type FrameInfo struct {
	Frame      uint64
	State      DragState
	Transition bool
	Xan, Yan   float64
	Zoff       int

	Updated  int
	Retained int
	FrameStats
}

// Session is the per-display render state: model, orientation, camera and the
// two projected-edge generations. It is owned by a single loop.
type Session struct {
	model  *Model
	orient *OrientationController
	cam    Camera
	rend   *Renderer
	matrix RotationMatrix
	frame  uint64
}

func NewSession(m *Model, opts Options) (*Session, error) {
	if m == nil || m.Len() == 0 {
		return nil, ErrEmptyModel
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("wire3d: invalid screen size %dx%d", opts.Width, opts.Height)
	}

	sens := opts.Sensitivity
	if sens == 0 {
		sens = DefaultSensitivity
	}
	auto := opts.AutoStep
	if auto == 0 {
		auto = DefaultAutoStep
	}

	cam := NewCamera(opts.Width, opts.Height)
	if opts.ZoomInc != 0 {
		cam.Zoff = opts.Zoff
		cam.Inc = opts.ZoomInc
		cam.ZMin = opts.ZoomMin
		cam.ZMax = opts.ZoomMax
		if cam.ZMin >= cam.ZMax {
			return nil, fmt.Errorf("wire3d: invalid zoom range [%d,%d]", cam.ZMin, cam.ZMax)
		}
	}

	pal := DefaultPalette()
	if opts.Palette != nil {
		pal = *opts.Palette
	}

	s := &Session{
		model:  m,
		orient: NewOrientationController(sens, auto),
		cam:    cam,
		rend:   NewRenderer(m.Len(), pal),
	}
	if err := s.checkLen(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) checkLen() error {
	b := s.rend.Buffers()
	if len(b.Previous()) != s.model.Len() || len(b.Current()) != s.model.Len() {
		return fmt.Errorf("model %s has %d edges, buffers %d/%d: %w",
			s.model.Name(), s.model.Len(), len(b.Previous()), len(b.Current()), ErrEdgeCount)
	}
	return nil
}

func (s *Session) Model() *Model                       { return s.model }
func (s *Session) Orientation() *OrientationController { return s.orient }
func (s *Session) Renderer() *Renderer                 { return s.rend }

// Tick runs one frame: input, orientation, matrix, zoom, projection, redraw.
// A nil src behaves as "no touch".
func (s *Session) Tick(src TouchSource, dst Surface) FrameInfo {
	var p touch.Point
	var touched bool
	if src != nil {
		p, touched = src.Poll()
	}
	changed := s.orient.Update(p, touched)

	s.matrix = BuildRotation(s.orient.Xan, s.orient.Yan)
	s.cam.StepZoom()

	cur := s.rend.Next()
	updated, err := Project(cur, s.model.edges, s.matrix, s.cam)
	if err != nil {
		// Buffers are sized from the model in NewSession and SetModel.
		panic(err)
	}

	st := s.rend.Render(dst)
	s.frame++

	return FrameInfo{
		Frame:      s.frame,
		State:      s.orient.State(),
		Transition: changed,
		Xan:        s.orient.Xan,
		Yan:        s.orient.Yan,
		Zoff:       s.cam.Zoff,
		Updated:    updated,
		Retained:   s.model.Len() - updated,
		FrameStats: st,
	}
}

// SetModel swaps the model, erasing the last drawn frame from dst and resetting
// both projected generations to the new edge count.
func (s *Session) SetModel(m *Model, dst Surface) error {
	if m == nil || m.Len() == 0 {
		return ErrEmptyModel
	}
	s.rend.Reset(dst, m.Len())
	s.model = m
	return s.checkLen()
}
