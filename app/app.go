package app

import (
	"errors"
	"fmt"
	"image/color"
	"runtime/debug"

	"wirecube/gfx"
	"wirecube/hal"
	"wirecube/internal/buildinfo"
	"wirecube/wire3d"

	"tinygo.org/x/tinyfont"
)

var (
	ErrHalted      = errors.New("app halted")
	ErrNoDisplay   = errors.New("no display")
	ErrPixelFormat = errors.New("unsupported pixel format")
)

// maxFramesPerStep bounds catch-up rendering when the loop falls behind.
const maxFramesPerStep = 4

const hudHeight = 8

// App drives one wire3d session on a HAL: it paces frames off the tick stream,
// feeds touch samples in, and presents only the region each frame touched.
type App struct {
	h     hal.HAL
	cfg   Config
	log   hal.Logger
	fb    hal.Framebuffer
	tgt   *gfx.RGB565Target
	sess  *wire3d.Session
	touch wire3d.TouchSource
	keys  <-chan hal.KeyEvent
	ticks <-chan uint64

	now  uint64 // latest tick seen
	last uint64 // tick of the last rendered frame

	models   []string
	modelIdx int

	hud       bool
	hudText   string
	presentOK bool
	halted    bool
}

func New(h hal.HAL, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, ErrNoDisplay
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("%w: %d", ErrPixelFormat, fb.Format())
	}

	m, err := wire3d.ModelByName(cfg.Model)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.SessionOptions(fb.Width(), fb.Height())
	if err != nil {
		return nil, err
	}
	sess, err := wire3d.NewSession(m, opts)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	a := &App{
		h:         h,
		cfg:       cfg,
		log:       h.Logger(),
		fb:        fb,
		tgt:       gfx.NewRGB565Target(fb.Buffer(), fb.StrideBytes(), fb.Width(), fb.Height()),
		sess:      sess,
		models:    wire3d.ModelNames(),
		hud:       cfg.HUD,
		presentOK: true,
	}
	for i, name := range a.models {
		if name == m.Name() {
			a.modelIdx = i
		}
	}

	if in := h.Input(); in != nil {
		if kb := in.Keyboard(); kb != nil {
			a.keys = kb.Events()
		}
		if tp := in.Touch(); tp != nil {
			if cfg.Touch.Calibrate {
				a.touch = hal.CalibratedTouch{Touch: tp, Cal: cfg.Calibration(fb.Width(), fb.Height())}
			} else {
				a.touch = tp
			}
		}
	}
	if t := h.Time(); t != nil {
		a.ticks = t.Ticks()
	}

	a.tgt.Clear(a.palette().Background)
	a.present()

	a.logf("wirecube: model=%s edges=%d screen=%dx%d frame=%dms build=%s",
		m.Name(), m.Len(), fb.Width(), fb.Height(), cfg.FrameTicks, buildinfo.Short())
	return a, nil
}

// NewStep builds an App for the host runners. Construction errors surface from
// the first step.
func NewStep(h hal.HAL, cfg Config) func() error {
	a, err := New(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("wirecube: " + err.Error())
		}
		return func() error { return err }
	}
	return a.Step
}

// Run drives the app from the tick stream and never returns (TinyGo/native entrypoint).
func Run(h hal.HAL, cfg Config) {
	a, err := New(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("wirecube: " + err.Error())
		}
		select {}
	}
	if err := a.Loop(); err != nil {
		a.logf("wirecube: %v", err)
	}
	select {}
}

// Loop blocks on the tick stream, stepping after every tick received.
func (a *App) Loop() error {
	if a.ticks == nil {
		return errors.New("no tick source")
	}
	for seq := range a.ticks {
		a.now = seq
		if err := a.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step consumes pending input and ticks, renders every frame that came due and
// presents the union of what changed. A panic paints the panic screen and halts
// the app; later calls return ErrHalted.
func (a *App) Step() (err error) {
	if a.halted {
		return ErrHalted
	}
	defer func() {
		if r := recover(); r != nil {
			a.halted = true
			a.panicScreen(r, debug.Stack())
			err = fmt.Errorf("%w: %v", ErrHalted, r)
		}
	}()

	a.drainKeys()
	a.drainTicks()

	due := (a.now - a.last) / a.cfg.FrameTicks
	if due == 0 {
		return nil
	}
	a.last += due * a.cfg.FrameTicks

	for i := uint64(0); i < min(due, maxFramesPerStep); i++ {
		a.frame()
	}
	a.present()
	return nil
}

func (a *App) frame() {
	info := a.sess.Tick(a.touch, a.tgt)
	if info.Transition {
		if info.State == wire3d.Dragging {
			a.ledHigh()
			a.logf("touch: drag start xan=%.1f yan=%.1f", info.Xan, info.Yan)
		} else {
			a.ledLow()
			a.logf("touch: drag end xan=%.1f yan=%.1f", info.Xan, info.Yan)
		}
	}
	if a.hud {
		a.drawHUD(info)
	}
}

func (a *App) present() {
	r := a.tgt.Dirty()
	if r.Empty() {
		return
	}
	a.tgt.ResetDirty()
	if err := a.fb.PresentRegion(r); err != nil && a.presentOK {
		// Logged once; the panel may simply be absent.
		a.presentOK = false
		a.logf("hal: present %v: %v", r, err)
	}
}

func (a *App) drainTicks() {
	for a.ticks != nil {
		select {
		case seq, ok := <-a.ticks:
			if !ok {
				a.ticks = nil
				return
			}
			a.now = seq
		default:
			return
		}
	}
}

func (a *App) drainKeys() {
	for a.keys != nil {
		select {
		case ev, ok := <-a.keys:
			if !ok {
				a.keys = nil
				return
			}
			if ev.Press {
				a.handleKey(ev.Code)
			}
		default:
			return
		}
	}
}

func (a *App) handleKey(code hal.KeyCode) {
	switch code {
	case hal.KeyTab:
		if err := a.NextModel(); err != nil {
			a.logf("wirecube: %v", err)
		}
	case hal.KeyEnter:
		a.sess.Orientation().Reset()
		a.logf("wirecube: orientation reset")
	case hal.KeyEscape:
		a.hud = !a.hud
		if !a.hud {
			a.clearHUD()
		}
	}
}

// NextModel switches to the next built-in model, erasing the current one.
func (a *App) NextModel() error {
	if len(a.models) == 0 {
		return wire3d.ErrUnknownModel
	}
	idx := (a.modelIdx + 1) % len(a.models)
	m, err := wire3d.ModelByName(a.models[idx])
	if err != nil {
		return err
	}
	if err := a.sess.SetModel(m, a.tgt); err != nil {
		return fmt.Errorf("switch to %s: %w", m.Name(), err)
	}
	a.modelIdx = idx
	a.logf("wirecube: model=%s edges=%d", m.Name(), m.Len())
	return nil
}

func (a *App) drawHUD(info wire3d.FrameInfo) {
	text := fmt.Sprintf("%s x=%.0f y=%.0f z=%d %s",
		a.sess.Model().Name(), info.Xan, info.Yan, info.Zoff, info.State)
	if text != a.hudText {
		a.clearHUD()
		a.hudText = text
	}
	// Edge erases may cross the band, so the text is repainted every frame.
	tinyfont.WriteLine(a.tgt, &tinyfont.TomThumb, 2, hudHeight-2, text, color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF})
}

func (a *App) clearHUD() {
	a.hudText = ""
	_ = a.tgt.FillRectangle(0, 0, int16(a.tgt.W), hudHeight, a.palette().Background)
}

func (a *App) palette() wire3d.Palette {
	return a.sess.Renderer().Palette
}

func (a *App) ledHigh() {
	if led := a.h.LED(); led != nil {
		led.High()
	}
}

func (a *App) ledLow() {
	if led := a.h.LED(); led != nil {
		led.Low()
	}
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}
