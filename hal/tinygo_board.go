//go:build tinygo && baremetal

package hal

import (
	"image"
	"machine"
	"time"

	"tinygo.org/x/drivers/touch"
	"tinygo.org/x/drivers/xpt2046"
)

type boardHAL struct {
	logger *uartLogger
	led    *pinLED
	fb     Framebuffer
	kbd    Keyboard
	touch  Touch
	t      *tinyGoTime
}

// New returns the HAL for a Pico 2 (RP2350) with an ILI9488 480x320 panel and an
// XPT2046 resistive touch controller.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Touch: T_DOUT GP16, T_CS GP17, T_CLK GP18, T_DIN GP19, T_IRQ GP20.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	var fb Framebuffer
	if disp, err := newPanelFramebuffer(); err == nil {
		fb = disp
	} else {
		logger.WriteLineString("hal: display init failed: " + err.Error())
		fb = newStubFramebuffer(panelWidth, panelHeight)
	}

	var tp Touch
	if ts, err := newXPT2046Touch(); err == nil {
		tp = ts
	} else {
		logger.WriteLineString("hal: touch init failed: " + err.Error())
		tp = stubTouch{}
	}

	return &boardHAL{
		logger: logger,
		led:    &pinLED{pin: ledPin},
		fb:     fb,
		kbd:    &stubKeyboard{},
		touch:  tp,
		t:      newTinyGoTime(),
	}
}

func (h *boardHAL) Logger() Logger   { return h.logger }
func (h *boardHAL) LED() LED         { return h.led }
func (h *boardHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *boardHAL) Input() Input     { return tinyGoInput{kbd: h.kbd, touch: h.touch} }
func (h *boardHAL) Time() Time       { return h.t }

type panelFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd *ili9488
}

func (f *panelFramebuffer) Width() int          { return f.w }
func (f *panelFramebuffer) Height() int         { return f.h }
func (f *panelFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *panelFramebuffer) StrideBytes() int    { return f.stride }
func (f *panelFramebuffer) Buffer() []byte      { return f.buf }

func (f *panelFramebuffer) Present() error {
	return f.PresentRegion(image.Rect(0, 0, f.w, f.h))
}

func (f *panelFramebuffer) PresentRegion(r image.Rectangle) error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	r, err := clipRegion(r, f.w, f.h)
	if err != nil || r.Empty() {
		return err
	}
	return f.lcd.blitRegion(f.buf, f.stride, r)
}

func newPanelFramebuffer() (*panelFramebuffer, error) {
	lcd, err := initILI9488()
	if err != nil {
		return nil, err
	}
	return &panelFramebuffer{
		w:      panelWidth,
		h:      panelHeight,
		stride: panelWidth * 2,
		buf:    make([]byte, panelWidth*panelHeight*2),
		lcd:    lcd,
	}, nil
}

// xptTouch samples the controller from a goroutine so Poll never blocks the
// render loop on the bit-banged bus. Samples cross goroutines through a latch.
type xptTouch struct {
	dev   xpt2046.Device
	latch *touchLatch
}

func newXPT2046Touch() (*xptTouch, error) {
	t := &xptTouch{
		dev:   xpt2046.New(machine.GP18, machine.GP17, machine.GP19, machine.GP16, machine.GP20),
		latch: newTouchLatch(),
	}
	if err := t.dev.Configure(&xpt2046.Config{Precision: 4}); err != nil {
		return nil, err
	}
	go func() {
		var last touch.Point
		for {
			if t.dev.Touched() {
				p := t.dev.ReadTouchPoint()
				// A release mid-read averages zero samples.
				if p.X != 0 || p.Y != 0 {
					last = p
					t.latch.publish(p, true)
				}
			} else {
				t.latch.publish(last, false)
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()
	return t, nil
}

func (t *xptTouch) Poll() (touch.Point, bool) { return t.latch.Poll() }
