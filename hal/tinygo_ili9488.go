//go:build tinygo && baremetal

package hal

import (
	"errors"
	"image"
	"machine"
	"time"
)

// Panel geometry in landscape (MADCTL MV set).
const (
	panelWidth  = 480
	panelHeight = 320
)

type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte
}

// initILI9488 brings up the panel on SPI1: SCK GP10, SDO GP11, SDI GP12,
// CS GP13, DC GP14, RST GP15.
func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	lcd := &ili9488{
		spi:   *machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		txBuf: make([]byte, 4096),
	}

	lcd.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.cs.High()
	lcd.dc.High()
	lcd.rst.High()

	lcd.reset()
	lcd.init()

	return lcd, nil
}

func (d *ili9488) reset() {
	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)
}

func (d *ili9488) init() {
	d.cmd(0xC0, 0x17, 0x15)             // PWCTRL1
	d.cmd(0xC1, 0x41)                   // PWCTRL2
	d.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL
	d.cmd(0x3A, 0x55)                   // COLMOD 16bpp
	d.cmd(0xB1, 0xA0, 0x11)             // FRMCTRL1
	d.cmd(0xB6, 0x02, 0x02, 0x3B)       // DISCTRL (480 lines)

	// Landscape: row/column exchange, BGR panel order.
	d.cmd(0x36, 0x20|0x08) // MADCTL MV|BGR

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
}

func (d *ili9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ili9488) setWindow(x0, y0, x1, y1 uint16) {
	d.cmd(
		0x2A,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	)
	d.cmd(
		0x2B,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
	d.cmd(0x2C)
}

// blitRegion streams rectangle r of a little-endian RGB565 buffer to the panel.
// Only r's rows and columns cross the bus.
func (d *ili9488) blitRegion(buf []byte, stride int, r image.Rectangle) error {
	if r.Empty() {
		return nil
	}
	if stride <= 0 || len(buf) < (r.Max.Y-1)*stride+r.Max.X*2 {
		return errors.New("invalid framebuffer")
	}

	chunk := d.txBuf
	if len(chunk)%2 != 0 {
		chunk = chunk[:len(chunk)-1]
	}
	if len(chunk) < 2 {
		return errors.New("tx buffer too small")
	}

	d.setWindow(uint16(r.Min.X), uint16(r.Min.Y), uint16(r.Max.X-1), uint16(r.Max.Y-1))

	d.cs.Low()
	d.dc.High()

	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := buf[y*stride+r.Min.X*2 : y*stride+r.Max.X*2]
		for i := 0; i < len(row); i += 2 {
			// Framebuffer is little-endian; the panel wants big-endian.
			chunk[n] = row[i+1]
			chunk[n+1] = row[i]
			n += 2
			if n == len(chunk) {
				d.spi.Tx(chunk, nil)
				n = 0
			}
		}
	}
	if n > 0 {
		d.spi.Tx(chunk[:n], nil)
	}

	d.cs.High()
	return nil
}
