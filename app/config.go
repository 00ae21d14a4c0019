package app

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"wirecube/hal"
	"wirecube/wire3d"
)

var ErrInvalidConfig = errors.New("invalid config")

// ZoomConfig drives the camera-distance oscillation.
type ZoomConfig struct {
	Start int `yaml:"start"`
	Step  int `yaml:"step"`
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
}

// PaletteConfig holds #rrggbb colors: the background (used for erasing) and the
// three edge-group colors.
type PaletteConfig struct {
	Background string   `yaml:"background"`
	Groups     []string `yaml:"groups"`
}

// TouchConfig enables mapping raw controller samples onto screen pixels before
// they reach the orientation controller.
type TouchConfig struct {
	Calibrate bool `yaml:"calibrate"`
	MinX      int  `yaml:"min_x"`
	MaxX      int  `yaml:"max_x"`
	MinY      int  `yaml:"min_y"`
	MaxY      int  `yaml:"max_y"`
	InvertX   bool `yaml:"invert_x"`
	InvertY   bool `yaml:"invert_y"`
}

type Config struct {
	Model       string        `yaml:"model"`
	Sensitivity float64       `yaml:"sensitivity"`
	AutoStep    float64       `yaml:"auto_step"`
	FrameTicks  uint64        `yaml:"frame_ticks"`
	Zoom        ZoomConfig    `yaml:"zoom"`
	Palette     PaletteConfig `yaml:"palette"`
	HUD         bool          `yaml:"hud"`
	Touch       TouchConfig   `yaml:"touch"`
}

// DefaultConfig returns the reference demo: a cube, half-degree-per-pixel drag,
// one degree of auto-rotation and a 14 ms frame.
func DefaultConfig() Config {
	cal := hal.DefaultCalibration(0, 0)
	return Config{
		Model:       "cube",
		Sensitivity: wire3d.DefaultSensitivity,
		AutoStep:    wire3d.DefaultAutoStep,
		FrameTicks:  14,
		Zoom: ZoomConfig{
			Start: wire3d.DefaultZoff,
			Step:  wire3d.DefaultZoomInc,
			Min:   wire3d.DefaultZoomMin,
			Max:   wire3d.DefaultZoomMax,
		},
		Palette: PaletteConfig{
			Background: "#000000",
			Groups:     []string{"#ff0000", "#0000ff", "#00ff00"},
		},
		Touch: TouchConfig{
			MinX:    cal.MinX,
			MaxX:    cal.MaxX,
			MinY:    cal.MinY,
			MaxY:    cal.MaxY,
			InvertX: cal.InvertX,
			InvertY: cal.InvertY,
		},
	}
}

func (c Config) Validate() error {
	if _, err := wire3d.ModelByName(c.Model); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Sensitivity == 0 || !finite(c.Sensitivity) {
		return fmt.Errorf("%w: sensitivity %v", ErrInvalidConfig, c.Sensitivity)
	}
	if c.AutoStep <= 0 || !finite(c.AutoStep) {
		return fmt.Errorf("%w: auto_step %v", ErrInvalidConfig, c.AutoStep)
	}
	if c.FrameTicks == 0 {
		return fmt.Errorf("%w: frame_ticks must be at least 1", ErrInvalidConfig)
	}
	if c.Zoom.Step == 0 {
		return fmt.Errorf("%w: zoom step must be non-zero", ErrInvalidConfig)
	}
	if c.Zoom.Min >= c.Zoom.Max {
		return fmt.Errorf("%w: zoom range [%d,%d]", ErrInvalidConfig, c.Zoom.Min, c.Zoom.Max)
	}
	if _, err := c.Palette.parse(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Touch.Calibrate && (c.Touch.MinX == c.Touch.MaxX || c.Touch.MinY == c.Touch.MaxY) {
		return fmt.Errorf("%w: touch calibration range is empty", ErrInvalidConfig)
	}
	return nil
}

// SessionOptions converts the config for a w x h display.
func (c Config) SessionOptions(w, h int) (wire3d.Options, error) {
	pal, err := c.Palette.parse()
	if err != nil {
		return wire3d.Options{}, err
	}
	return wire3d.Options{
		Width:       w,
		Height:      h,
		Sensitivity: c.Sensitivity,
		AutoStep:    c.AutoStep,
		Zoff:        c.Zoom.Start,
		ZoomInc:     c.Zoom.Step,
		ZoomMin:     c.Zoom.Min,
		ZoomMax:     c.Zoom.Max,
		Palette:     &pal,
	}, nil
}

func (c Config) Calibration(w, h int) hal.Calibration {
	return hal.Calibration{
		MinX:    c.Touch.MinX,
		MaxX:    c.Touch.MaxX,
		MinY:    c.Touch.MinY,
		MaxY:    c.Touch.MaxY,
		Width:   w,
		Height:  h,
		InvertX: c.Touch.InvertX,
		InvertY: c.Touch.InvertY,
	}
}

func (p PaletteConfig) parse() (wire3d.Palette, error) {
	var pal wire3d.Palette
	if len(p.Groups) != len(pal.Groups) {
		return pal, fmt.Errorf("palette needs %d group colors, got %d", len(pal.Groups), len(p.Groups))
	}
	bg, err := ParseHexColor(p.Background)
	if err != nil {
		return pal, fmt.Errorf("palette background: %w", err)
	}
	pal.Background = bg
	for i, s := range p.Groups {
		c, err := ParseHexColor(s)
		if err != nil {
			return pal, fmt.Errorf("palette group %d: %w", i, err)
		}
		pal.Groups[i] = c
	}
	return pal, nil
}

// ParseHexColor parses "#rrggbb" (the leading # is optional).
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
