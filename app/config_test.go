package app

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"wirecube/wire3d"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	opts, err := cfg.SessionOptions(480, 320)
	if err != nil {
		t.Fatalf("SessionOptions: %v", err)
	}
	if *opts.Palette != wire3d.DefaultPalette() {
		t.Fatalf("palette=%+v want default", *opts.Palette)
	}
	if opts.Zoff != 550 || opts.ZoomInc != -2 || opts.ZoomMin != 160 || opts.ZoomMax != 500 {
		t.Fatalf("zoom=%d/%d/[%d,%d]", opts.Zoff, opts.ZoomInc, opts.ZoomMin, opts.ZoomMax)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"model", func(c *Config) { c.Model = "sphere" }},
		{"zero sensitivity", func(c *Config) { c.Sensitivity = 0 }},
		{"nan sensitivity", func(c *Config) { c.Sensitivity = math.NaN() }},
		{"auto step", func(c *Config) { c.AutoStep = -1 }},
		{"frame ticks", func(c *Config) { c.FrameTicks = 0 }},
		{"zoom step", func(c *Config) { c.Zoom.Step = 0 }},
		{"zoom range", func(c *Config) { c.Zoom.Min, c.Zoom.Max = 500, 160 }},
		{"palette groups", func(c *Config) { c.Palette.Groups = c.Palette.Groups[:2] }},
		{"palette color", func(c *Config) { c.Palette.Background = "#12345" }},
		{"palette hex", func(c *Config) { c.Palette.Groups = []string{"#ff0000", "#zzzzzz", "#00ff00"} }},
		{"calibration", func(c *Config) { c.Touch.Calibrate, c.Touch.MinX, c.Touch.MaxX = true, 10, 10 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mod(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: err=%v want ErrInvalidConfig", tt.name, err)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 0xFF, A: 0xFF}},
		{"00FF80", color.RGBA{G: 0xFF, B: 0x80, A: 0xFF}},
		{" #102030 ", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseHexColor(%q)=%v,%v want %v", tt.in, got, err, tt.want)
		}
	}
	for _, bad := range []string{"", "#fff", "#gg0000", "#12345678"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("ParseHexColor(%q) accepted", bad)
		}
	}
}
