package main

import (
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"wirecube/app"
)

func testOptions(t *testing.T) dumpOptions {
	t.Helper()
	return dumpOptions{
		cfg:      app.DefaultConfig(),
		width:    160,
		height:   120,
		frames:   5,
		every:    2,
		outDir:   t.TempDir(),
		progress: io.Discard,
	}
}

func TestDumpWritesSelectedFrames(t *testing.T) {
	opts := testOptions(t)
	res, err := dump(opts)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}

	want := []string{"cube_0002.png", "cube_0004.png", "cube_0005.png"}
	if len(res.files) != len(want) {
		t.Fatalf("files=%v", res.files)
	}
	for i, name := range want {
		if got := filepath.Base(res.files[i]); got != name {
			t.Fatalf("file %d=%s want %s", i, got, name)
		}
	}

	// Frame 1 draws, later frames erase and redraw all 12 edges.
	if res.drawn != 5*12 || res.erased != 4*12 {
		t.Fatalf("drawn,erased=%d,%d want 60,48", res.drawn, res.erased)
	}

	f, err := os.Open(res.files[2])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Fatalf("bounds=%v", b)
	}
}

func TestDumpWithDragScript(t *testing.T) {
	opts := testOptions(t)
	opts.frames = 4
	opts.every = 100
	opts.drag = dragScript{from: 1, to: 3, dx: 10, x: 80, y: 60}

	if _, err := dump(opts); err != nil {
		t.Fatalf("dump: %v", err)
	}

	d := opts.drag
	for frame, want := range map[int]int{1: 80, 2: 90, 3: 100} {
		d.frame = frame
		p, ok := d.Poll()
		if !ok || p.X != want {
			t.Fatalf("frame %d: Poll()=%+v,%v want x=%d", frame, p, ok, want)
		}
	}
	d.frame = 4
	if _, ok := d.Poll(); ok {
		t.Fatalf("touch still held after the range")
	}
}

func TestDumpRejectsBadInput(t *testing.T) {
	opts := testOptions(t)
	opts.frames = 0
	if _, err := dump(opts); err == nil {
		t.Fatalf("zero frames accepted")
	}

	opts = testOptions(t)
	opts.cfg.Model = "dodecahedron"
	if _, err := dump(opts); err == nil {
		t.Fatalf("unknown model accepted")
	}
}

func TestParseSizeAndRange(t *testing.T) {
	if w, h, err := parseSize("480X320"); err != nil || w != 480 || h != 320 {
		t.Fatalf("parseSize=%d,%d,%v", w, h, err)
	}
	for _, bad := range []string{"480", "0x10", "ax2"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Fatalf("parseSize(%q) accepted", bad)
		}
	}
	if a, b, err := parseRange("3:7"); err != nil || a != 3 || b != 7 {
		t.Fatalf("parseRange=%d,%d,%v", a, b, err)
	}
	for _, bad := range []string{"3", "0:4", "5:2", "x:1"} {
		if _, _, err := parseRange(bad); err == nil {
			t.Fatalf("parseRange(%q) accepted", bad)
		}
	}
}
