// Command wiredump renders wireframe frames offline and writes them as PNG files.
//
//	wiredump -model octahedron -frames 120 -every 10 -out frames/
//	wiredump -frames 60 -drag 10:40 -dx 4 -dy -2
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"wirecube/app"
	"wirecube/gfx"
	"wirecube/wire3d"

	"github.com/schollz/progressbar/v3"
	"tinygo.org/x/drivers/touch"
)

type dumpOptions struct {
	cfg      app.Config
	width    int
	height   int
	frames   int
	every    int
	outDir   string
	xan, yan float64
	drag     dragScript
	progress io.Writer
}

type dumpResult struct {
	files  []string
	erased int
	drawn  int
}

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML config file (defaults when empty).")
		model   = flag.String("model", "", "Override the configured model: "+strings.Join(wire3d.ModelNames(), "|")+".")
		size    = flag.String("size", "480x320", "Frame size WxH.")
		frames  = flag.Int("frames", 60, "Frames to render.")
		every   = flag.Int("every", 10, "Write every Nth frame (the last frame is always written).")
		outDir  = flag.String("out", "frames", "Output directory.")
		xan     = flag.Float64("xan", 0, "Initial X angle in degrees.")
		yan     = flag.Float64("yan", 0, "Initial Y angle in degrees.")
		drag    = flag.String("drag", "", "Touch held over frames FROM:TO (1-based, inclusive).")
		dx      = flag.Int("dx", 4, "Drag movement per frame along X.")
		dy      = flag.Int("dy", 0, "Drag movement per frame along Y.")
		quiet   = flag.Bool("q", false, "No progress bar.")
	)
	flag.Parse()

	opts := dumpOptions{
		cfg:      app.DefaultConfig(),
		frames:   *frames,
		every:    *every,
		outDir:   *outDir,
		xan:      *xan,
		yan:      *yan,
		progress: os.Stderr,
	}
	if *quiet {
		opts.progress = io.Discard
	}

	if *cfgPath != "" {
		cfg, err := app.LoadConfigFile(*cfgPath)
		if err != nil {
			fatalf("%v", err)
		}
		opts.cfg = cfg
	}
	if *model != "" {
		opts.cfg.Model = *model
	}

	var err error
	if opts.width, opts.height, err = parseSize(*size); err != nil {
		fatalf("size: %v", err)
	}
	if *drag != "" {
		from, to, err := parseRange(*drag)
		if err != nil {
			fatalf("drag: %v", err)
		}
		opts.drag = dragScript{from: from, to: to, dx: *dx, dy: *dy, x: opts.width / 2, y: opts.height / 2}
	}

	res, err := dump(opts)
	if err != nil {
		fatalf("wiredump: %v", err)
	}
	fmt.Printf("wiredump: %d frames, %d files in %s, segments erased=%d drawn=%d\n",
		opts.frames, len(res.files), opts.outDir, res.erased, res.drawn)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func dump(opts dumpOptions) (dumpResult, error) {
	var res dumpResult
	if opts.frames <= 0 {
		return res, fmt.Errorf("frames must be positive, got %d", opts.frames)
	}
	if opts.every <= 0 {
		opts.every = 1
	}
	if err := opts.cfg.Validate(); err != nil {
		return res, err
	}

	m, err := wire3d.ModelByName(opts.cfg.Model)
	if err != nil {
		return res, err
	}
	sopts, err := opts.cfg.SessionOptions(opts.width, opts.height)
	if err != nil {
		return res, err
	}
	sess, err := wire3d.NewSession(m, sopts)
	if err != nil {
		return res, err
	}
	sess.Orientation().Rotate(opts.xan, opts.yan)

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return res, err
	}

	tgt := gfx.NewRGB565Target(make([]byte, opts.width*opts.height*2), opts.width*2, opts.width, opts.height)
	tgt.Clear(sopts.Palette.Background)

	w := opts.progress
	if w == nil {
		w = io.Discard
	}
	bar := progressbar.NewOptions(opts.frames,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(m.Name()),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	drag := opts.drag
	for n := 1; n <= opts.frames; n++ {
		drag.frame = n
		info := sess.Tick(&drag, tgt)
		res.erased += info.Erased
		res.drawn += info.Drawn

		if n%opts.every == 0 || n == opts.frames {
			path := filepath.Join(opts.outDir, fmt.Sprintf("%s_%04d.png", m.Name(), n))
			if err := writePNG(path, tgt); err != nil {
				return res, err
			}
			res.files = append(res.files, path)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return res, nil
}

func writePNG(path string, tgt *gfx.RGB565Target) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, tgt.RGBA()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// dragScript holds the touch down over frames [from,to], moving (dx,dy) each frame.
type dragScript struct {
	from, to int
	dx, dy   int
	x, y     int
	frame    int
}

func (d *dragScript) Poll() (touch.Point, bool) {
	if d.from <= 0 || d.frame < d.from || d.frame > d.to {
		return touch.Point{}, false
	}
	k := d.frame - d.from
	return touch.Point{X: d.x + k*d.dx, Y: d.y + k*d.dy, Z: 1}, true
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %dx%d", w, h)
	}
	return w, h, nil
}

func parseRange(s string) (int, int, error) {
	as, bs, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("want FROM:TO, got %q", s)
	}
	a, err := strconv.Atoi(as)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(bs)
	if err != nil {
		return 0, 0, err
	}
	if a <= 0 || b < a {
		return 0, 0, fmt.Errorf("bad frame range %d:%d", a, b)
	}
	return a, b, nil
}
