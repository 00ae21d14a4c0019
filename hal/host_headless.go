//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64 // step count; 0 runs until ctx is done
}

// RunHeadless drives the app without opening a window. Frames are still
// rendered and presented into the in-memory framebuffer.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	return runHeadless(ctx, New().(*hostHAL), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	step := newApp(h)
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				presents, pushed := h.fb.stats()
				h.logger.WriteLineString(fmt.Sprintf("hal: headless done steps=%d presents=%d pixels=%d", tick, presents, pushed))
				return nil
			}
		}
	}
}
