//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"wirecube/app"
	"wirecube/hal"
	"wirecube/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var cfgPath, model string
	var hud, version bool
	flag.StringVar(&cfgPath, "config", "", "YAML config file (defaults when empty).")
	flag.StringVar(&model, "model", "", "Override the configured model (cube|octahedron|tetrahedron).")
	flag.BoolVar(&hud, "hud", false, "Show the status line.")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Step rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N steps in headless mode (0 = run forever).")
	flag.BoolVar(&version, "version", false, "Print the build stamp and exit.")
	flag.Parse()

	if version {
		fmt.Println("wirecube " + buildinfo.String())
		return
	}

	appCfg := app.DefaultConfig()
	if cfgPath != "" {
		c, err := app.LoadConfigFile(cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		appCfg = c
	}
	if model != "" {
		appCfg.Model = model
	}
	if hud {
		appCfg.HUD = true
	}
	if err := appCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewStep(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
