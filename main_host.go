//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"orbs/app"
	"orbs/hal"
	"orbs/internal/buildinfo"
	"orbs/pool"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, runs the viewer and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		cfg      app.Config
		headless hal.HeadlessConfig
		shrink   string
		width    int
		height   int
		version  bool
	)
	fs := flag.NewFlagSet(buildinfo.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Count, "count", app.DefaultCount, "Initial number of spheres.")
	fs.Float64Var(&cfg.Radius, "radius", 1, "Radius of each sphere.")
	fs.Float64Var(&cfg.Distance, "distance", 1, "Radius of the golden spiral the spheres sit on.")
	fs.StringVar(&shrink, "shrink", "front", "Which end of the pool loses spheres when the count drops (front|back).")
	fs.BoolVar(&cfg.HUD, "hud", true, "Draw the status overlay.")
	fs.BoolVar(&cfg.Damping, "damping", false, "Smooth orbit camera motion.")
	fs.IntVar(&width, "width", 640, "Initial window/framebuffer width.")
	fs.IntVar(&height, "height", 480, "Initial window/framebuffer height.")
	fs.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	fs.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	fs.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	fs.StringVar(&headless.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	fs.BoolVar(&version, "version", false, "Print the version and exit.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if version {
		fmt.Fprintln(stdout, buildinfo.String())
		return 0
	}

	policy, ok := pool.ParseShrinkPolicy(shrink)
	if !ok {
		fmt.Fprintf(stderr, "invalid -shrink %q (want front or back)\n", shrink)
		return 2
	}
	cfg.Shrink = policy

	newApp := func(h hal.HAL) (func() error, error) {
		h.Logger().WriteLineString(buildinfo.String())
		return app.New(h, cfg)
	}

	if headless.Enabled {
		headless.Width, headless.Height = width, height
		headless.Log = stdout
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return 0
			}
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{Title: buildinfo.Name, Width: width, Height: height}); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
