//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int

	// Snapshot, if set, is a path the final framebuffer is written to as PNG.
	Snapshot string

	Width  int
	Height int

	// Log receives log lines; nil means stdout.
	Log io.Writer
}

// RunHeadless runs the app without opening a window.
//
// Each tick advances the millisecond clock by one period and calls the step
// StepBudget times. The run ends after Ticks ticks (0 means until ctx is done)
// or when the step returns ErrQuit.
func RunHeadless(ctx context.Context, newApp AppFunc, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Width, cfg.Height, cfg.Log)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	err = runHeadlessLoop(ctx, h, step, cfg, d)
	if errors.Is(err, ErrQuit) {
		err = nil
	}
	if err != nil {
		return err
	}
	if cfg.Snapshot != "" {
		if err := writeSnapshot(h.fb, cfg.Snapshot); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	return nil
}

func runHeadlessLoop(ctx context.Context, h *hostHAL, step func() error, cfg HeadlessConfig, d time.Duration) error {
	t := time.NewTicker(d)
	defer t.Stop()

	ms := uint64(d / time.Millisecond)
	if ms == 0 {
		ms = 1
	}

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.advance(ms)
			if step != nil {
				for i := 0; i < cfg.StepBudget; i++ {
					if err := step(); err != nil {
						return err
					}
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	img := fb.snapshotRGBA(nil)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
