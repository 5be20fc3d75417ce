// Package app is the interactive sphere-of-spheres viewer running on a hal.HAL.
package app

import (
	"errors"
	"fmt"

	"orbs/hal"
	"orbs/palette"
	"orbs/pool"
	"orbs/quarkgl"
	"orbs/viewport"
)

// DefaultCount is the number of point models shown at startup.
const DefaultCount = 100

// Config holds the viewer options.
type Config struct {
	// Count is the initial number of point models. Zero means DefaultCount.
	Count int

	Radius   float64
	Distance float64
	Shrink   pool.ShrinkPolicy

	// Palette overrides palette.Default().
	Palette palette.Palette

	HUD     bool
	Damping bool
}

type viewer struct {
	h   hal.HAL
	log hal.Logger
	cfg Config
	vp  *viewport.Viewport

	fb      hal.Framebuffer
	fbW     int
	fbH     int
	keys    <-chan hal.KeyEvent
	pointer <-chan hal.PointerEvent
	ticks   <-chan uint64

	lastTick uint64
	frameMS  uint64
	stats    quarkgl.Stats

	panicked bool
}

// New builds the viewport on h and returns the per-frame step.
//
// The step drains input, renders one frame into the framebuffer and presents it.
// It returns hal.ErrQuit when the user asks to leave.
func New(h hal.HAL, cfg Config) (func() error, error) {
	v, err := newViewer(h, cfg)
	if err != nil {
		return nil, err
	}
	return v.step, nil
}

func newViewer(h hal.HAL, cfg Config) (*viewer, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	if cfg.Count == 0 {
		cfg.Count = DefaultCount
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("app: count %d: %w", cfg.Count, pool.ErrInvalidCount)
	}

	v := &viewer{h: h, log: h.Logger(), cfg: cfg}

	w, ht := 640, 480
	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			v.fb = fb
			w, ht = fb.Width(), fb.Height()
		}
	}
	v.fbW, v.fbH = w, ht

	vp, err := viewport.New(viewport.Config{
		Width:    w,
		Height:   ht,
		Radius:   cfg.Radius,
		Distance: cfg.Distance,
		Palette:  cfg.Palette,
		Shrink:   cfg.Shrink,
		Damping:  cfg.Damping,
	})
	if err != nil {
		return nil, err
	}
	v.vp = vp

	if in := h.Input(); in != nil {
		if k := in.Keyboard(); k != nil {
			v.keys = k.Events()
		}
		if p := in.Pointer(); p != nil {
			v.pointer = p.Events()
		}
	}
	if t := h.Time(); t != nil {
		v.ticks = t.Ticks()
	}

	if err := v.setCount(cfg.Count); err != nil {
		return nil, err
	}
	v.logf("orbs: %d colors, shrink %s", vp.PaletteLen(), vp.Config().Shrink)
	return v, nil
}

func (v *viewer) step() (err error) {
	if v.panicked {
		return v.drainAfterPanic()
	}
	defer func() {
		if r := recover(); r != nil {
			v.panicked = true
			v.showPanic(r)
			err = nil
		}
	}()

	v.drainTicks()
	if err := v.handleKeys(); err != nil {
		return err
	}
	v.handlePointer()
	return v.render()
}

func (v *viewer) drainTicks() {
	if v.ticks == nil {
		return
	}
	for {
		select {
		case seq := <-v.ticks:
			if v.lastTick != 0 && seq > v.lastTick {
				v.frameMS = seq - v.lastTick
			}
			v.lastTick = seq
		default:
			return
		}
	}
}

func (v *viewer) render() error {
	if v.fb == nil || v.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	w, h := v.fb.Width(), v.fb.Height()
	if w != v.fbW || h != v.fbH {
		v.fbW, v.fbH = w, h
		v.vp.Resize(w, h)
		v.logf("orbs: resize %dx%d", w, h)
	}

	t := &quarkgl.RGB565Target{Buf: v.fb.Buffer(), Stride: v.fb.StrideBytes(), W: w, H: h}
	v.stats = v.vp.Frame(t)
	if v.cfg.HUD {
		v.drawHUD()
	}
	return v.fb.Present()
}

// setCount reconciles the models to n and logs the change.
func (v *viewer) setCount(n int) error {
	before := v.vp.Count()
	res, err := v.vp.SetCount(n)
	if err != nil {
		v.logf("orbs: %v", err)
		return err
	}
	v.logf("orbs: count %d -> %d (removed %d, reused %d, added %d)", before, n, res.Removed, res.Reused, res.Added)
	return nil
}

func (v *viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}
