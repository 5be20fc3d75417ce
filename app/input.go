package app

import (
	"math"

	"orbs/hal"
	"orbs/quarkgl"
)

const (
	maxCount  = 1 << 14
	dollyStep = 0.9
	wheelBase = 0.95
)

func (v *viewer) handleKeys() error {
	if v.keys == nil {
		return nil
	}
	for {
		select {
		case ev := <-v.keys:
			if !ev.Press {
				continue
			}
			if err := v.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handleKey(ev hal.KeyEvent) error {
	n := v.vp.Count()
	switch ev.Code {
	case hal.KeyUp, hal.KeyRight:
		return v.adjust(n + 1)
	case hal.KeyDown, hal.KeyLeft:
		return v.adjust(n - 1)
	case hal.KeyPageUp:
		v.vp.Orbit(func(c *quarkgl.OrbitController) { c.Dolly(dollyStep) })
		return nil
	case hal.KeyPageDown:
		v.vp.Orbit(func(c *quarkgl.OrbitController) { c.Dolly(1 / dollyStep) })
		return nil
	case hal.KeyEscape:
		return hal.ErrQuit
	}

	switch ev.Rune {
	case '+', '=':
		return v.adjust(n + 1)
	case '-', '_':
		return v.adjust(n - 1)
	case ']':
		if n == 0 {
			return v.adjust(1)
		}
		return v.adjust(n * 2)
	case '[':
		return v.adjust(n / 2)
	case '0':
		return v.adjust(0)
	case 'r', 'R':
		return v.adjust(v.cfg.Count)
	case 'w', 'W':
		on := !v.vp.Wireframe()
		v.vp.SetWireframe(on)
		v.logf("orbs: wireframe %t", on)
	case 'd', 'D':
		on := !v.vp.Damping()
		v.vp.SetDamping(on)
		v.logf("orbs: damping %t", on)
	case 'h', 'H':
		v.cfg.HUD = !v.cfg.HUD
	case 'q', 'Q':
		return hal.ErrQuit
	}
	return nil
}

// adjust clamps n into [0, maxCount] and reconciles when it differs from the current count.
func (v *viewer) adjust(n int) error {
	if n < 0 {
		n = 0
	}
	if n > maxCount {
		n = maxCount
	}
	if n == v.vp.Count() {
		return nil
	}
	return v.setCount(n)
}

func (v *viewer) handlePointer() {
	if v.pointer == nil {
		return
	}
	h := float64(v.fbH)
	if h <= 0 {
		h = 1
	}
	for {
		select {
		case ev := <-v.pointer:
			switch ev.Kind {
			case hal.PointerRotate:
				// A full-height drag is one turn.
				yaw := quarkgl.Scalar(-2 * math.Pi * ev.DX / h)
				pitch := quarkgl.Scalar(-2 * math.Pi * ev.DY / h)
				v.vp.Orbit(func(c *quarkgl.OrbitController) { c.Rotate(yaw, pitch) })
			case hal.PointerPan:
				dx := quarkgl.Scalar(ev.DX / h)
				dy := quarkgl.Scalar(ev.DY / h)
				v.vp.Orbit(func(c *quarkgl.OrbitController) { c.Pan(dx, dy) })
			case hal.PointerWheel:
				scale := quarkgl.Scalar(math.Pow(wheelBase, ev.DY))
				v.vp.Orbit(func(c *quarkgl.OrbitController) { c.Dolly(scale) })
			}
		default:
			return
		}
	}
}
