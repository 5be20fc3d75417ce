// Package pool keeps a live collection of renderable instances matched to a
// requested count.
//
// A Reconciler shrinks or grows a Container to the target size, then places every
// instance on the golden-spiral sphere (scaled) and assigns it a material from a
// fixed palette by index. All positions are reassigned on every call.
package pool

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"orbs/spiral"
)

var (
	ErrInvalidCount = errors.New("pool: invalid target count")
	ErrInvalidScale = errors.New("pool: invalid position scale")
	ErrEmptyPalette = errors.New("pool: empty palette")
	ErrNilContainer = errors.New("pool: nil container")
)

// Instance is one renderable point model.
type Instance[M any] interface {
	SetPosition(p mgl64.Vec3)
	SetMaterial(m M)
}

// Container is the ordered instance collection owned by the scene.
//
// Append creates a new instance (sharing the scene's geometry) and adds it at the end.
type Container[M any] interface {
	Len() int
	At(i int) Instance[M]
	RemoveAt(i int)
	Append() Instance[M]
}

// ShrinkPolicy selects which instances are removed when the pool shrinks.
type ShrinkPolicy uint8

const (
	// ShrinkFront removes index 0 repeatedly, so the oldest instances go first.
	ShrinkFront ShrinkPolicy = iota
	// ShrinkBack removes the last instance repeatedly.
	ShrinkBack
)

func (p ShrinkPolicy) String() string {
	switch p {
	case ShrinkFront:
		return "front"
	case ShrinkBack:
		return "back"
	default:
		return "unknown"
	}
}

// ParseShrinkPolicy parses "front" or "back".
func ParseShrinkPolicy(s string) (ShrinkPolicy, bool) {
	switch s {
	case "front", "":
		return ShrinkFront, true
	case "back":
		return ShrinkBack, true
	}
	return 0, false
}

// Result describes the instance changes of one reconciliation.
type Result struct {
	Removed int // Instances removed while shrinking.
	Reused  int // Existing instances that were repositioned.
	Added   int // Instances created while growing.
}

// Option configures a Reconciler.
type Option func(*options)

type options struct {
	policy ShrinkPolicy
}

// WithShrinkPolicy overrides the default ShrinkFront policy.
func WithShrinkPolicy(p ShrinkPolicy) Option {
	return func(o *options) { o.policy = p }
}

// Reconciler matches a Container to a target count.
//
// It is not safe for concurrent use; callers serialise Reconcile with any reader
// of the container.
type Reconciler[M any] struct {
	palette []M
	policy  ShrinkPolicy

	scratch []mgl64.Vec3
}

// New creates a reconciler cycling over palette. The palette is copied.
func New[M any](palette []M, opts ...Option) (*Reconciler[M], error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Reconciler[M]{
		palette: append([]M(nil), palette...),
		policy:  o.policy,
	}, nil
}

// Palette returns a copy of the material palette.
func (r *Reconciler[M]) Palette() []M { return append([]M(nil), r.palette...) }

// Policy returns the shrink policy.
func (r *Reconciler[M]) Policy() ShrinkPolicy { return r.policy }

// Reconcile resizes c to target instances and reassigns every position and material.
//
// Instance i ends at scale*spiral.Generate(target)[i] with material palette[i mod len].
// On error nothing is modified.
func (r *Reconciler[M]) Reconcile(c Container[M], target int, scale float64) (Result, error) {
	var res Result
	if c == nil {
		return res, ErrNilContainer
	}
	if target < 0 {
		return res, ErrInvalidCount
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return res, ErrInvalidScale
	}

	for c.Len() > target {
		if r.policy == ShrinkBack {
			c.RemoveAt(c.Len() - 1)
		} else {
			c.RemoveAt(0)
		}
		res.Removed++
	}

	r.scratch = spiral.AppendPoints(r.scratch[:0], target)

	for i, p := range r.scratch {
		var inst Instance[M]
		if i < c.Len() {
			inst = c.At(i)
			res.Reused++
		} else {
			inst = c.Append()
			res.Added++
		}
		inst.SetPosition(p.Mul(scale))
		inst.SetMaterial(r.palette[i%len(r.palette)])
	}
	return res, nil
}
