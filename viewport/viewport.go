// Package viewport is the session handle for one sphere-of-spheres view.
//
// New builds the scene (models group, shared sphere geometry, camera, lights,
// orbit controller and renderer) and returns a Viewport. SetCount reconciles the
// number of visible point models; Frame is the body of the render loop.
package viewport

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"orbs/palette"
	"orbs/pool"
	"orbs/quarkgl"
)

var ErrInvalidConfig = errors.New("viewport: invalid config")

// Config holds the initialization-time options. Zero values take defaults.
type Config struct {
	Width, Height int // default 640x480

	// Radius is the size of each point model. Default 1.
	Radius float64
	// Distance scales the point positions and the camera placement. Default 1.
	Distance float64

	// Palette defaults to palette.Default().
	Palette palette.Palette
	Shrink  pool.ShrinkPolicy

	// Segments is the sphere tessellation (width segments; height is half). Default 12.
	Segments int
	// Damping smooths orbit motion.
	Damping bool
	// FPS is the expected frame rate for damping. Default 60.
	FPS int
}

const (
	fovDeg = 70
	near   = 0.01

	dampingFrequency = 6
	dampingRatio     = 1
)

// Viewport owns one scene and its point-model pool.
//
// All methods are safe for concurrent use; SetCount and Frame are serialised.
type Viewport struct {
	mu sync.Mutex

	cfg      Config
	width    int
	height   int
	scene    *quarkgl.Scene
	models   *quarkgl.Group
	geometry *quarkgl.Geometry
	renderer *quarkgl.Renderer
	controls *quarkgl.OrbitController
	rec      *pool.Reconciler[*quarkgl.Material]
}

// New validates cfg and builds the scene.
func New(cfg Config) (*Viewport, error) {
	cfg, err := withDefaults(cfg)
	if err != nil {
		return nil, err
	}

	materials := make([]*quarkgl.Material, len(cfg.Palette))
	for i, c := range cfg.Palette {
		materials[i] = &quarkgl.Material{BaseColor: quarkgl.FromRGBA(c)}
	}
	rec, err := pool.New(materials, pool.WithShrinkPolicy(cfg.Shrink))
	if err != nil {
		return nil, fmt.Errorf("viewport palette: %w", err)
	}

	d := quarkgl.Scalar(cfg.Distance)

	s := quarkgl.NewScene()
	s.Camera.FOVYRad = mgl32.DegToRad(fovDeg)
	s.Camera.Near = near
	s.Camera.Far = d * 10
	s.Camera.Position = mgl32.Vec3{0, 0, d * 5}
	s.AddLight(quarkgl.DirectionalLight{Position: mgl32.Vec3{0, d * 2, 0}, Color: quarkgl.Hex(0xFFFFFF)})
	s.AddLight(quarkgl.DirectionalLight{Position: mgl32.Vec3{d * 2, 0, 0}, Color: quarkgl.Hex(0x808080)})

	models := quarkgl.NewGroup()
	s.Add(models)

	controls := quarkgl.NewOrbitController(d * 5)
	controls.MinRadius = d * 0.5
	controls.MaxRadius = s.Camera.Far * 0.9
	if cfg.Damping {
		controls.EnableDamping(cfg.FPS, dampingFrequency, dampingRatio)
	}
	controls.Update(&s.Camera)

	r := quarkgl.NewRenderer(cfg.Width, cfg.Height, true)
	r.ClearColor = quarkgl.RGB(0, 0, 0)

	return &Viewport{
		cfg:      cfg,
		width:    cfg.Width,
		height:   cfg.Height,
		scene:    s,
		models:   models,
		geometry: quarkgl.NewSphereGeometry(quarkgl.Scalar(cfg.Radius), cfg.Segments, cfg.Segments/2),
		renderer: r,
		controls: controls,
		rec:      rec,
	}, nil
}

func withDefaults(cfg Config) (Config, error) {
	if cfg.Width == 0 && cfg.Height == 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.Radius == 0 {
		cfg.Radius = 1
	}
	if cfg.Distance == 0 {
		cfg.Distance = 1
	}
	if !positive(cfg.Radius) {
		return cfg, fmt.Errorf("%w: radius %v", ErrInvalidConfig, cfg.Radius)
	}
	if !positive(cfg.Distance) {
		return cfg, fmt.Errorf("%w: distance %v", ErrInvalidConfig, cfg.Distance)
	}
	if cfg.Palette == nil {
		cfg.Palette = palette.Default()
	}
	if cfg.Segments <= 0 {
		cfg.Segments = 12
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	return cfg, nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// SetCount sets the number of visible point models, regenerating every position
// and color. A negative n is rejected and leaves the models untouched.
func (v *Viewport) SetCount(n int) (pool.Result, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	res, err := v.rec.Reconcile(modelPool{v}, n, v.cfg.Distance)
	if err != nil {
		return res, fmt.Errorf("set count %d: %w", n, err)
	}
	return res, nil
}

// Count returns the number of point models.
func (v *Viewport) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.models.Len()
}

// PaletteLen returns the number of distinct model colors.
func (v *Viewport) PaletteLen() int { return len(v.cfg.Palette) }

// Config returns the effective configuration.
func (v *Viewport) Config() Config { return v.cfg }

// Size returns the current viewport size.
func (v *Viewport) Size() (w, h int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// Resize updates the camera/renderer sizing. Non-positive sizes are ignored.
func (v *Viewport) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width, v.height = w, h
	v.renderer.EnableDepth(true, w, h)
}

// SetWireframe switches between solid and wireframe rendering.
func (v *Viewport) SetWireframe(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if on {
		v.renderer.SetRenderMode(quarkgl.RenderWireframe)
	} else {
		v.renderer.SetRenderMode(quarkgl.RenderSolidFlat)
	}
}

// Wireframe reports whether wireframe rendering is on.
func (v *Viewport) Wireframe() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renderer.Mode == quarkgl.RenderWireframe
}

// SetDamping turns orbit smoothing on or off.
func (v *Viewport) SetDamping(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if on {
		v.controls.EnableDamping(v.cfg.FPS, dampingFrequency, dampingRatio)
	} else {
		v.controls.DisableDamping()
	}
}

// Damping reports whether orbit smoothing is on.
func (v *Viewport) Damping() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.controls.Damped()
}

// Orbit runs fn with the orbit controller under the viewport lock.
func (v *Viewport) Orbit(fn func(c *quarkgl.OrbitController)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(v.controls)
}

// Camera returns a copy of the current camera.
func (v *Viewport) Camera() quarkgl.Camera {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scene.Camera
}

// Frame advances the orbit controls and renders the scene into t.
func (v *Viewport) Frame(t quarkgl.Target) quarkgl.Stats {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.controls.Update(&v.scene.Camera)
	v.renderer.Render(t, v.scene)
	return v.renderer.Stats()
}

// Model is a read-only view of one point model.
type Model struct {
	Position mgl64.Vec3
	Color    quarkgl.Color
}

// Models returns a snapshot of the point models in pool order.
func (v *Viewport) Models() []Model {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Model, v.models.Len())
	for i := range out {
		m := v.models.At(i)
		p := m.Position
		out[i] = Model{
			Position: mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])},
			Color:    m.Material.BaseColor,
		}
	}
	return out
}
