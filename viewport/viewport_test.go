package viewport

import (
	"errors"
	"math"
	"testing"

	"orbs/palette"
	"orbs/pool"
	"orbs/quarkgl"
	"orbs/spiral"
)

func newTestViewport(t *testing.T, cfg Config) *Viewport {
	t.Helper()
	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v
}

func TestNewDefaults(t *testing.T) {
	v := newTestViewport(t, Config{})
	cfg := v.Config()
	if cfg.Radius != 1 || cfg.Distance != 1 || cfg.Width != 640 || cfg.Height != 480 {
		t.Fatalf("config = %+v", cfg)
	}
	if v.PaletteLen() != palette.Default().Len() {
		t.Fatalf("palette len = %d", v.PaletteLen())
	}
	if v.Count() != 0 {
		t.Fatalf("count = %d, want 0", v.Count())
	}
}

func TestNewCameraFollowsDistance(t *testing.T) {
	v := newTestViewport(t, Config{Distance: 3})
	cam := v.Camera()
	if math.Abs(float64(cam.Position.Z())-15) > 1e-4 {
		t.Fatalf("camera z = %v, want 15", cam.Position.Z())
	}
	if cam.Far != 30 || cam.Near != near {
		t.Fatalf("near/far = %v/%v", cam.Near, cam.Far)
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"negative radius", Config{Radius: -1}, ErrInvalidConfig},
		{"inf distance", Config{Distance: math.Inf(1)}, ErrInvalidConfig},
		{"nan distance", Config{Distance: math.NaN()}, ErrInvalidConfig},
		{"bad size", Config{Width: -1, Height: 10}, ErrInvalidConfig},
		{"empty palette", Config{Palette: palette.Palette{}}, pool.ErrEmptyPalette},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetCountPlacesModels(t *testing.T) {
	pal, err := palette.FromNames("red", "lime", "blue", "gold", "plum")
	if err != nil {
		t.Fatal(err)
	}
	v := newTestViewport(t, Config{Distance: 2, Palette: pal})

	for _, n := range []int{10, 3, 7} {
		if _, err := v.SetCount(n); err != nil {
			t.Fatalf("SetCount(%d): %v", n, err)
		}
	}
	models := v.Models()
	if len(models) != 7 {
		t.Fatalf("len = %d, want 7", len(models))
	}
	want := spiral.MustGenerate(7)
	for i, m := range models {
		if !m.Position.ApproxEqualThreshold(want[i].Mul(2), 1e-5) {
			t.Fatalf("model %d at %v, want %v", i, m.Position, want[i].Mul(2))
		}
		if m.Color != quarkgl.FromRGBA(pal.At(i)) {
			t.Fatalf("model %d color = %+v", i, m.Color)
		}
	}
	if models[0].Color != models[5].Color {
		t.Fatal("colors are not periodic in the palette size")
	}
}

func TestSetCountInvalid(t *testing.T) {
	v := newTestViewport(t, Config{})
	if _, err := v.SetCount(4); err != nil {
		t.Fatal(err)
	}
	if _, err := v.SetCount(-2); !errors.Is(err, pool.ErrInvalidCount) {
		t.Fatalf("err = %v, want ErrInvalidCount", err)
	}
	if v.Count() != 4 {
		t.Fatalf("count = %d after rejected call, want 4", v.Count())
	}
}

func TestSetCountShrinkBack(t *testing.T) {
	v := newTestViewport(t, Config{Shrink: pool.ShrinkBack})
	if _, err := v.SetCount(5); err != nil {
		t.Fatal(err)
	}
	res, err := v.SetCount(2)
	if err != nil {
		t.Fatal(err)
	}
	if res != (pool.Result{Removed: 3, Reused: 2}) {
		t.Fatalf("result = %+v", res)
	}
}

func TestFrameRenders(t *testing.T) {
	v := newTestViewport(t, Config{Width: 96, Height: 64, Radius: 0.1, Segments: 8})
	if _, err := v.SetCount(50); err != nil {
		t.Fatal(err)
	}
	tgt := quarkgl.NewImageTarget(96, 64)
	st := v.Frame(tgt)
	if st.Models != 50 || st.Triangles == 0 {
		t.Fatalf("stats = %+v", st)
	}

	lit := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 96; x++ {
			if tgt.At(x, y) != quarkgl.RGB(0, 0, 0) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("frame is blank")
	}

	v.SetWireframe(true)
	if !v.Wireframe() {
		t.Fatal("wireframe not set")
	}
	v.Frame(tgt)
}

func TestResizeAndOrbit(t *testing.T) {
	v := newTestViewport(t, Config{})
	v.Resize(0, 10)
	if w, h := v.Size(); w != 640 || h != 480 {
		t.Fatalf("size = %dx%d after invalid resize", w, h)
	}
	v.Resize(320, 200)
	if w, h := v.Size(); w != 320 || h != 200 {
		t.Fatalf("size = %dx%d", w, h)
	}

	v.Orbit(func(c *quarkgl.OrbitController) { c.Rotate(math.Pi/2, 0) })
	v.Frame(quarkgl.NewImageTarget(32, 20))
	cam := v.Camera()
	if math.Abs(float64(cam.Position.X())-5) > 1e-3 || math.Abs(float64(cam.Position.Z())) > 1e-3 {
		t.Fatalf("camera after quarter turn = %+v", cam.Position)
	}
}

func TestDampingToggle(t *testing.T) {
	v := newTestViewport(t, Config{})
	if v.Damping() {
		t.Fatal("damping on by default")
	}
	v.SetDamping(true)
	if !v.Damping() {
		t.Fatal("damping not enabled")
	}

	tgt := quarkgl.NewImageTarget(32, 20)
	v.Frame(tgt)
	v.Orbit(func(c *quarkgl.OrbitController) { c.Rotate(math.Pi/2, 0) })
	v.Frame(tgt)
	if x := v.Camera().Position.X(); math.Abs(float64(x)-5) < 1e-3 {
		t.Fatalf("damped camera reached the goal in one frame (x=%v)", x)
	}

	v.SetDamping(false)
	if v.Damping() {
		t.Fatal("damping still enabled")
	}
	v.Frame(tgt)
	if x := v.Camera().Position.X(); math.Abs(float64(x)-5) > 1e-3 {
		t.Fatalf("undamped camera x = %v, want 5", x)
	}
}
