package quarkgl

import "github.com/go-gl/mathgl/mgl32"

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	Cull       bool
	ClearColor Color

	depthBuf []float32
	stats    Stats
}

// Stats counts the work done by the last Render call.
type Stats struct {
	Models    int
	Triangles int // triangles rasterized
	Culled    int // back-facing or outside the view
}

// NewRenderer creates a renderer for a given target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Cull:       true,
		ClearColor: RGB(0, 0, 0),
	}
	r.EnableDepth(enableDepth, w, h)
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

// Stats returns counters from the last Render call.
func (r *Renderer) Stats() Stats { return r.stats }

// EnableDepth toggles depth testing and sizes the depth buffer for w x h.
func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	r.stats = Stats{}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := Scalar(w) / Scalar(h)
	viewProj := s.Camera.Projection(aspect).Mul4(s.Camera.View())

	s.eachModel(func(m *Model) {
		r.stats.Models++
		r.renderModel(t, w, h, viewProj, s, m)
	})
}

func (r *Renderer) renderModel(t Target, w, h int, viewProj mgl32.Mat4, s *Scene, m *Model) {
	g := m.Geometry
	if len(g.Vertices) == 0 || len(g.Indices) < 3 {
		return
	}
	mvp := viewProj.Mul4(mgl32.Translate3D(m.Position.Elem()))

	base := RGB(0xCC, 0xCC, 0xCC)
	if m.Material != nil {
		base = m.Material.BaseColor
	}

	for i := 0; i+2 < len(g.Indices); i += 3 {
		i0, i1, i2 := int(g.Indices[i]), int(g.Indices[i+1]), int(g.Indices[i+2])
		if i0 >= len(g.Vertices) || i1 >= len(g.Vertices) || i2 >= len(g.Vertices) {
			continue
		}
		v0, v1, v2 := g.Vertices[i0], g.Vertices[i1], g.Vertices[i2]

		n := faceNormal(v0, v1, v2)
		if r.Cull && r.Mode != RenderWireframe && backFacing(s.Camera, m.Position.Add(v0.Pos), n) {
			r.stats.Culled++
			continue
		}

		p0 := mvp.Mul4x1(v0.Pos.Vec4(1))
		p1 := mvp.Mul4x1(v1.Pos.Vec4(1))
		p2 := mvp.Mul4x1(v2.Pos.Vec4(1))

		// Triangles touching or behind the camera plane are dropped, not clipped.
		if p0.W() <= 0 || p1.W() <= 0 || p2.W() <= 0 {
			r.stats.Culled++
			continue
		}
		ndc0, ndc1, ndc2 := toNDC(p0), toNDC(p1), toNDC(p2)
		if outside(ndc0, ndc1, ndc2) {
			r.stats.Culled++
			continue
		}

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		c := shade(base, n, s)
		r.stats.Triangles++

		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, x0, y0, x1, y1, c)
			r.drawLine(t, x1, y1, x2, y2, c)
			r.drawLine(t, x2, y2, x0, y0, c)
		default:
			r.fillTriangle(t, w, h, x0, y0, ndc0.Z, x1, y1, ndc1.Z, x2, y2, ndc2.Z, c)
		}
	}
}

type ndcPoint struct {
	X, Y, Z float32
}

func toNDC(p mgl32.Vec4) ndcPoint {
	inv := 1 / p.W()
	return ndcPoint{X: p.X() * inv, Y: p.Y() * inv, Z: p.Z() * inv}
}

func outside(a, b, c ndcPoint) bool {
	return (a.X < -1 && b.X < -1 && c.X < -1) ||
		(a.X > 1 && b.X > 1 && c.X > 1) ||
		(a.Y < -1 && b.Y < -1 && c.Y < -1) ||
		(a.Y > 1 && b.Y > 1 && c.Y > 1) ||
		(a.Z > 1 && b.Z > 1 && c.Z > 1)
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func faceNormal(v0, v1, v2 Vertex) mgl32.Vec3 {
	if n := normalize(v0.Normal.Add(v1.Normal).Add(v2.Normal)); n != (mgl32.Vec3{}) {
		return n
	}
	return normalize(v1.Pos.Sub(v0.Pos).Cross(v2.Pos.Sub(v0.Pos)))
}

func backFacing(cam Camera, p, n mgl32.Vec3) bool {
	return n.Dot(cam.Position.Sub(p)) <= 0
}

// shade applies Lambert lighting from the scene's lights plus ambient.
func shade(base Color, n mgl32.Vec3, s *Scene) Color {
	if len(s.Lights) == 0 && s.Ambient == (Color{}) {
		return base
	}
	lr := Scalar(s.Ambient.R) / 255
	lg := Scalar(s.Ambient.G) / 255
	lb := Scalar(s.Ambient.B) / 255
	for _, l := range s.Lights {
		d := n.Dot(normalize(l.Position))
		if d <= 0 {
			continue
		}
		if l.Intensity != 0 {
			d *= l.Intensity
		}
		lr += d * Scalar(l.Color.R) / 255
		lg += d * Scalar(l.Color.G) / 255
		lb += d * Scalar(l.Color.B) / 255
	}
	return base.Shade(lr, lg, lb)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if x < 0 || x >= w || idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]; store it in [0,1].
	d := z*0.5 + 0.5
	if d < 0 {
		d = 0
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color) {
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, z1, x2, y2, z2 = x2, y2, z2, x1, y1, z1
		area = -area
	}

	minX, maxX := max(min(x0, x1, x2), 0), min(max(x0, x1, x2), w-1)
	minY, maxY := max(min(y0, y1, y2), 0), min(max(y0, y1, y2), h-1)
	if minX > maxX || minY > maxY {
		return
	}
	invArea := 1 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			z := (float32(w0)*z0 + float32(w1)*z1 + float32(w2)*z2) * invArea
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
