package quarkgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NewSphereGeometry builds a UV sphere centred at the origin.
//
// widthSegs is clamped to at least 3 and heightSegs to at least 2. The vertex
// count must fit uint16 indices; oversized requests are reduced to 128x64.
func NewSphereGeometry(radius Scalar, widthSegs, heightSegs int) *Geometry {
	if widthSegs < 3 {
		widthSegs = 3
	}
	if heightSegs < 2 {
		heightSegs = 2
	}
	if (widthSegs+1)*(heightSegs+1) > math.MaxUint16 {
		widthSegs, heightSegs = 128, 64
	}

	verts := make([]Vertex, 0, (widthSegs+1)*(heightSegs+1))
	for y := 0; y <= heightSegs; y++ {
		// theta runs from the top pole (0) to the bottom pole (π).
		theta := math.Pi * float64(y) / float64(heightSegs)
		st, ct := math.Sincos(theta)
		for x := 0; x <= widthSegs; x++ {
			phi := 2 * math.Pi * float64(x) / float64(widthSegs)
			sp, cp := math.Sincos(phi)
			n := mgl32.Vec3{Scalar(-cp * st), Scalar(ct), Scalar(sp * st)}
			verts = append(verts, Vertex{Pos: n.Mul(radius), Normal: n})
		}
	}

	idx := func(x, y int) uint16 { return uint16(y*(widthSegs+1) + x) }

	indices := make([]uint16, 0, widthSegs*heightSegs*6)
	for y := 0; y < heightSegs; y++ {
		for x := 0; x < widthSegs; x++ {
			a := idx(x, y)
			b := idx(x+1, y)
			c := idx(x+1, y+1)
			d := idx(x, y+1)
			// Skip the degenerate triangle touching each pole.
			if y != 0 {
				indices = append(indices, a, d, b)
			}
			if y != heightSegs-1 {
				indices = append(indices, b, d, c)
			}
		}
	}

	return &Geometry{Vertices: verts, Indices: indices}
}

// TriangleCount returns the number of triangles in g.
func (g *Geometry) TriangleCount() int {
	if g == nil {
		return 0
	}
	return len(g.Indices) / 3
}
