package viewport

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"orbs/pool"
	"orbs/quarkgl"
)

// modelPool adapts the viewport's models group to pool.Container.
// Callers hold v.mu.
type modelPool struct {
	v *Viewport
}

func (p modelPool) Len() int { return p.v.models.Len() }

func (p modelPool) At(i int) pool.Instance[*quarkgl.Material] {
	return modelInstance{p.v.models.At(i)}
}

func (p modelPool) RemoveAt(i int) { p.v.models.RemoveAt(i) }

func (p modelPool) Append() pool.Instance[*quarkgl.Material] {
	m := quarkgl.NewModel(p.v.geometry, nil)
	p.v.models.Add(m)
	return modelInstance{m}
}

type modelInstance struct {
	m *quarkgl.Model
}

func (i modelInstance) SetPosition(p mgl64.Vec3) {
	i.m.Position = mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
}

func (i modelInstance) SetMaterial(m *quarkgl.Material) { i.m.Material = m }
