package quarkgl

import "github.com/go-gl/mathgl/mgl32"

// Material is a minimal Lambert surface description.
//
// Materials are shared by pointer: many models may reference one Material.
type Material struct {
	BaseColor Color
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Position  mgl32.Vec3
	Color     Color
	Intensity Scalar // 0 means 1.
}

// Camera is a perspective camera.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	FOVYRad Scalar
	Near    Scalar
	Far     Scalar
}

// View returns the camera view matrix.
func (c Camera) View() mgl32.Mat4 {
	up := c.Up
	if up == (mgl32.Vec3{}) {
		up = worldUp
	}
	return mgl32.LookAtV(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) mgl32.Mat4 {
	fov := c.FOVYRad
	if fov == 0 {
		fov = 1
	}
	if aspect == 0 {
		aspect = 1
	}
	return mgl32.Perspective(fov, aspect, c.Near, c.Far)
}

// Vertex is a geometry vertex. Normal may be zero, in which case face normals are used.
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
}

// Geometry is immutable triangle data shared by models.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint16 // triangle list
}

// Model places a Geometry in the world with a material.
type Model struct {
	Geometry *Geometry
	Material *Material
	Position mgl32.Vec3
	Hidden   bool
}

// NewModel returns a visible model at the origin.
func NewModel(g *Geometry, m *Material) *Model {
	return &Model{Geometry: g, Material: m}
}

// Group is an ordered collection of models.
type Group struct {
	children []*Model
}

func NewGroup() *Group { return &Group{} }

// Add appends models in order. Nil models are ignored.
func (g *Group) Add(models ...*Model) {
	for _, m := range models {
		if m != nil {
			g.children = append(g.children, m)
		}
	}
}

// RemoveAt removes the model at index i, keeping the order of the rest.
func (g *Group) RemoveAt(i int) {
	if i < 0 || i >= len(g.children) {
		return
	}
	copy(g.children[i:], g.children[i+1:])
	g.children[len(g.children)-1] = nil
	g.children = g.children[:len(g.children)-1]
}

func (g *Group) Len() int { return len(g.children) }

// At returns the model at index i or nil if out of range.
func (g *Group) At(i int) *Model {
	if i < 0 || i >= len(g.children) {
		return nil
	}
	return g.children[i]
}

// Scene is a camera, lights and a list of model groups.
type Scene struct {
	Camera  Camera
	Ambient Color
	Lights  []DirectionalLight

	groups []*Group
}

// NewScene returns an empty scene with a perspective camera at (0,0,3).
func NewScene() *Scene {
	return &Scene{
		Camera: Camera{
			Position: mgl32.Vec3{0, 0, 3},
			Up:       worldUp,
			FOVYRad:  1,
			Near:     0.05,
			Far:      100,
		},
	}
}

// Add attaches groups to the scene.
func (s *Scene) Add(groups ...*Group) {
	for _, g := range groups {
		if g != nil {
			s.groups = append(s.groups, g)
		}
	}
}

// AddLight appends a directional light.
func (s *Scene) AddLight(l DirectionalLight) {
	s.Lights = append(s.Lights, l)
}

func (s *Scene) eachModel(fn func(m *Model)) {
	for _, g := range s.groups {
		for _, m := range g.children {
			if m == nil || m.Hidden || m.Geometry == nil {
				continue
			}
			fn(m)
		}
	}
}
