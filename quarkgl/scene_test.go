package quarkgl

import "testing"

func TestGroupOrder(t *testing.T) {
	g := NewGroup()
	ms := make([]*Model, 5)
	for i := range ms {
		ms[i] = NewModel(nil, nil)
		g.Add(ms[i])
	}
	g.Add(nil)
	if g.Len() != 5 {
		t.Fatalf("len = %d, want 5", g.Len())
	}

	g.RemoveAt(0)
	if g.At(0) != ms[1] || g.Len() != 4 {
		t.Fatalf("RemoveAt(0) did not shift the rest")
	}
	g.RemoveAt(2)
	want := []*Model{ms[1], ms[2], ms[4]}
	for i, m := range want {
		if g.At(i) != m {
			t.Fatalf("At(%d) mismatch", i)
		}
	}
	if g.At(-1) != nil || g.At(3) != nil {
		t.Fatal("At out of range should be nil")
	}
	g.RemoveAt(10)
	g.RemoveAt(-1)
	if g.Len() != 3 {
		t.Fatalf("out of range RemoveAt changed len to %d", g.Len())
	}
}

func TestSphereGeometry(t *testing.T) {
	g := NewSphereGeometry(2, 8, 6)
	if len(g.Vertices) != 9*7 {
		t.Fatalf("vertices = %d, want 63", len(g.Vertices))
	}
	if got, want := g.TriangleCount(), 8*(2*6-2); got != want {
		t.Fatalf("triangles = %d, want %d", got, want)
	}
	for i, v := range g.Vertices {
		if abs(v.Pos.Len()-2) > 1e-5 {
			t.Fatalf("vertex %d radius = %v", i, v.Pos.Len())
		}
		if abs(v.Normal.Len()-1) > 1e-5 {
			t.Fatalf("vertex %d normal len = %v", i, v.Normal.Len())
		}
	}
	for _, ix := range g.Indices {
		if int(ix) >= len(g.Vertices) {
			t.Fatalf("index %d out of range", ix)
		}
	}

	small := NewSphereGeometry(1, 0, 0)
	if small.TriangleCount() != 3*(2*2-2) {
		t.Fatalf("clamped sphere triangles = %d", small.TriangleCount())
	}
}
