package quarkgl

import "github.com/go-gl/mathgl/mgl32"

// Scalar is the numeric type of quarkgl geometry. It matches mgl32.
type Scalar = float32

var worldUp = mgl32.Vec3{0, 1, 0}

// normalize is mgl32's Normalize except that a zero vector stays zero.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

func clamp01(v Scalar) Scalar {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
