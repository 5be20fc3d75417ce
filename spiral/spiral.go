// Package spiral places points approximately evenly on the unit sphere using the
// golden-spiral (Fibonacci sphere) mapping.
//
// The distribution depends on the point count as a whole: Generate(n) and
// Generate(n+1) share no positions beyond index 0, so callers that change the
// count must regenerate every point.
package spiral

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GoldenAngle is π(3−√5) radians, the azimuth step between consecutive points.
const GoldenAngle = 2.399963229728653

// ErrInvalidCount is returned for a negative point count.
var ErrInvalidCount = errors.New("spiral: invalid point count")

// Generate returns n unit vectors spread over the sphere, ordered by increasing Y.
//
// n == 0 yields an empty, non-nil slice.
func Generate(n int) ([]mgl64.Vec3, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	return AppendPoints(make([]mgl64.Vec3, 0, n), n), nil
}

// MustGenerate is like Generate but panics on a negative count.
func MustGenerate(n int) []mgl64.Vec3 {
	pts, err := Generate(n)
	if err != nil {
		panic(err)
	}
	return pts
}

// AppendPoints appends the n-point distribution to dst and returns the extended
// slice. A non-positive n appends nothing.
func AppendPoints(dst []mgl64.Vec3, n int) []mgl64.Vec3 {
	if n <= 0 {
		return dst
	}
	offset := 2 / float64(n)
	half := offset / 2
	for i := 0; i < n; i++ {
		dst = append(dst, point(i, offset, half))
	}
	return dst
}

func point(i int, offset, half float64) mgl64.Vec3 {
	y := (float64(i)*offset - 1) + half
	rr := 1 - y*y
	if rr < 0 {
		rr = 0
	}
	r := math.Sqrt(rr)
	// phi is accumulated, not reduced: math.Sincos does exact argument reduction.
	phi := float64(i) * GoldenAngle
	s, c := math.Sincos(phi)
	return mgl64.Vec3{c * r, y, s * r}
}
