package quarkgl

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = Scalar(math.Pi/2 - 0.05)

// OrbitController provides orbit/dolly/pan interactions for a camera.
//
// Rotate, Pan and Dolly move the goal state. Update moves the camera toward it,
// either immediately or through critically damped springs when damping is enabled.
// It does not depend on any input system.
type OrbitController struct {
	Target mgl32.Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar

	damped bool
	spring harmonica.Spring
	pos    [3]float64 // yaw, pitch, radius as shown
	vel    [3]float64
	primed bool
}

// NewOrbitController returns a controller looking at the origin from +Z.
func NewOrbitController(radius Scalar) *OrbitController {
	return &OrbitController{Radius: radius}
}

// EnableDamping smooths camera motion with springs stepped at fps updates per second.
// frequency is the spring angular frequency; ratio 1 is critically damped.
func (c *OrbitController) EnableDamping(fps int, frequency, ratio float64) {
	if fps <= 0 {
		fps = 60
	}
	c.spring = harmonica.NewSpring(harmonica.FPS(fps), frequency, ratio)
	c.damped = true
}

// DisableDamping makes Update snap to the goal state.
func (c *OrbitController) DisableDamping() { c.damped = false }

// Damped reports whether Update smooths motion.
func (c *OrbitController) Damped() bool { return c.damped }

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.clamp()
}

// Dolly multiplies the radius by scale (scale < 1 moves closer).
func (c *OrbitController) Dolly(scale Scalar) {
	if scale <= 0 {
		return
	}
	c.Radius *= scale
	c.clamp()
}

// Pan moves the orbit target in the camera plane. dx, dy are fractions of the radius.
func (c *OrbitController) Pan(dx, dy Scalar) {
	eye := c.offset(c.Yaw, c.Pitch, c.radius())
	f := normalize(eye.Mul(-1))
	right := normalize(f.Cross(worldUp))
	up := right.Cross(f)
	r := c.radius()
	c.Target = c.Target.Add(right.Mul(-dx * r)).Add(up.Mul(dy * r))
}

// Update advances smoothing by one step and applies the result to cam.
func (c *OrbitController) Update(cam *Camera) {
	goal := [3]float64{float64(c.Yaw), float64(c.Pitch), float64(c.radius())}
	if !c.damped || !c.primed {
		c.pos = goal
		c.vel = [3]float64{}
		c.primed = true
	} else {
		for i := range c.pos {
			c.pos[i], c.vel[i] = c.spring.Update(c.pos[i], c.vel[i], goal[i])
		}
	}
	c.apply(cam, Scalar(c.pos[0]), Scalar(c.pos[1]), Scalar(c.pos[2]))
}

func (c *OrbitController) apply(cam *Camera, yaw, pitch, r Scalar) {
	if cam == nil {
		return
	}
	cam.Position = c.Target.Add(c.offset(yaw, pitch, r))
	cam.Target = c.Target
	if cam.Up == (mgl32.Vec3{}) {
		cam.Up = worldUp
	}
}

func (c *OrbitController) offset(yaw, pitch, r Scalar) mgl32.Vec3 {
	m := mgl32.HomogRotate3DY(yaw).Mul4(mgl32.HomogRotate3DX(pitch))
	return m.Mul4x1(mgl32.Vec4{0, 0, r, 1}).Vec3()
}

func (c *OrbitController) radius() Scalar {
	if c.Radius == 0 {
		return 3
	}
	return c.Radius
}

func (c *OrbitController) clamp() {
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}
