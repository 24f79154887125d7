package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultYaw         = -90.0 // facing -Z
	DefaultPitch       = 0.0
	DefaultSensitivity = 0.1
	DefaultSpeed       = 5.0

	MaxPitch = 89.0
	MinPitch = -89.0
)

var WorldUp = mgl32.Vec3{0, 1, 0}

// Camera is a free-flying first-person camera. Yaw and pitch are in degrees,
// FOV is the full vertical field of view in radians.
type Camera struct {
	Position mgl32.Vec3

	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	Sensitivity float32
	Speed       float32

	yaw   float32
	pitch float32

	// Derived basis, always consistent with yaw/pitch
	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// NewCamera creates a camera at the origin looking down -Z.
func NewCamera(fov, aspect, near, far float32) *Camera {
	c := &Camera{
		FOV:         fov,
		Aspect:      aspect,
		Near:        near,
		Far:         far,
		Sensitivity: DefaultSensitivity,
		Speed:       DefaultSpeed,
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
	}
	c.updateVectors()
	return c
}

func (c *Camera) Yaw() float32   { return c.yaw }
func (c *Camera) Pitch() float32 { return c.pitch }

func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) Up() mgl32.Vec3    { return c.up }

// SetPosition moves the camera eye.
func (c *Camera) SetPosition(x, y, z float32) {
	c.Position = mgl32.Vec3{x, y, z}
}

// SetOrientation sets yaw and pitch directly; pitch is clamped.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.yaw = wrapDegrees(yaw)
	c.pitch = mgl32.Clamp(pitch, MinPitch, MaxPitch)
	c.updateVectors()
}

// ProcessMouseMovement applies a relative pointer delta. Positive dx turns
// right, positive dy (mouse moving down) looks down.
func (c *Camera) ProcessMouseMovement(dx, dy float32) {
	c.SetOrientation(c.yaw+dx*c.Sensitivity, c.pitch-dy*c.Sensitivity)
}

// SetAspect updates the projection aspect ratio. Non-positive values are ignored.
func (c *Camera) SetAspect(aspect float32) {
	if aspect <= 0 || math.IsNaN(float64(aspect)) || math.IsInf(float64(aspect), 0) {
		return
	}
	c.Aspect = aspect
}

// Resize updates the aspect ratio from a canvas size.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.SetAspect(float32(width) / float32(height))
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// ProjectionMatrix returns the camera-to-clip transform with [-1,1] NDC depth.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(WorldUp).Normalize()
	c.up = c.right.Cross(c.front)
}

// wrapDegrees keeps yaw in (-360, 360) so float32 precision does not decay
// over long sessions.
func wrapDegrees(deg float32) float32 {
	return float32(math.Mod(float64(deg), 360))
}
