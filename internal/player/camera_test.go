package player

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func newTestCamera() *Camera {
	return NewCamera(mgl32.DegToRad(70), 16.0/9.0, 0.01, 1000)
}

func assertOrthonormal(t *testing.T, c *Camera) {
	t.Helper()
	assert.InDelta(t, 1, c.Front().Len(), eps, "front length")
	assert.InDelta(t, 1, c.Right().Len(), eps, "right length")
	assert.InDelta(t, 1, c.Up().Len(), eps, "up length")
	assert.InDelta(t, 0, c.Front().Dot(c.Right()), eps, "front.right")
	assert.InDelta(t, 0, c.Front().Dot(c.Up()), eps, "front.up")
	assert.InDelta(t, 0, c.Right().Dot(c.Up()), eps, "right.up")
}

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestInitialBasis(t *testing.T) {
	c := newTestCamera()
	assert.Equal(t, float32(DefaultYaw), c.Yaw())
	assert.Equal(t, float32(DefaultPitch), c.Pitch())
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, c.Right())
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, c.Up())
}

func TestMouseMovementSigns(t *testing.T) {
	c := newTestCamera()
	c.ProcessMouseMovement(100, 0)
	assert.InDelta(t, -80, c.Yaw(), eps)
	// turning right from -Z swings front toward +X
	assert.Greater(t, c.Front().X(), float32(0))

	c = newTestCamera()
	c.ProcessMouseMovement(0, 50)
	assert.InDelta(t, -5, c.Pitch(), eps)
	assert.Less(t, c.Front().Y(), float32(0), "moving the mouse down looks down")
}

func TestBasisStaysOrthonormal(t *testing.T) {
	c := newTestCamera()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		c.ProcessMouseMovement(float32(rng.NormFloat64()*400), float32(rng.NormFloat64()*400))
		assertOrthonormal(t, c)
	}
}

func TestPitchClamp(t *testing.T) {
	c := newTestCamera()
	c.ProcessMouseMovement(0, -100000)
	assert.Equal(t, float32(MaxPitch), c.Pitch())
	assertOrthonormal(t, c)

	c.ProcessMouseMovement(0, 100000)
	assert.Equal(t, float32(MinPitch), c.Pitch())
	assertOrthonormal(t, c)

	c.SetOrientation(0, 1000)
	assert.LessOrEqual(t, c.Pitch(), float32(MaxPitch))
}

func TestFrontMatchesAngles(t *testing.T) {
	c := newTestCamera()
	c.SetOrientation(30, 45)
	yaw, pitch := 30*math.Pi/180, 45*math.Pi/180
	assertVecNear(t, mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}, c.Front())
}

func TestViewMatrixMapsFrontToNegativeZ(t *testing.T) {
	c := newTestCamera()
	c.SetPosition(3, 4, 8)
	c.ProcessMouseMovement(123, -57)

	view := c.ViewMatrix()
	eye := view.Mul4x1(c.Position.Vec4(1))
	assertVecNear(t, mgl32.Vec3{0, 0, 0}, eye.Vec3())

	ahead := view.Mul4x1(c.Position.Add(c.Front()).Vec4(1))
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, ahead.Vec3())

	right := view.Mul4x1(c.Position.Add(c.Right()).Vec4(1))
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, right.Vec3())
}

func TestProjectionMatrix(t *testing.T) {
	fov := mgl32.DegToRad(70)
	c := NewCamera(fov, 2, 0.5, 100)
	p := c.ProjectionMatrix()

	f := float32(1 / math.Tan(float64(fov)/2))
	near, far := float32(0.5), float32(100)
	assert.InDelta(t, f/2, p[0], eps)
	assert.InDelta(t, f, p[5], eps)
	assert.InDelta(t, (near+far)/(near-far), p[10], eps)
	assert.InDelta(t, -1, p[11], eps)
	assert.InDelta(t, 2*near*far/(near-far), p[14], 1e-3)
	assert.InDelta(t, 0, p[15], eps)

	// near plane maps to -1, far plane to +1
	n := p.Mul4x1(mgl32.Vec4{0, 0, -near, 1})
	require.NotZero(t, n.W())
	assert.InDelta(t, -1, n.Z()/n.W(), 1e-4)
	fp := p.Mul4x1(mgl32.Vec4{0, 0, -far, 1})
	assert.InDelta(t, 1, fp.Z()/fp.W(), 1e-4)
}

func TestResize(t *testing.T) {
	c := newTestCamera()
	c.Resize(800, 400)
	assert.InDelta(t, 2, c.Aspect, eps)

	c.Resize(0, 400)
	c.SetAspect(-1)
	assert.InDelta(t, 2, c.Aspect, eps, "invalid sizes are ignored")
}
