package input

import (
	"testing"

	"mini-voxel/internal/player"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestPointerFirstSampleIsBaseline(t *testing.T) {
	var p PointerTracker
	p.Move(400, 300)
	dx, dy := p.Take()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	p.Move(410, 295)
	p.Move(415, 290)
	dx, dy = p.Take()
	assert.Equal(t, float32(15), dx)
	assert.Equal(t, float32(-10), dy)

	dx, dy = p.Take()
	assert.Zero(t, dx, "take clears accumulated motion")
	assert.Zero(t, dy)

	p.Reset()
	p.Move(0, 0)
	dx, _ = p.Take()
	assert.Zero(t, dx, "reset drops the old baseline")
}

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	assert.True(t, im.JustPressed(ActionPause))
	assert.True(t, im.IsActive(ActionPause))

	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Repeat)
	assert.False(t, im.JustPressed(ActionPause), "repeat is not a new press")

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Release)
	assert.True(t, im.JustReleased(ActionPause))
	assert.False(t, im.IsActive(ActionPause))
}

func TestMouseButtons(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	assert.True(t, im.JustPressed(ActionBreak), "click inside one frame still registers")
	assert.False(t, im.JustPressed(ActionPlace))
}

func TestMoveKeys(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyRight, glfw.Press)

	keys := im.MoveKeys()
	assert.True(t, keys.Has(player.MoveForward))
	assert.True(t, keys.Has(player.MoveRight))
	assert.False(t, keys.Has(player.MoveBackward))
	assert.False(t, keys.Has(player.MoveLeft))
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeyW)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	assert.False(t, im.IsActive(ActionMoveForward))

	im.BindKey(glfw.KeyW, ActionCount)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	assert.False(t, im.IsActive(ActionMoveForward))
}

func TestPointerDelta(t *testing.T) {
	im := NewInputManager()
	im.HandleCursorPos(100, 100)
	im.HandleCursorPos(103, 98)
	dx, dy := im.PointerDelta()
	assert.Equal(t, float32(3), dx)
	assert.Equal(t, float32(-2), dy)

	im.ResetPointer()
	im.HandleCursorPos(500, 500)
	dx, dy = im.PointerDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
