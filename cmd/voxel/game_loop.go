package main

import (
	"log"
	"time"

	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/graphics/renderables/blocks"
	"mini-voxel/internal/graphics/renderables/crosshair"
	"mini-voxel/internal/graphics/renderables/wireframe"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/input"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Frames slower than this are logged with their top profiling entries.
const slowFrame = time.Second / 30

// GameLoop drives input, update and render for one window.
type GameLoop struct {
	window       *glfw.Window
	renderer     *renderer.Renderer
	state        *game.State
	inputManager *input.InputManager
	fpsLimiter   *game.FPSLimiter

	logSlowFrames bool

	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewGameLoop creates the renderer and hooks up input callbacks. Requires a
// current GL context on the calling thread.
func NewGameLoop(window *glfw.Window, state *game.State, rc config.RenderConfig) (*GameLoop, error) {
	r, err := renderer.NewRenderer(
		mgl32.Vec3(rc.SkyColor),
		blocks.NewBlocks(),
		wireframe.NewWireframe(),
		crosshair.NewCrosshair(),
	)
	if err != nil {
		return nil, err
	}

	gl := &GameLoop{
		window:           window,
		renderer:         r,
		state:            state,
		inputManager:     input.NewInputManager(),
		fpsLimiter:       game.NewFPSLimiter(rc.FPSLimit),
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
	gl.inputManager.Install(window)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.renderer.SetViewport(width, height)
		gl.state.Resize(width, height)
	})
	gl.renderer.SetViewport(window.GetFramebufferSize())
	return gl, nil
}

// Run loops until the window is closed.
func (gl *GameLoop) Run() {
	for !gl.window.ShouldClose() {
		gl.tick()
	}
}

// Dispose releases GPU resources.
func (gl *GameLoop) Dispose() {
	gl.renderer.Dispose()
}

func (gl *GameLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	gl.handlePause()
	gl.state.Update(gl.frameInput(float32(dt)))

	func() {
		defer profiling.Track("renderer.Render")()
		mesh := gl.state.Mesh()
		gl.renderer.Render(renderer.RenderContext{
			ViewProj:     gl.state.ViewProjection(),
			Mesh:         mesh,
			MeshRevision: gl.state.MeshRevision(),
			Target:       gl.state.Target(),
			Aspect:       gl.state.Camera.Aspect,
			Paused:       gl.state.Paused,
		})
	}()

	func() { defer profiling.Track("glfw.SwapBuffers")(); gl.window.SwapBuffers() }()

	gl.inputManager.PostUpdate()
	gl.updateProfiling(now)
	gl.fpsLimiter.Wait(gl.state.Paused)
}

// handlePause toggles pointer lock on Escape. The pointer baseline is reset on
// every change so the first sample after locking is not a jump.
func (gl *GameLoop) handlePause() {
	if gl.inputManager.JustPressed(input.ActionToggleProfiling) {
		gl.logSlowFrames = !gl.logSlowFrames
	}
	if !gl.inputManager.JustPressed(input.ActionPause) {
		return
	}
	if gl.state.TogglePause() {
		gl.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		gl.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
	gl.inputManager.ResetPointer()
}

func (gl *GameLoop) frameInput(dt float32) game.Frame {
	im := gl.inputManager
	dx, dy := im.PointerDelta()
	f := game.Frame{
		MouseDX: dx,
		MouseDY: dy,
		Keys:    im.MoveKeys(),
		Delta:   dt,
		Break:   im.JustPressed(input.ActionBreak),
		Place:   im.JustPressed(input.ActionPlace),
	}
	switch {
	case im.JustPressed(input.ActionSelectDirt):
		f.Select = world.BlockTypeDirt
	case im.JustPressed(input.ActionSelectGrass):
		f.Select = world.BlockTypeGrass
	}
	return f
}

func (gl *GameLoop) updateProfiling(frameStart time.Time) {
	gl.frames++
	if time.Since(gl.lastFPSCheckTime) >= time.Second {
		log.Printf("FPS: %d", gl.frames)
		gl.frames = 0
		gl.lastFPSCheckTime = time.Now()
	}

	if d := time.Since(frameStart); gl.logSlowFrames && d > slowFrame {
		log.Printf("Frame took too long: %.2fms [%s]", float64(d.Microseconds())/1000.0, profiling.TopN(3))
	}
}
