package game

import (
	"fmt"
	"log"

	"mini-voxel/internal/config"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/physics"
	"mini-voxel/internal/player"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/transform"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Minimum distance between the camera and a newly placed block.
const placeClearance = 1.5

// Frame carries one frame worth of input.
type Frame struct {
	MouseDX, MouseDY float32
	Keys             player.MoveKeys
	Delta            float32

	Break bool
	Place bool
	// Select changes the block used for placing; air leaves it unchanged.
	Select world.BlockType
}

// State owns everything the frame loop mutates. One driver creates it and
// passes it to update and render; nothing here is global.
type State struct {
	Grid   *world.Grid
	Camera *player.Camera

	Selected world.BlockType
	Paused   bool

	mesh         meshing.VertexBuffer
	meshRevision uint64
	meshValid    bool
	submitted    uint64

	rebuilder *meshing.Rebuilder
}

// NewState builds the world and camera described by cfg.
func NewState(cfg config.Config) (*State, error) {
	gen, err := world.NewGenerator(cfg.World.Generator, cfg.World.Seed)
	if err != nil {
		return nil, err
	}
	grid, err := world.Generate(cfg.World.Width, cfg.World.Height, cfg.World.Depth, gen)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}

	cc := cfg.Camera
	cam := player.NewCamera(mgl32.DegToRad(cc.FOVDegrees), cfg.Window.Aspect(), cc.Near, cc.Far)
	cam.Sensitivity = cc.Sensitivity
	cam.Speed = cc.Speed
	cam.SetPosition(cc.Start[0], cc.Start[1], cc.Start[2])
	if cc.SpawnOnGround {
		if ground, ok := physics.GroundLevel(grid, cc.Start[0], cc.Start[2]); ok {
			cam.Position[1] = ground + cc.EyeHeight
		}
	}

	selected, ok := world.ParseBlockType(cfg.World.PlaceBlock)
	if !ok || !selected.IsSolid() {
		selected = world.BlockTypeDirt
	}

	s := &State{
		Grid:     grid,
		Camera:   cam,
		Selected: selected,
	}
	if cfg.Render.AsyncMeshing {
		s.rebuilder = meshing.NewRebuilder()
	}
	s.refreshMesh()

	log.Printf("World %dx%dx%d (%s generator), %d solid blocks, %d vertices",
		grid.Width(), grid.Height(), grid.Depth(), genName(cfg.World.Generator),
		grid.CountSolid(), s.mesh.VertexCount())
	return s, nil
}

func genName(name string) string {
	if name == "" {
		return "flat"
	}
	return name
}

// Update advances the state by one frame. Edits are applied first and the
// mesh is rebuilt at most once, after all of them.
func (s *State) Update(f Frame) {
	defer profiling.Track("game.Update")()

	if f.Select != world.BlockTypeAir && f.Select.Valid() {
		s.Selected = f.Select
	}
	if !s.Paused {
		s.Camera.ProcessMouseMovement(f.MouseDX, f.MouseDY)
		s.Camera.ProcessKeyboard(f.Keys, f.Delta)
		if f.Break {
			s.BreakBlock()
		}
		if f.Place {
			s.PlaceBlock()
		}
	}
	s.refreshMesh()
}

// Target returns the block the camera is looking at.
func (s *State) Target() physics.RaycastResult {
	return physics.Raycast(s.Camera.Position, s.Camera.Front(),
		physics.MinReachDistance, physics.MaxReachDistance, s.Grid)
}

// BreakBlock clears the targeted block. Returns false when nothing is in reach.
func (s *State) BreakBlock() bool {
	hit := s.Target()
	if !hit.Hit {
		return false
	}
	p := hit.HitPosition
	s.Grid.Set(p[0], p[1], p[2], world.BlockTypeAir)
	return true
}

// PlaceBlock puts the selected block against the targeted face. The spot must
// be inside the grid, empty, and farther than placeClearance from the camera.
func (s *State) PlaceBlock() bool {
	hit := s.Target()
	if !hit.Hit {
		return false
	}
	p := hit.AdjacentPosition
	if !s.Grid.InBounds(p[0], p[1], p[2]) || !s.Grid.IsAir(p[0], p[1], p[2]) {
		return false
	}
	cell := mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
	if cell.Sub(s.Camera.Position).Len() <= placeClearance {
		return false
	}
	s.Grid.Set(p[0], p[1], p[2], s.Selected)
	return true
}

// TogglePause flips the paused flag and returns the new value.
func (s *State) TogglePause() bool {
	s.Paused = !s.Paused
	return s.Paused
}

// Resize forwards a canvas size change to the camera.
func (s *State) Resize(width, height int) {
	s.Camera.Resize(width, height)
}

// Mesh returns the vertex buffer for the current grid. With async meshing it
// may lag behind the grid by the rebuilds still in flight.
func (s *State) Mesh() meshing.VertexBuffer {
	if s.rebuilder != nil {
		s.collect()
	}
	return s.mesh
}

// MeshRevision is the grid revision the current mesh was built from.
func (s *State) MeshRevision() uint64 {
	return s.meshRevision
}

// ViewProjection returns projection x view for this frame.
func (s *State) ViewProjection() mgl32.Mat4 {
	return transform.ViewProjection(s.Camera.ProjectionMatrix(), s.Camera.ViewMatrix())
}

// Close stops the background mesher if one is running.
func (s *State) Close() {
	if s.rebuilder != nil {
		s.rebuilder.Close()
		s.rebuilder = nil
	}
}

func (s *State) refreshMesh() {
	rev := s.Grid.Revision()
	if s.rebuilder == nil || !s.meshValid {
		// the first mesh is always built inline so there is something to draw
		if s.meshValid && rev == s.meshRevision {
			return
		}
		s.mesh = meshing.BuildMesh(s.Grid)
		s.meshRevision = rev
		s.meshValid = true
		return
	}
	if rev != s.meshRevision && rev != s.submitted {
		if s.rebuilder.Submit(s.Grid.Clone()) {
			s.submitted = rev
		}
	}
	s.collect()
}

func (s *State) collect() {
	res, ok := s.rebuilder.Latest()
	if !ok || res.Revision < s.meshRevision {
		return
	}
	s.mesh = res.Vertices
	s.meshRevision = res.Revision
}
