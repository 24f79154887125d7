package physics

import (
	"math"

	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0
)

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int
	Distance         float32
	Hit              bool
}

// CellAt returns the grid cell containing p. Cells are unit cubes centered on
// integer coordinates.
func CellAt(p mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(p.X()) + 0.5)),
		int(math.Floor(float64(p.Y()) + 0.5)),
		int(math.Floor(float64(p.Z()) + 0.5)),
	}
}

// Raycast walks the cells pierced by the ray from start along direction and
// reports the first solid one between minDist and maxDist. Cells are visited
// through shared faces only, so AdjacentPosition (the cell entered just before
// the hit) always shares a face with HitPosition.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, g *world.Grid) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	result := RaycastResult{}
	if direction.Len() == 0 || maxDist < minDist {
		return result
	}
	dir := direction.Normalize()

	cell := CellAt(start)
	var (
		step   [3]int
		tMax   [3]float32
		tDelta [3]float32
	)
	inf := float32(math.Inf(1))
	for a := 0; a < 3; a++ {
		// cell boundaries sit halfway between integer coordinates
		switch {
		case dir[a] > 0:
			step[a] = 1
			tMax[a] = (float32(cell[a]) + world.BlockHalfSize - start[a]) / dir[a]
			tDelta[a] = 1 / dir[a]
		case dir[a] < 0:
			step[a] = -1
			tMax[a] = (float32(cell[a]) - world.BlockHalfSize - start[a]) / dir[a]
			tDelta[a] = -1 / dir[a]
		default:
			tMax[a], tDelta[a] = inf, inf
		}
	}

	prev := cell
	entry := float32(0)
	for entry <= maxDist {
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}

		if tMax[axis] >= minDist && g.Get(cell[0], cell[1], cell[2]).IsSolid() {
			result.HitPosition = cell
			result.AdjacentPosition = prev
			result.Distance = max(entry, minDist)
			result.Hit = true
			return result
		}

		prev = cell
		cell[axis] += step[axis]
		entry = tMax[axis]
		tMax[axis] += tDelta[axis]
	}

	return result
}
