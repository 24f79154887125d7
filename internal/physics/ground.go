package physics

import (
	"math"

	"mini-voxel/internal/world"
)

// GroundLevel returns the top surface height of the highest solid cell in the
// column under (x, z). ok is false when the column is outside the grid or empty.
func GroundLevel(g *world.Grid, x, z float32) (y float32, ok bool) {
	bx := int(math.Floor(float64(x) + 0.5))
	bz := int(math.Floor(float64(z) + 0.5))
	if !g.InBounds(bx, 0, bz) {
		return 0, false
	}
	for by := g.Height() - 1; by >= 0; by-- {
		if g.Get(bx, by, bz).IsSolid() {
			return float32(by) + world.BlockHalfSize, true
		}
	}
	return 0, false
}
