package world

import (
	"errors"
	"fmt"
)

var ErrInvalidDimensions = errors.New("world: grid dimensions must be positive")

// Grid is a fixed-size dense voxel volume.
// Cells are laid out y-major, then z, then x.
type Grid struct {
	width, height, depth int
	blocks               []BlockType
	revision             uint64
}

// NewGrid allocates an all-air grid.
func NewGrid(width, height, depth int) (*Grid, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: got %dx%dx%d", ErrInvalidDimensions, width, height, depth)
	}
	return &Grid{
		width:  width,
		height: height,
		depth:  depth,
		blocks: make([]BlockType, width*height*depth),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Depth() int  { return g.depth }

// Volume returns the number of cells.
func (g *Grid) Volume() int { return len(g.blocks) }

// Revision increases every time a Set changes a cell. Consumers compare it to
// decide whether their derived data (meshes) is stale.
func (g *Grid) Revision() uint64 { return g.revision }

// Index converts in-bounds cell coordinates to the linear offset.
func (g *Grid) Index(x, y, z int) int {
	return x + z*g.width + y*(g.width*g.depth)
}

func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.width &&
		y >= 0 && y < g.height &&
		z >= 0 && z < g.depth
}

// Get returns the block at the cell, or air outside the grid.
func (g *Grid) Get(x, y, z int) BlockType {
	if !g.InBounds(x, y, z) {
		return BlockTypeAir
	}
	return g.blocks[g.Index(x, y, z)]
}

// Set writes the block at the cell. Writes outside the grid are ignored.
func (g *Grid) Set(x, y, z int, b BlockType) {
	if !g.InBounds(x, y, z) {
		return
	}
	checkBlockType(b)
	i := g.Index(x, y, z)
	if g.blocks[i] == b {
		return
	}
	g.blocks[i] = b
	g.revision++
}

// IsAir reports whether the cell holds air (outside cells always do).
func (g *Grid) IsAir(x, y, z int) bool {
	return g.Get(x, y, z) == BlockTypeAir
}

// IsTransparent reports whether the cell can be seen through.
func (g *Grid) IsTransparent(x, y, z int) bool {
	return g.Get(x, y, z).IsTransparent()
}

// Fill sets every cell to b.
func (g *Grid) Fill(b BlockType) {
	checkBlockType(b)
	for i := range g.blocks {
		g.blocks[i] = b
	}
	g.revision++
}

// CountSolid returns the number of non-transparent cells.
func (g *Grid) CountSolid() int {
	n := 0
	for _, b := range g.blocks {
		if b.IsSolid() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy that can be handed to another goroutine.
func (g *Grid) Clone() *Grid {
	blocks := make([]BlockType, len(g.blocks))
	copy(blocks, g.blocks)
	return &Grid{
		width:    g.width,
		height:   g.height,
		depth:    g.depth,
		blocks:   blocks,
		revision: g.revision,
	}
}
