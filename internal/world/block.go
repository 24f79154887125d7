package world

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeDirt
	BlockTypeGrass

	blockTypeCount // Sentinel value for table sizing
)

// Block data
const (
	BlockSize     = 1.0
	BlockHalfSize = BlockSize / 2
)

var (
	grassColor = mgl32.Vec3{0.2, 0.8, 0.2}
	dirtColor  = mgl32.Vec3{0.59, 0.41, 0.17}
)

// blockProps holds the per-type properties looked up by the mesher and physics.
type blockProps struct {
	name        string
	transparent bool
	color       mgl32.Vec3
}

var blockTable = [blockTypeCount]blockProps{
	BlockTypeAir:   {name: "air", transparent: true},
	BlockTypeDirt:  {name: "dirt", color: dirtColor},
	BlockTypeGrass: {name: "grass", color: grassColor},
}

// Valid reports whether b is one of the known block types.
func (b BlockType) Valid() bool {
	return b < blockTypeCount
}

// IsTransparent reports whether light and visibility pass through the block.
// Unknown ids are treated as opaque so they still get faces.
func (b BlockType) IsTransparent() bool {
	if !b.Valid() {
		return false
	}
	return blockTable[b].transparent
}

// IsSolid reports whether the block occupies its cell.
func (b BlockType) IsSolid() bool {
	return !b.IsTransparent()
}

// Color returns the flat render color for the block. Every solid type
// without its own palette entry renders as dirt.
func (b BlockType) Color() mgl32.Vec3 {
	if b == BlockTypeGrass {
		return grassColor
	}
	return dirtColor
}

func (b BlockType) String() string {
	if !b.Valid() {
		return "block(" + strconv.Itoa(int(b)) + ")"
	}
	return blockTable[b].name
}

// ParseBlockType maps a block name back to its id.
func ParseBlockType(name string) (BlockType, bool) {
	for i := range blockTypeCount {
		if blockTable[i].name == name {
			return i, true
		}
	}
	return BlockTypeAir, false
}
