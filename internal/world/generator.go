package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
)

var ErrUnknownGenerator = errors.New("world: unknown terrain generator")

// TerrainGenerator fills a grid with terrain.
type TerrainGenerator interface {
	Populate(g *Grid)
}

// FlatGenerator lays down dirt over the bottom quarter of the grid with a
// single grass layer on top.
type FlatGenerator struct{}

func NewFlatGenerator() *FlatGenerator {
	return &FlatGenerator{}
}

// GroundHeight returns the number of filled layers for a grid of the given height.
func (FlatGenerator) GroundHeight(height int) int {
	return max(1, height/4)
}

func (f FlatGenerator) Populate(g *Grid) {
	ground := f.GroundHeight(g.height)
	for x := 0; x < g.width; x++ {
		for z := 0; z < g.depth; z++ {
			for y := 0; y < g.height; y++ {
				if y < ground {
					g.Set(x, y, z, BlockTypeDirt)
				} else {
					g.Set(x, y, z, BlockTypeAir)
				}
			}
			// top surface becomes grass
			g.Set(x, ground-1, z, BlockTypeGrass)
		}
	}
}

// HeightmapGenerator builds rolling hills from 2D Perlin noise.
type HeightmapGenerator struct {
	noise *perlin.Perlin
	scale float64
	amp   float64
}

// NewHeightmapGenerator creates a generator; the same seed always yields the same terrain.
func NewHeightmapGenerator(seed int64) *HeightmapGenerator {
	return &HeightmapGenerator{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		scale: 1.0 / 16.0,
		amp:   0.5,
	}
}

// HeightAt returns the column height (number of filled cells) for a grid of the given height.
func (h *HeightmapGenerator) HeightAt(x, z, gridHeight int) int {
	n := h.noise.Noise2D(float64(x)*h.scale, float64(z)*h.scale)
	base := float64(max(1, gridHeight/4))
	height := int(math.Floor(base + n*h.amp*float64(gridHeight)))
	return min(max(height, 1), gridHeight)
}

func (h *HeightmapGenerator) Populate(g *Grid) {
	for x := 0; x < g.width; x++ {
		for z := 0; z < g.depth; z++ {
			top := h.HeightAt(x, z, g.height)
			for y := 0; y < g.height; y++ {
				switch {
				case y == top-1:
					g.Set(x, y, z, BlockTypeGrass)
				case y < top:
					g.Set(x, y, z, BlockTypeDirt)
				default:
					g.Set(x, y, z, BlockTypeAir)
				}
			}
		}
	}
}

// NewGenerator resolves a generator by its config name.
func NewGenerator(name string, seed int64) (TerrainGenerator, error) {
	switch name {
	case "", "flat":
		return NewFlatGenerator(), nil
	case "hills":
		return NewHeightmapGenerator(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}

// Generate allocates a grid and populates it.
func Generate(width, height, depth int, gen TerrainGenerator) (*Grid, error) {
	g, err := NewGrid(width, height, depth)
	if err != nil {
		return nil, err
	}
	if gen != nil {
		gen.Populate(g)
	}
	return g, nil
}
