package procgen

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguegen/internal/telemetry"
	"github.com/samdwyer/roguegen/internal/world"
)

const (
	// DefaultFillProbability is the chance that a seeded cell starts as wall.
	DefaultFillProbability = 0.4
	// DefaultGenerations is the number of smoothing passes.
	DefaultGenerations = 6

	nearWallThreshold = 5 // walls in the 3x3 window that keep or make a wall
	farWallThreshold  = 7 // walls in the 5x5 window at or below which open space is walled
)

// CaveParams controls cave seeding and smoothing.
type CaveParams struct {
	Width           int
	Height          int
	FillProbability float64
	Generations     int
}

// DefaultCaveParams returns the standard 120x70 cave settings.
func DefaultCaveParams() CaveParams {
	return CaveParams{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		FillProbability: DefaultFillProbability,
		Generations:     DefaultGenerations,
	}
}

// GenerateCave seeds and smooths a cave in one call.
func GenerateCave(ctx context.Context, p CaveParams, rng Rand) (*world.Grid, error) {
	grid, err := InitializeCave(ctx, p.Width, p.Height, p.FillProbability, rng)
	if err != nil {
		return nil, err
	}
	return SmoothCave(ctx, grid, p.Generations)
}

// InitializeCave fills a new grid with random noise: each cell is wall with
// probability fillProbability, floor otherwise. Cells are drawn row by row.
func InitializeCave(ctx context.Context, width, height int, fillProbability float64, rng Rand) (*world.Grid, error) {
	tracer := telemetry.Tracer("procgen")
	_, span := tracer.Start(ctx, "procgen.cave.initialize")
	defer span.End()

	if fillProbability < 0 || fillProbability > 1 {
		err := fmt.Errorf("%w: fill probability %v not in [0,1]", ErrInvalidParameter, fillProbability)
		span.RecordError(err)
		return nil, err
	}

	grid, err := world.NewGrid(width, height)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() < fillProbability {
				continue
			}
			if err := grid.Set(x, y, world.Floor); err != nil {
				span.RecordError(err)
				return nil, err
			}
		}
	}

	span.SetAttributes(
		attribute.Int("cave.width", width),
		attribute.Int("cave.height", height),
		attribute.Float64("cave.fill_probability", fillProbability),
		attribute.Int("cave.wall_count", grid.CountTiles(world.Wall)),
	)

	return grid, nil
}

// SmoothCave runs the given number of cellular automaton generations over grid
// and returns it. Each generation reads only the previous generation.
//
// Every generation but the last turns a cell into wall when its 3x3 window holds
// at least five walls or its 5x5 window holds at most seven; the last generation
// keeps only the 3x3 rule. Windows are clipped at the grid edge. The outer ring
// is always wall, even when generations is zero.
func SmoothCave(ctx context.Context, grid *world.Grid, generations int) (*world.Grid, error) {
	tracer := telemetry.Tracer("procgen")
	_, span := tracer.Start(ctx, "procgen.cave.smooth")
	defer span.End()

	if grid == nil {
		err := fmt.Errorf("%w: nil grid", ErrInvalidParameter)
		span.RecordError(err)
		return nil, err
	}
	if generations < 0 {
		err := fmt.Errorf("%w: generations %d", ErrInvalidParameter, generations)
		span.RecordError(err)
		return nil, err
	}

	width, height := grid.Width(), grid.Height()
	prev := newWallMask(grid)
	next := make([]bool, len(prev))

	for gen := 0; gen < generations; gen++ {
		final := gen == generations-1
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				near := countWalls(prev, width, height, x, y, 1)
				wall := near >= nearWallThreshold
				if !final && !wall {
					wall = countWalls(prev, width, height, x, y, 2) <= farWallThreshold
				}
				if onBorder(width, height, x, y) {
					wall = true
				}
				next[y*width+x] = wall
			}
		}
		prev, next = next, prev
	}

	if err := writeWallMask(grid, prev); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("cave.width", width),
		attribute.Int("cave.height", height),
		attribute.Int("cave.generations", generations),
		attribute.Int("cave.floor_count", grid.CountTiles(world.Floor)),
	)

	return grid, nil
}

// newWallMask flattens grid into a row-major wall mask.
func newWallMask(grid *world.Grid) []bool {
	width := grid.Width()
	mask := make([]bool, width*grid.Height())
	grid.ForEach(func(x, y int, t world.Tile) {
		mask[y*width+x] = t == world.Wall
	})
	return mask
}

// writeWallMask copies a row-major wall mask back into grid, walling the outer ring.
func writeWallMask(grid *world.Grid, mask []bool) error {
	width, height := grid.Width(), grid.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tile := world.Floor
			if mask[y*width+x] || onBorder(width, height, x, y) {
				tile = world.Wall
			}
			if err := grid.Set(x, y, tile); err != nil {
				return err
			}
		}
	}
	return nil
}

// countWalls counts walls in the square window of the given radius around (x, y),
// clipped to the grid.
func countWalls(mask []bool, width, height, x, y, radius int) int {
	x0, x1 := max(x-radius, 0), min(x+radius, width-1)
	y0, y1 := max(y-radius, 0), min(y+radius, height-1)

	count := 0
	for ny := y0; ny <= y1; ny++ {
		row := mask[ny*width : (ny+1)*width]
		for nx := x0; nx <= x1; nx++ {
			if row[nx] {
				count++
			}
		}
	}
	return count
}

func onBorder(width, height, x, y int) bool {
	return x == 0 || y == 0 || x == width-1 || y == height-1
}
