package procgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/roguegen/internal/world"
)

// fixedRand returns the same value for every draw.
type fixedRand struct {
	f float64
}

func (r fixedRand) Intn(n int) int   { return int(r.f * float64(n)) }
func (r fixedRand) Float64() float64 { return r.f }

func TestTunnelBetweenHorizontalFirst(t *testing.T) {
	path := TunnelBetween(pt(1, 1), pt(4, 3), fixedRand{f: 0.1})

	want := []world.Point{
		pt(1, 1), pt(2, 1), pt(3, 1), pt(4, 1),
		pt(4, 1), pt(4, 2), pt(4, 3),
	}
	assert.Equal(t, want, path)
}

func TestTunnelBetweenVerticalFirst(t *testing.T) {
	path := TunnelBetween(pt(1, 1), pt(4, 3), fixedRand{f: 0.9})

	want := []world.Point{
		pt(1, 1), pt(1, 2), pt(1, 3),
		pt(1, 3), pt(2, 3), pt(3, 3), pt(4, 3),
	}
	assert.Equal(t, want, path)
}

func TestCarveTunnel(t *testing.T) {
	grid, err := world.NewGrid(6, 5)
	require.NoError(t, err)

	path := TunnelBetween(pt(1, 1), pt(4, 3), fixedRand{f: 0.1})
	require.NoError(t, carveTunnel(grid, path))

	assert.Equal(t, 6, grid.CountTiles(world.Floor))
	assert.True(t, world.Reachable(grid, pt(1, 1), pt(4, 3)))

	err = carveTunnel(grid, []world.Point{pt(6, 0)})
	assert.ErrorIs(t, err, world.ErrOutOfBounds)
}
