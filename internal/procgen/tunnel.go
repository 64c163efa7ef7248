package procgen

import "github.com/samdwyer/roguegen/internal/world"

// TunnelBetween returns the cells of an L-shaped tunnel from start to end.
// The elbow is (end.X, start.Y) or (start.X, end.Y) with equal chance. The elbow
// appears once at the end of the first leg and again at the start of the second.
func TunnelBetween(start, end world.Point, rng Rand) []world.Point {
	corner := world.Point{X: start.X, Y: end.Y} // vertical, then horizontal
	if rng.Float64() < 0.5 {
		corner = world.Point{X: end.X, Y: start.Y} // horizontal, then vertical
	}

	path := Line(start, corner)
	return append(path, Line(corner, end)...)
}

// carveTunnel sets every tunnel cell to floor.
func carveTunnel(g *world.Grid, path []world.Point) error {
	for _, p := range path {
		if err := g.Set(p.X, p.Y, world.Floor); err != nil {
			return err
		}
	}
	return nil
}
