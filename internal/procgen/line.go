package procgen

import "github.com/samdwyer/roguegen/internal/world"

// Line returns every cell on the Bresenham line from a to b, both ends included.
func Line(a, b world.Point) []world.Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	points := make([]world.Point, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	e := dx + dy
	for {
		points = append(points, world.Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return points
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
