package world

import "github.com/zyedidia/generic/mapset"

var orthogonal = [4]Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Regions groups every walkable cell into 4-connected regions.
// Regions are returned in the row-major order of their first cell.
// This only describes a grid; nothing here changes it.
func Regions(g *Grid) [][]Point {
	visited := mapset.New[Point]()
	var regions [][]Point

	g.ForEach(func(x, y int, t Tile) {
		p := Point{X: x, Y: y}
		if !t.IsPassable() || visited.Has(p) {
			return
		}
		regions = append(regions, flood(g, p, &visited))
	})

	return regions
}

// Reachable reports whether to can be reached from from by orthogonal steps over walkable cells.
func Reachable(g *Grid, from, to Point) bool {
	if !g.IsWalkable(from.X, from.Y) || !g.IsWalkable(to.X, to.Y) {
		return false
	}
	visited := mapset.New[Point]()
	flood(g, from, &visited)
	return visited.Has(to)
}

// flood collects the walkable region containing start, marking cells in visited.
func flood(g *Grid, start Point, visited *mapset.Set[Point]) []Point {
	visited.Put(start)
	queue := []Point{start}
	var region []Point

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		region = append(region, p)

		for _, d := range orthogonal {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if !g.IsWalkable(n.X, n.Y) || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	return region
}
