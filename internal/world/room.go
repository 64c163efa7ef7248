package world

// Room represents a rectangular room in the dungeon.
// The outer corners (X1,Y1) and (X2,Y2) are both part of the room's wall ring.
type Room struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRoom creates a room from its top-left corner and size.
func NewRoom(x, y, width, height int) Room {
	return Room{
		X1: x,
		Y1: y,
		X2: x + width,
		Y2: y + height,
	}
}

// Center returns the center coordinates of the room.
func (r Room) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Inner returns the carvable interior as the half-open rectangle [x1,x2) x [y1,y2).
// The outer ring at X1, Y1, X2 and Y2 is excluded so neighbouring floors never touch.
func (r Room) Inner() (x1, y1, x2, y2 int) {
	return r.X1 + 1, r.Y1 + 1, r.X2, r.Y2
}

// Contains returns true if the given point is inside the room's outer bounds.
func (r Room) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Intersects returns true if this room overlaps with another room.
// Rooms that only share an edge count as intersecting.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}
