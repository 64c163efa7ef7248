package procgen

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguegen/internal/telemetry"
	"github.com/samdwyer/roguegen/internal/world"
)

const (
	// Default dungeon parameters
	DefaultMaxRooms    = 100
	DefaultRoomMinSize = 6
	DefaultRoomMaxSize = 10
	DefaultWidth       = 120
	DefaultHeight      = 70
)

// DungeonParams controls room placement.
type DungeonParams struct {
	MaxRooms    int // Placement attempts; a rejected attempt is not retried
	RoomMinSize int
	RoomMaxSize int
	Width       int
	Height      int
}

// DefaultDungeonParams returns the standard 120x70 dungeon settings.
func DefaultDungeonParams() DungeonParams {
	return DungeonParams{
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}

// Validate checks that every count and size is positive and the size range is ordered.
// A map too small for some or all room sizes is valid; such attempts are rejected
// during placement.
func (p DungeonParams) Validate() error {
	switch {
	case p.MaxRooms <= 0:
		return fmt.Errorf("%w: max rooms %d", world.ErrInvalidDimension, p.MaxRooms)
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: map %dx%d", world.ErrInvalidDimension, p.Width, p.Height)
	case p.RoomMinSize <= 0:
		return fmt.Errorf("%w: room min size %d", world.ErrInvalidDimension, p.RoomMinSize)
	case p.RoomMaxSize < p.RoomMinSize:
		return fmt.Errorf("%w: room max size %d below min size %d",
			world.ErrInvalidDimension, p.RoomMaxSize, p.RoomMinSize)
	}
	return nil
}

// Dungeon is the result of a room-and-corridor generation run.
type Dungeon struct {
	Grid      *world.Grid
	Rooms     []world.Room // Accepted rooms in placement order
	Primary   world.Point  // Center of the first room
	Secondary world.Point  // Center of the last room
}

// GenerateDungeon places up to MaxRooms non-overlapping rooms and joins each room
// to the one placed before it with an L-shaped tunnel.
func GenerateDungeon(ctx context.Context, p DungeonParams, rng Rand) (*Dungeon, error) {
	tracer := telemetry.Tracer("procgen")
	_, span := tracer.Start(ctx, "procgen.dungeon")
	defer span.End()

	if err := p.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	startTime := time.Now()

	grid, err := world.NewGrid(p.Width, p.Height)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	d := &Dungeon{
		Grid:  grid,
		Rooms: make([]world.Room, 0),
	}

	for attempt := 0; attempt < p.MaxRooms; attempt++ {
		roomWidth := p.RoomMinSize + rng.Intn(p.RoomMaxSize-p.RoomMinSize+1)
		roomHeight := p.RoomMinSize + rng.Intn(p.RoomMaxSize-p.RoomMinSize+1)
		if roomWidth >= p.Width || roomHeight >= p.Height {
			continue
		}

		// Leave room for the X2/Y2 corner inside the map
		x := rng.Intn(p.Width - roomWidth)
		y := rng.Intn(p.Height - roomHeight)

		room := world.NewRoom(x, y, roomWidth, roomHeight)
		if d.overlaps(room) {
			continue
		}

		if err := d.carveRoom(room); err != nil {
			span.RecordError(err)
			return nil, err
		}

		if len(d.Rooms) == 0 {
			d.Primary = room.Center()
		} else {
			prev := d.Rooms[len(d.Rooms)-1]
			path := TunnelBetween(prev.Center(), room.Center(), rng)
			if err := carveTunnel(grid, path); err != nil {
				span.RecordError(err)
				return nil, err
			}
		}

		d.Rooms = append(d.Rooms, room)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.max_rooms", p.MaxRooms),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	if len(d.Rooms) == 0 {
		err := fmt.Errorf("%w: %d attempts on %dx%d map", ErrNoRoomsPlaced, p.MaxRooms, p.Width, p.Height)
		span.RecordError(err)
		return nil, err
	}

	d.Secondary = d.Rooms[len(d.Rooms)-1].Center()
	return d, nil
}

// overlaps returns true if room touches any accepted room.
func (d *Dungeon) overlaps(room world.Room) bool {
	for _, other := range d.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom sets the room's interior to floor.
func (d *Dungeon) carveRoom(room world.Room) error {
	x1, y1, x2, y2 := room.Inner()
	return d.Grid.FillRect(x1, y1, x2, y2, world.Floor)
}
