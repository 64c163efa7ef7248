// Package procgen generates playable terrain: room-and-corridor dungeons and
// cellular-automaton caves.
//
// Every generator takes its randomness from an explicit Rand so that the same
// seed always produces the same map.
package procgen

import "errors"

// Rand is the source of randomness used by the generators. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

var (
	// ErrNoRoomsPlaced is returned when every dungeon room attempt was rejected.
	ErrNoRoomsPlaced = errors.New("no rooms placed")
	// ErrInvalidParameter is returned for out-of-range non-dimension parameters.
	ErrInvalidParameter = errors.New("invalid parameter")
)
