// Package sim provides the grid simulation for the cubes puzzle.
// It is UI-agnostic and deterministic: rendering, input and randomness are
// reached only through the Renderer, InputSource and RandomSource interfaces.
package sim

import (
	"fmt"
	"strings"
)

// Direction is a move direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in input priority order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ParseDirection parses a direction name (case-insensitive, or u/d/l/r).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("sim: unknown direction %q", s)
	}
}

// Coord is a cell index on the grid.
type Coord struct {
	X, Y int
}

// C is shorthand for creating a Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String returns "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Vec is a continuous position in world units.
type Vec struct {
	X, Y float64
}

// Handle identifies a visual tile owned by the Renderer.
type Handle uint32

// Tile is a live cube on the grid. Level is authoritative; the renderer
// derives its color from it.
type Tile struct {
	Handle Handle
	Level  int
}

// Phase is the input sequencer state.
type Phase uint8

const (
	PhaseIdle Phase = iota // All tiles settled, input accepted
	PhaseBusy              // At least one tile still in transit
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	if p == PhaseBusy {
		return "busy"
	}
	return "idle"
}

// Stats counts what happened over the simulation's lifetime.
type Stats struct {
	Ticks     uint64
	Moves     int
	Merges    int
	Spawns    int
	Destroyed int
}
