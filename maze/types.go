// Package maze defines cell kinds, options and sentinel errors for the
// reindeer-maze solver.
package maze

import (
	"errors"

	"github.com/katalvlaran/bestfirst/grid"
	"github.com/katalvlaran/bestfirst/search"
)

// Sentinel errors returned by Solve.
var (
	// ErrNoStart indicates the maze has no 'S' cell.
	ErrNoStart = errors.New("maze: no start cell 'S'")
	// ErrNoEnd indicates the maze has no 'E' cell.
	ErrNoEnd = errors.New("maze: no end cell 'E'")
	// ErrBadCost indicates a negative turn or step cost.
	ErrBadCost = errors.New("maze: costs must be non-negative")
)

// Cell is the content of one maze tile.
type Cell int

const (
	Empty Cell = iota
	Wall
	Start
	End
	Path // a tile on some optimal route, used only when rendering
)

// cellOf converts an input rune. Unknown runes are open floor.
func cellOf(r rune) Cell {
	switch r {
	case '#':
		return Wall
	case 'S':
		return Start
	case 'E':
		return End
	default:
		return Empty
	}
}

// Rune renders c the way the input spells it, with Path as 'O'.
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	case Path:
		return 'O'
	default:
		return '.'
	}
}

// Pose is a search state: a tile and the direction the reindeer faces.
type Pose struct {
	At     grid.Point
	Facing grid.Dir
}

// Options tunes the maze costs.
//
// TurnCost – cost of rotating 90° in place (default 1000).
// StepCost – cost of moving one tile forward (default 1).
// Facing   – initial direction at the start tile (default East).
type Options struct {
	TurnCost int
	StepCost int
	Facing   grid.Dir
}

// DefaultOptions returns TurnCost=1000, StepCost=1, Facing=East.
func DefaultOptions() Options {
	return Options{
		TurnCost: 1000,
		StepCost: 1,
		Facing:   grid.East,
	}
}

// Solution is the answer for one maze.
//
// Cost     – lowest score from S to E.
// Tiles    – number of distinct tiles on at least one lowest-score route.
// Rendered – the maze with those tiles drawn as 'O'.
// Stats    – engine counters.
type Solution struct {
	Cost     int
	Tiles    int
	Rendered string
	Stats    search.Stats
}
