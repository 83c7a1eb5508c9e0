// Package maze scores reindeer races through a walled maze: moving forward
// costs StepCost, turning in place costs TurnCost. It finds the lowest
// score and every tile that lies on some lowest-scoring route.
package maze

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/grid"
	"github.com/katalvlaran/bestfirst/search"
)

// Maze is a parsed maze with its start and end tiles.
type Maze struct {
	Grid  *grid.Grid[Cell]
	Start grid.Point
	End   grid.Point
}

// Parse reads a maze of '#', '.', 'S' and 'E'. Off-grid tiles count as walls.
// Returns grid errors for malformed input, ErrNoStart or ErrNoEnd when a
// marker is missing.
func Parse(lines []string) (*Maze, error) {
	g, err := grid.Parse(lines, cellOf, Wall)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	start, ok := g.Find(func(c Cell) bool { return c == Start })
	if !ok {
		return nil, ErrNoStart
	}
	end, ok := g.Find(func(c Cell) bool { return c == End })
	if !ok {
		return nil, ErrNoEnd
	}
	return &Maze{Grid: g, Start: start, End: end}, nil
}

// Problem returns the search problem over poses: turn left or right in
// place, or step forward onto a non-wall tile. Any pose on the end tile is a
// goal.
func (m *Maze) Problem(opts Options) search.Problem[Pose, int] {
	return search.Problem[Pose, int]{
		Start:  Pose{At: m.Start, Facing: opts.Facing},
		IsGoal: func(p Pose) bool { return p.At == m.End },
		Neighbors: func(p Pose) []search.Edge[Pose, int] {
			out := make([]search.Edge[Pose, int], 0, 3)
			if ahead := p.At.Step(p.Facing); m.Grid.At(ahead) != Wall {
				out = append(out, search.Edge[Pose, int]{To: Pose{At: ahead, Facing: p.Facing}, Cost: opts.StepCost})
			}
			out = append(out,
				search.Edge[Pose, int]{To: Pose{At: p.At, Facing: p.Facing.Left()}, Cost: opts.TurnCost},
				search.Edge[Pose, int]{To: Pose{At: p.At, Facing: p.Facing.Right()}, Cost: opts.TurnCost},
			)
			return out
		},
	}
}

// Solve parses lines and solves the maze with the given options.
// A maze whose end is walled off returns an error wrapping search.ErrNoPath.
func Solve(lines []string, opts Options) (*Solution, error) {
	m, err := Parse(lines)
	if err != nil {
		return nil, err
	}
	return m.Solve(opts)
}

// Solve runs the search in all-paths mode and collects the tiles of every
// lowest-scoring route. Negative costs return ErrBadCost.
func (m *Maze) Solve(opts Options) (*Solution, error) {
	if opts.TurnCost < 0 || opts.StepCost < 0 {
		return nil, ErrBadCost
	}
	res, err := search.Search(m.Problem(opts),
		search.WithAllPaths(),
		search.WithSizeHint(4*m.Grid.Width*m.Grid.Height),
	)
	if err != nil {
		return nil, fmt.Errorf("maze: %v to %v: %w", m.Start, m.End, err)
	}

	tiles := make(map[grid.Point]struct{})
	for pose := range res.OptimalStates() {
		tiles[pose.At] = struct{}{}
	}

	drawn := m.Grid.Clone()
	for p := range tiles {
		drawn.Set(p, Path)
	}

	return &Solution{
		Cost:     res.Cost,
		Tiles:    len(tiles),
		Rendered: drawn.Format(Cell.Rune),
		Stats:    res.Stats,
	}, nil
}
