// Package racetrack measures shortcuts on a single-lane race track: a cheat
// lets the racer pass through walls for up to radius moves, and its saving is
// the track time skipped minus the moves spent cheating.
package racetrack

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/bestfirst/grid"
	"github.com/katalvlaran/bestfirst/search"
)

// Sentinel errors.
var (
	ErrNoStart   = errors.New("racetrack: no start cell 'S'")
	ErrNoEnd     = errors.New("racetrack: no end cell 'E'")
	ErrBadRadius = errors.New("racetrack: cheat radius must be non-negative")
)

const wall = '#'

// Track is a parsed race track. Off-grid cells are walls.
type Track struct {
	Grid  *grid.Grid[rune]
	Start grid.Point
	End   grid.Point
}

// Parse reads a track of '#', '.', 'S' and 'E'.
func Parse(lines []string) (*Track, error) {
	g, err := grid.Parse(lines, func(r rune) rune { return r }, wall)
	if err != nil {
		return nil, fmt.Errorf("racetrack: %w", err)
	}
	start, ok := g.Find(func(r rune) bool { return r == 'S' })
	if !ok {
		return nil, ErrNoStart
	}
	end, ok := g.Find(func(r rune) bool { return r == 'E' })
	if !ok {
		return nil, ErrNoEnd
	}
	return &Track{Grid: g, Start: start, End: end}, nil
}

// Lap is the fastest honest run plus the time at which each of its cells is
// reached.
type Lap struct {
	Path  []grid.Point
	Time  map[grid.Point]int
	Stats search.Stats
}

// Length returns the number of moves in the lap.
func (l *Lap) Length() int { return len(l.Path) - 1 }

// Run finds the fastest lap from S to E without cheating.
func (t *Track) Run() (*Lap, error) {
	res, err := search.Search(search.Problem[grid.Point, int]{
		Start:  t.Start,
		IsGoal: func(p grid.Point) bool { return p == t.End },
		Neighbors: func(p grid.Point) []search.Edge[grid.Point, int] {
			out := make([]search.Edge[grid.Point, int], 0, 4)
			for _, q := range t.Grid.Neighbors(p, grid.Conn4) {
				if t.Grid.At(q) != wall {
					out = append(out, search.Edge[grid.Point, int]{To: q, Cost: 1})
				}
			}
			return out
		},
		Heuristic: func(p grid.Point) int { return p.Manhattan(t.End) },
	}, search.WithSizeHint(t.Grid.Width*t.Grid.Height))
	if err != nil {
		return nil, fmt.Errorf("racetrack: %v to %v: %w", t.Start, t.End, err)
	}

	path := res.Path()
	times := make(map[grid.Point]int, len(path))
	for _, p := range path {
		c, _ := res.Index.CostTo(p)
		times[p] = c
	}
	return &Lap{Path: path, Time: times, Stats: res.Stats}, nil
}

// Cheat is one shortcut between two lap cells.
type Cheat struct {
	From, To grid.Point
	Saved    int
}

// Cheats lists every shortcut of at most radius moves that saves time,
// ordered by saving, then by position along the lap.
func (l *Lap) Cheats(radius int) []Cheat {
	var out []Cheat
	for _, p := range l.Path {
		tp := l.Time[p]
		for _, q := range p.WithinManhattan(radius) {
			tq, ok := l.Time[q]
			if !ok {
				continue
			}
			if saved := tq - tp - p.Manhattan(q); saved > 0 {
				out = append(out, Cheat{From: p, To: q, Saved: saved})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Saved < out[j].Saved })
	return out
}

// Report summarises the cheats available at one radius.
//
// Length – moves in the honest lap.
// Saved  – number of cheats per time saved.
// Stats  – engine counters of the lap search.
type Report struct {
	Length int
	Saved  map[int]int
	Stats  search.Stats
}

// AtLeast returns the number of cheats saving min or more.
func (r *Report) AtLeast(min int) int {
	n := 0
	for s, c := range r.Saved {
		if s >= min {
			n += c
		}
	}
	return n
}

// Savings parses lines, runs the lap and tallies every cheat of at most
// radius moves.
func Savings(lines []string, radius int) (*Report, error) {
	if radius < 0 {
		return nil, ErrBadRadius
	}
	t, err := Parse(lines)
	if err != nil {
		return nil, err
	}
	lap, err := t.Run()
	if err != nil {
		return nil, err
	}
	r := &Report{Length: lap.Length(), Saved: make(map[int]int), Stats: lap.Stats}
	for _, c := range lap.Cheats(radius) {
		r.Saved[c.Saved]++
	}
	return r, nil
}

// CountCheats returns how many cheats of at most radius moves save at least
// minSave.
func CountCheats(lines []string, radius, minSave int) (int, error) {
	r, err := Savings(lines, radius)
	if err != nil {
		return 0, err
	}
	return r.AtLeast(minSave), nil
}
