// Package bytefall finds routes across a square memory grid that is being
// corrupted one byte at a time, and the first byte that cuts the exit off.
package bytefall

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/bestfirst/grid"
	"github.com/katalvlaran/bestfirst/search"
)

// Sentinel errors.
var (
	// ErrBadPoint indicates an input line is not "x,y".
	ErrBadPoint = errors.New("bytefall: malformed coordinate")
	// ErrBadOptions indicates a negative Size or Fallen, or Fallen beyond the input.
	ErrBadOptions = errors.New("bytefall: invalid options")
	// ErrNeverBlocked indicates the exit stays reachable after every byte.
	ErrNeverBlocked = errors.New("bytefall: exit never blocked")
)

// Options describes the memory space.
//
// Size   – largest coordinate; the grid spans 0..Size on both axes and the
//
//	exit is (Size, Size). Default 70.
//
// Fallen – number of bytes that have already landed. Default 1024.
type Options struct {
	Size   int
	Fallen int
}

// DefaultOptions returns the full-size puzzle settings.
func DefaultOptions() Options {
	return Options{Size: 70, Fallen: 1024}
}

// Route is one shortest route through the memory space.
type Route struct {
	Steps int
	Cells map[grid.Point]struct{}
	Stats search.Stats
}

// ParsePoints reads one "x,y" coordinate per non-empty line.
func ParsePoints(lines []string) ([]grid.Point, error) {
	out := make([]grid.Point, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadPoint, i+1, line)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadPoint, i+1, line)
		}
		out = append(out, grid.Pt(x, y))
	}
	return out, nil
}

// MinSteps returns the shortest route from (0,0) to (Size,Size) once the
// first n bytes have fallen. An unreachable exit returns an error wrapping
// search.ErrNoPath.
func MinSteps(bytes []grid.Point, n int, opts Options) (*Route, error) {
	if opts.Size < 0 || n < 0 || n > len(bytes) {
		return nil, ErrBadOptions
	}
	space, err := memory(opts.Size)
	if err != nil {
		return nil, err
	}
	for _, p := range bytes[:n] {
		space.Set(p, true)
	}
	return route(space, n)
}

// memory builds the (size+1)×(size+1) space. Cells hold true once
// corrupted; off-grid cells read as corrupted.
func memory(size int) (*grid.Grid[bool], error) {
	g, err := grid.New(size+1, size+1, false, true)
	if err != nil {
		return nil, fmt.Errorf("bytefall: %w", err)
	}
	return g, nil
}

// route runs A* with a Manhattan estimate over the free cells of space.
// fallen is only used to label errors.
func route(space *grid.Grid[bool], fallen int) (*Route, error) {
	exit := grid.Pt(space.Width-1, space.Height-1)

	res, err := search.Search(search.Problem[grid.Point, int]{
		Start:  grid.Pt(0, 0),
		IsGoal: func(p grid.Point) bool { return p == exit },
		Neighbors: func(p grid.Point) []search.Edge[grid.Point, int] {
			out := make([]search.Edge[grid.Point, int], 0, 4)
			for _, q := range space.Neighbors(p, grid.Conn4) {
				if !space.At(q) {
					out = append(out, search.Edge[grid.Point, int]{To: q, Cost: 1})
				}
			}
			return out
		},
		Heuristic: func(p grid.Point) int { return p.Manhattan(exit) },
	}, search.WithSizeHint(space.Width*space.Height))
	if err != nil {
		return nil, fmt.Errorf("bytefall: %d fallen: %w", fallen, err)
	}

	cells := make(map[grid.Point]struct{}, res.Cost+1)
	for _, p := range res.Path() {
		cells[p] = struct{}{}
	}
	return &Route{Steps: res.Cost, Cells: cells, Stats: res.Stats}, nil
}

// Blocker is the first byte that leaves no route to the exit.
type Blocker struct {
	Point    grid.Point
	Index    int          // position of the byte in the input, zero-based
	Searches int          // number of searches run, including the initial one
	Stats    search.Stats // summed over every search, the failing one included
}

// FirstBlocking adds bytes one by one after the first opts.Fallen and
// returns the first one that disconnects (0,0) from the exit. The search is
// re-run only when a byte lands on the current route.
// Returns an error wrapping search.ErrNoPath if the exit is already cut off
// after opts.Fallen bytes, and ErrNeverBlocked if it stays reachable after
// every byte.
func FirstBlocking(bytes []grid.Point, opts Options) (*Blocker, error) {
	if opts.Size < 0 || opts.Fallen < 0 || opts.Fallen > len(bytes) {
		return nil, ErrBadOptions
	}
	space, err := memory(opts.Size)
	if err != nil {
		return nil, err
	}
	for _, p := range bytes[:opts.Fallen] {
		space.Set(p, true)
	}

	b := &Blocker{}
	r, err := route(space, opts.Fallen)
	b.Searches++
	if err != nil {
		return nil, err
	}
	b.Stats.Add(r.Stats)

	for i := opts.Fallen; i < len(bytes); i++ {
		p := bytes[i]
		space.Set(p, true)
		if _, onRoute := r.Cells[p]; !onRoute {
			continue
		}
		next, err := route(space, i+1)
		b.Searches++
		var np *search.NoPathError
		if errors.As(err, &np) {
			b.Stats.Add(np.Stats)
			b.Point, b.Index = p, i
			return b, nil
		}
		if err != nil {
			return nil, err
		}
		b.Stats.Add(next.Stats)
		r = next
	}
	return nil, ErrNeverBlocked
}
