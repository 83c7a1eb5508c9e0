// Package grid provides a rectangular 2D grid of cells used to build search
// problems: parsing from text, bounds checks, lookups and rendering.
package grid

import "strings"

// Grid is a rectangular Width×Height array of cells stored in row-major
// order. Dimensions are fixed once built; cell values may be updated with Set.
// Reads outside the grid return the Outside value.
type Grid[T any] struct {
	Width, Height int
	Outside       T
	cells         []T
}

// New builds a w×h grid with every cell set to fill.
// Returns ErrBadSize if w or h is not positive.
// Complexity: O(W×H) time and memory.
func New[T any](w, h int, fill, outside T) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadSize
	}
	cells := make([]T, w*h)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{Width: w, Height: h, Outside: outside, cells: cells}, nil
}

// Parse builds a grid from text lines, converting each rune with convert.
// Trailing empty lines are ignored.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func Parse[T any](lines []string, convert func(rune) T, outside T) (*Grid[T], error) {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len([]rune(lines[0]))
	cells := make([]T, 0, w*h)
	for _, line := range lines {
		row := []rune(line)
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, r := range row {
			cells = append(cells, convert(r))
		}
	}
	return &Grid[T]{Width: w, Height: h, Outside: outside, cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the value at p, or Outside if p is off the grid.
func (g *Grid[T]) At(p Point) T {
	if !g.InBounds(p) {
		return g.Outside
	}
	return g.cells[g.Index(p)]
}

// Set stores v at p and reports whether p was on the grid.
func (g *Grid[T]) Set(p Point, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[g.Index(p)] = v
	return true
}

// Find returns the first point, in row-major order, whose value satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for i, v := range g.cells {
		if match(v) {
			return g.Coordinate(i), true
		}
	}
	return Point{}, false
}

// Neighbors returns the in-bounds neighbours of p under connectivity c.
func (g *Grid[T]) Neighbors(p Point, c Connectivity) []Point {
	offsets := c.NeighborOffsets()
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{Width: g.Width, Height: g.Height, Outside: g.Outside, cells: cells}
}

// Format renders the grid one line per row, each line ending in '\n'.
func (g *Grid[T]) Format(render func(T) rune) string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(render(g.cells[y*g.Width+x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Index maps p to its row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid[T]) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row‑major index back to a Point.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{idx % g.Width, idx / g.Width}
}
