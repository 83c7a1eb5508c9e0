// Package grid defines coordinates, directions and connectivity for 2D
// grids of cells.
package grid

import "fmt"

// Point is a cell coordinate. X grows to the east, Y grows to the south.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Step returns the neighbour of p in direction d.
func (p Point) Step(d Dir) Point { return p.Add(d.Delta()) }

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int { return abs(p.X-q.X) + abs(p.Y-q.Y) }

// WithinManhattan returns every point q != p with p.Manhattan(q) <= r.
// Complexity: O(r²).
func (p Point) WithinManhattan(r int) []Point {
	if r <= 0 {
		return nil
	}
	out := make([]Point, 0, 2*r*(r+1))
	for dy := -r; dy <= r; dy++ {
		span := r - abs(dy)
		for dx := -span; dx <= span; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Point{p.X + dx, p.Y + dy})
		}
	}
	return out
}

// String formats p as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dir is one of the four compass directions, in clockwise order.
type Dir int

const (
	North Dir = iota
	East
	South
	West
)

var dirDeltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit offset of d.
func (d Dir) Delta() Point { return dirDeltas[d&3] }

// Right returns d turned 90° clockwise.
func (d Dir) Right() Dir { return (d + 1) & 3 }

// Left returns d turned 90° counter-clockwise.
func (d Dir) Left() Dir { return (d + 3) & 3 }

// String returns the single-letter compass name.
func (d Dir) String() string {
	return [4]string{"N", "E", "S", "W"}[d&3]
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// NeighborOffsets returns the neighbour offsets for c.
func (c Connectivity) NeighborOffsets() []Point {
	if c == Conn8 {
		return []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}
