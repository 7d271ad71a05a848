package grid

import (
	"fmt"
	"math"

	"github.com/dshills/wfc/pkg/ruleset"
)

// Possibility is the bitset of tile indices still possible for a cell. It
// is the same representation ruleset uses for precomputed adjacency sets,
// so a cell's possibilities and a RuleSet's neighbor sets intersect
// directly without conversion.
type Possibility = ruleset.TileSet

// Cell is one grid position's solver-visible state: which tile indices
// remain possible, and whether it has been collapsed to exactly one.
type Cell struct {
	Possibilities Possibility
	Collapsed     bool
}

// Collapse narrows a cell to exactly one tile index and marks it
// collapsed.
func (c *Cell) Collapse(index int) {
	c.Possibilities = ruleset.SingleTileSet(c.Possibilities.Size(), index)
	c.Collapsed = true
}

// Grid is a flat, width×height, row-major array of cells — the same
// layout convention the teacher uses for its rasterized tile maps.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// New allocates a Width×Height grid with every cell initialized to full
// (every tile index possible, uncollapsed). Width and Height must both be
// positive.
func New(width, height int, full Possibility) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d", width, height)
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Possibilities: full.Clone()}
	}
	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index returns the flat row-major index for (x, y). The caller must
// ensure InBounds(x, y); Index does not check.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// At returns a pointer to the cell at (x, y), or nil if out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.Cells[g.Index(x, y)]
}

// Neighbor returns the coordinate one step from (x, y) in direction d, and
// whether that coordinate lies within the grid.
func (g *Grid) Neighbor(x, y int, d ruleset.Direction) (nx, ny int, ok bool) {
	switch d {
	case ruleset.Up:
		nx, ny = x, y-1
	case ruleset.Right:
		nx, ny = x+1, y
	case ruleset.Down:
		nx, ny = x, y+1
	default:
		nx, ny = x-1, y
	}
	return nx, ny, g.InBounds(nx, ny)
}

// Uncollapsed returns the number of cells not yet collapsed to a single
// tile.
func (g *Grid) Uncollapsed() int {
	n := 0
	for i := range g.Cells {
		if !g.Cells[i].Collapsed {
			n++
		}
	}
	return n
}

// Entropy computes the weighted Shannon entropy (base 2) of a possibility
// set under the given per-tile weights:
//
//	H = -Σ (w_t/W)·log2(w_t/W) = log2(W) - (Σ w_t·log2(w_t))/W
//
// summed over the set's member indices, where W is their weight total. A
// singleton or empty set has entropy 0.
func Entropy(p Possibility, weights []ruleset.Weight) float64 {
	indices := p.Indices()
	if len(indices) <= 1 {
		return 0
	}
	var sumW, sumWLogW float64
	for _, i := range indices {
		w := float64(weights[i])
		sumW += w
		sumWLogW += w * math.Log2(w)
	}
	if sumW == 0 {
		return 0
	}
	return math.Log2(sumW) - sumWLogW/sumW
}
