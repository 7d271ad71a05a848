package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/wfc/pkg/grid"
	"github.com/dshills/wfc/pkg/ruleset"
)

// Violation is one constraint failure Verify found: the tile at
// NeighborIndex, which lies in Direction from CellIndex, is not a
// permitted neighbor in that direction of the tile at CellIndex.
type Violation struct {
	CellIndex     int
	NeighborIndex int
	Direction     ruleset.Direction
	Tile          ruleset.TileID
	NeighborTile  ruleset.TileID
}

// Report is the result of auditing a grid: whether every cell is
// collapsed and every adjacent pair satisfies the RuleSet's adjacency
// relation, plus a tile-usage histogram over collapsed cells.
type Report struct {
	Passed           bool
	UncollapsedCells []int
	Violations       []Violation
	TileUsage        map[ruleset.TileID]int
}

// Verify re-checks a grid's constraint soundness (spec Testable Property
// 4) cell by cell and tallies tile usage. It never mutates g or rs.
func Verify(g *grid.Grid, rs *ruleset.RuleSet) Report {
	r := Report{
		Passed:    true,
		TileUsage: make(map[ruleset.TileID]int),
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.Index(x, y)
			c := g.Cells[i]
			if !c.Collapsed {
				r.UncollapsedCells = append(r.UncollapsedCells, i)
				r.Passed = false
				continue
			}
			idx, _ := c.Possibilities.Single()
			tile := rs.TileAt(idx)
			r.TileUsage[tile]++

			for _, d := range ruleset.Directions {
				nx, ny, ok := g.Neighbor(x, y, d)
				if !ok {
					continue
				}
				nc := g.Cells[g.Index(nx, ny)]
				if !nc.Collapsed {
					continue
				}
				nIdx, _ := nc.Possibilities.Single()
				allowed := rs.ValidNeighborsAt(idx, d)
				if !allowed.Has(nIdx) {
					r.Violations = append(r.Violations, Violation{
						CellIndex:     i,
						NeighborIndex: g.Index(nx, ny),
						Direction:     d,
						Tile:          tile,
						NeighborTile:  rs.TileAt(nIdx),
					})
					r.Passed = false
				}
			}
		}
	}

	return r
}

// Summary returns a human-readable rendering of a Report.
func Summary(r Report) string {
	var b strings.Builder
	b.WriteString("=== Constraint Report ===\n\n")
	if r.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}

	if len(r.UncollapsedCells) > 0 {
		fmt.Fprintf(&b, "\nUncollapsed cells: %d\n", len(r.UncollapsedCells))
	}
	if len(r.Violations) > 0 {
		fmt.Fprintf(&b, "\nConstraint violations: %d\n", len(r.Violations))
		for _, v := range r.Violations {
			fmt.Fprintf(&b, "  cell %d (%s) -> %s -> cell %d (%s)\n",
				v.CellIndex, v.Tile, v.Direction, v.NeighborIndex, v.NeighborTile)
		}
	}

	if len(r.TileUsage) > 0 {
		b.WriteString("\nTile usage:\n")
		for _, id := range sortedTileIDs(r.TileUsage) {
			fmt.Fprintf(&b, "  %s: %d\n", id, r.TileUsage[id])
		}
	}

	return b.String()
}

func sortedTileIDs(usage map[ruleset.TileID]int) []ruleset.TileID {
	ids := make([]ruleset.TileID, 0, len(usage))
	for id := range usage {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
