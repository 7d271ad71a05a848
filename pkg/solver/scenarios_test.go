package solver

import (
	"context"
	"testing"

	"github.com/dshills/wfc/pkg/ruleset"
)

// S1. Singleton tile, 3x3. A self-adjacent in all four directions.
// Expected: nine A's, any seed.
func TestScenario_S1_SingletonTile(t *testing.T) {
	b := ruleset.NewBuilder()
	if err := b.AddTile("A", 1); err != nil {
		t.Fatalf("AddTile: %v", err)
	}
	for _, d := range ruleset.Directions {
		b.AddAdjacency("A", "A", d)
	}
	rs, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	m, err := New(3, 3, rs, seed(7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(g.Cells) != 9 {
		t.Fatalf("expected 9 cells, got %d", len(g.Cells))
	}
	for i := range g.Cells {
		if tileAt(g, rs, i) != "A" {
			t.Fatalf("cell %d: expected A, got %q", i, tileAt(g, rs, i))
		}
	}
}

// S2. Two incompatible tiles, no adjacency rules at all, 2x2. Expected:
// Contradiction after the first collapse's propagation eliminates every
// possibility from a neighbor.
func TestScenario_S2_IncompatibleTilesContradict(t *testing.T) {
	b := ruleset.NewBuilder()
	if err := b.AddTile("A", 1); err != nil {
		t.Fatalf("AddTile: %v", err)
	}
	if err := b.AddTile("B", 1); err != nil {
		t.Fatalf("AddTile: %v", err)
	}
	rs, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	m, err := New(2, 2, rs, seed(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = m.Run(context.Background())
	if err == nil {
		t.Fatal("expected Contradiction, got success")
	}
	if _, ok := err.(*ContradictionError); !ok {
		t.Fatalf("expected *ContradictionError, got %T: %v", err, err)
	}
}

// S3. Checkerboard. Tiles {A, B}, rules: only A<->B in all four
// directions (no A-A, no B-B). 4x4. Expected: a valid checkerboard — every
// adjacent pair differs.
func TestScenario_S3_Checkerboard(t *testing.T) {
	b := ruleset.NewBuilder()
	for _, id := range []ruleset.TileID{"A", "B"} {
		if err := b.AddTile(id, 1); err != nil {
			t.Fatalf("AddTile: %v", err)
		}
	}
	for _, d := range ruleset.Directions {
		b.AddAdjacency("A", "B", d)
	}
	rs, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	m, err := New(4, 4, rs, seed(123))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := g.Index(x, y)
			ti := tileAt(g, rs, i)
			for _, d := range ruleset.Directions {
				nx, ny, ok := g.Neighbor(x, y, d)
				if !ok {
					continue
				}
				j := g.Index(nx, ny)
				tj := tileAt(g, rs, j)
				if ti == tj {
					t.Fatalf("checkerboard violated at (%d,%d)-(%d,%d): both %q", x, y, nx, ny, ti)
				}
			}
		}
	}
}

// S4 / Property 6. Determinism: same width, height, ruleset, and seed
// produce byte-identical grids across two runs.
func TestScenario_S4_Determinism(t *testing.T) {
	b := ruleset.NewBuilder()
	for _, id := range []ruleset.TileID{"A", "B", "C"} {
		if err := b.AddTile(id, 1); err != nil {
			t.Fatalf("AddTile: %v", err)
		}
	}
	for _, a := range []ruleset.TileID{"A", "B", "C"} {
		for _, bID := range []ruleset.TileID{"A", "B", "C"} {
			for _, d := range ruleset.Directions {
				b.AddAdjacency(a, bID, d)
			}
		}
	}
	rs, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	run := func() []ruleset.TileID {
		m, err := New(5, 5, rs, seed(42))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		g, err := m.Run(context.Background())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		out := make([]ruleset.TileID, len(g.Cells))
		for i := range g.Cells {
			out[i] = tileAt(g, rs, i)
		}
		return out
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cell %d differs between runs: %q vs %q", i, first[i], second[i])
		}
	}
}
