package export

import (
	"encoding/json"
	"testing"

	"github.com/dshills/wfc/pkg/grid"
	"github.com/dshills/wfc/pkg/ruleset"
)

func solvedGrid(t *testing.T, rs *ruleset.RuleSet, width, height int, choice func(i int) int) *grid.Grid {
	t.Helper()
	g, err := grid.New(width, height, rs.Full())
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	for i := range g.Cells {
		g.Cells[i].Collapse(choice(i))
	}
	return g
}

func twoTileRuleSet(t *testing.T) *ruleset.RuleSet {
	t.Helper()
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
	return rs
}

func TestExportJSON_RoundTripShape(t *testing.T) {
	rs := twoTileRuleSet(t)
	g := solvedGrid(t, rs, 2, 2, func(i int) int { return i % 2 })

	data, err := ExportJSON(g, rs)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	var doc gridDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Width != 2 || doc.Height != 2 {
		t.Fatalf("unexpected dims: %dx%d", doc.Width, doc.Height)
	}
	want := []string{"A", "B", "A", "B"}
	for i, tile := range want {
		if doc.Tiles[i] != tile {
			t.Fatalf("tile %d: expected %q, got %q", i, tile, doc.Tiles[i])
		}
	}
}

func TestExportJSON_UncollapsedCellIsError(t *testing.T) {
	rs := twoTileRuleSet(t)
	g, err := grid.New(1, 1, rs.Full())
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	if _, err := ExportJSON(g, rs); err == nil {
		t.Fatal("expected error exporting an uncollapsed grid")
	}
}

func TestExportTMJ_Shape(t *testing.T) {
	rs := twoTileRuleSet(t)
	g := solvedGrid(t, rs, 2, 1, func(i int) int { return i % 2 })

	m, err := ExportTMJ(g, rs, 16, 16)
	if err != nil {
		t.Fatalf("ExportTMJ: %v", err)
	}
	if m.Width != 2 || m.Height != 1 {
		t.Fatalf("unexpected dims: %dx%d", m.Width, m.Height)
	}
	if len(m.Layers) != 1 || m.Layers[0].Type != "tilelayer" {
		t.Fatal("expected exactly one tile layer")
	}
	if len(m.Layers[0].Data) != 2 {
		t.Fatalf("expected 2 data entries, got %d", len(m.Layers[0].Data))
	}
	if m.Layers[0].Data[0] == 0 || m.Layers[0].Data[1] == 0 {
		t.Fatal("GID 0 is Tiled's reserved empty marker and must not appear in solved data")
	}
	if len(m.Tilesets) != 1 || m.Tilesets[0].TileCount != 2 {
		t.Fatalf("expected one tileset with 2 tiles, got %+v", m.Tilesets)
	}
}
