package export

import (
	"encoding/json"

	"github.com/dshills/wfc/pkg/grid"
	"github.com/dshills/wfc/pkg/ruleset"
)

// gridDocument is the JSON shape a solved grid exports to: width, height,
// and a flat row-major array of tile id strings.
type gridDocument struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  []string `json:"tiles"`
}

func toDocument(g *grid.Grid, rs *ruleset.RuleSet) (*gridDocument, error) {
	tiles := make([]string, len(g.Cells))
	for i, c := range g.Cells {
		idx, ok := c.Possibilities.Single()
		if !ok {
			return nil, &UncollapsedCellError{CellIndex: i}
		}
		tiles[i] = string(rs.TileAt(idx))
	}
	return &gridDocument{Width: g.Width, Height: g.Height, Tiles: tiles}, nil
}

// ExportJSON serializes a fully collapsed grid to indented JSON.
func ExportJSON(g *grid.Grid, rs *ruleset.RuleSet) ([]byte, error) {
	doc, err := toDocument(g, rs)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportJSONCompact serializes a fully collapsed grid to JSON without
// indentation.
func ExportJSONCompact(g *grid.Grid, rs *ruleset.RuleSet) ([]byte, error) {
	doc, err := toDocument(g, rs)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
