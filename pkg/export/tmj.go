package export

import (
	"github.com/dshills/wfc/pkg/grid"
	"github.com/dshills/wfc/pkg/ruleset"
)

// TMJ format types, following the Tiled Map Editor JSON specification
// (TMJ 1.10). Reference: https://doc.mapeditor.org/en/stable/reference/json-map-format/

// TMJMap represents the root TMJ map structure.
type TMJMap struct {
	Type             string        `json:"type"`
	Version          string        `json:"version"`
	TiledVersion     string        `json:"tiledversion"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	TileWidth        int           `json:"tilewidth"`
	TileHeight       int           `json:"tileheight"`
	Orientation      string        `json:"orientation"`
	RenderOrder      string        `json:"renderorder"`
	Infinite         bool          `json:"infinite"`
	NextLayerID      int           `json:"nextlayerid"`
	NextObjectID     int           `json:"nextobjectid"`
	CompressionLevel int           `json:"compressionlevel"`
	Layers           []TMJLayer    `json:"layers"`
	Tilesets         []TMJTileset  `json:"tilesets"`
	Properties       []TMJProperty `json:"properties,omitempty"`
}

// TMJLayer represents a single tile layer.
type TMJLayer struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Visible  bool     `json:"visible"`
	Opacity  float64  `json:"opacity"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
	Data     []uint32 `json:"data,omitempty"`
	Encoding string   `json:"encoding,omitempty"`
}

// TMJTileset references the flat pool of tile GIDs the solved grid draws
// from. One tileset is emitted per export, with one GID per RuleSet tile
// in RuleSet.Tiles() order.
type TMJTileset struct {
	FirstGID  uint32        `json:"firstgid"`
	Name      string        `json:"name,omitempty"`
	TileCount int           `json:"tilecount,omitempty"`
	Columns   int           `json:"columns,omitempty"`
	Properties []TMJProperty `json:"properties,omitempty"`
}

// TMJProperty is a named custom property; used here to carry each GID's
// source tile id, since this module has no image atlas to look tiles up
// in.
type TMJProperty struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ExportTMJ builds a single-layer, Tiled-compatible TMJ document from a
// fully collapsed grid. tileWidth and tileHeight are pixel dimensions
// recorded in the document only; this package performs no rendering.
// GIDs are 1-based indices into rs.Tiles() (GID 0 is Tiled's reserved
// "empty" marker), recorded as TMJProperty entries on the tileset so a
// consumer can map a GID back to a tile id without an external atlas.
func ExportTMJ(g *grid.Grid, rs *ruleset.RuleSet, tileWidth, tileHeight int) (*TMJMap, error) {
	data := make([]uint32, len(g.Cells))
	for i, c := range g.Cells {
		idx, ok := c.Possibilities.Single()
		if !ok {
			return nil, &UncollapsedCellError{CellIndex: i}
		}
		data[i] = uint32(idx) + 1
	}

	props := make([]TMJProperty, rs.TileCount())
	for i, id := range rs.Tiles() {
		props[i] = TMJProperty{Name: "gid", Type: "string", Value: string(id)}
	}

	return &TMJMap{
		Type:             "map",
		Version:          "1.10",
		TiledVersion:     "1.10.2",
		Width:            g.Width,
		Height:           g.Height,
		TileWidth:        tileWidth,
		TileHeight:       tileHeight,
		Orientation:      "orthogonal",
		RenderOrder:      "right-down",
		Infinite:         false,
		NextLayerID:      2,
		NextObjectID:     1,
		CompressionLevel: -1,
		Layers: []TMJLayer{
			{
				ID:       1,
				Name:     "solved",
				Type:     "tilelayer",
				Visible:  true,
				Opacity:  1.0,
				Width:    g.Width,
				Height:   g.Height,
				Data:     data,
				Encoding: "csv",
			},
		},
		Tilesets: []TMJTileset{
			{
				FirstGID:   1,
				Name:       "wfc",
				TileCount:  rs.TileCount(),
				Columns:    rs.TileCount(),
				Properties: props,
			},
		},
	}, nil
}
