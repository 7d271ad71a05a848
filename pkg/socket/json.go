package socket

import (
	"bytes"
	"encoding/json"

	"github.com/dshills/wfc/pkg/ruleset"
)

// jsonSocketRef mirrors one entry of a sockets.* array: a socket id and an
// optional per-socket weight, carried through as derivation metadata.
type jsonSocketRef struct {
	SocketID string `json:"socketId"`
	Weight   int    `json:"weight,omitempty"`
}

// jsonEdges mirrors the "sockets" object of one base tile.
type jsonEdges struct {
	Top    []jsonSocketRef `json:"top"`
	Right  []jsonSocketRef `json:"right"`
	Bottom []jsonSocketRef `json:"bottom"`
	Left   []jsonSocketRef `json:"left"`
}

// jsonBaseTile mirrors one entry of the socket-derivation input format's
// "tiles" array (spec.md §6, the boundary with the editor collaborator).
type jsonBaseTile struct {
	ID       string    `json:"id"`
	Weight   int       `json:"weight,omitempty"`
	Symmetry string    `json:"symmetry"`
	Sockets  jsonEdges `json:"sockets"`
}

type jsonBaseDocument struct {
	Tiles []jsonBaseTile `json:"tiles"`
}

// JSONParseError reports malformed socket-derivation input.
type JSONParseError struct {
	Message string
	Offset  int64
}

func (e *JSONParseError) Error() string {
	if e.Offset > 0 {
		return "socket: parse error at offset " + itoa(e.Offset) + ": " + e.Message
	}
	return "socket: parse error: " + e.Message
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func toRefs(in []jsonSocketRef) []SocketRef {
	out := make([]SocketRef, len(in))
	for i, r := range in {
		out[i] = SocketRef{ID: r.SocketID, Weight: r.Weight}
	}
	return out
}

// ParseBaseTiles decodes the socket-derivation input format into a slice
// of BaseTile ready for Expand. Unknown fields are ignored.
func ParseBaseTiles(data []byte) ([]BaseTile, error) {
	var doc jsonBaseDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, &JSONParseError{Message: err.Error(), Offset: dec.InputOffset()}
	}

	bases := make([]BaseTile, len(doc.Tiles))
	for i, t := range doc.Tiles {
		bases[i] = BaseTile{
			ID:       ruleset.TileID(t.ID),
			Weight:   ruleset.Weight(t.Weight),
			Symmetry: SymmetryClass(t.Symmetry),
			Edges: EdgeSockets{
				Top:    toRefs(t.Sockets.Top),
				Right:  toRefs(t.Sockets.Right),
				Bottom: toRefs(t.Sockets.Bottom),
				Left:   toRefs(t.Sockets.Left),
			},
		}
	}
	return bases, nil
}
