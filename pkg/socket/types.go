package socket

import "github.com/dshills/wfc/pkg/ruleset"

// SymmetryClass names one of the eight standard tile-symmetry groups used
// to enumerate rotation/reflection variants. The zero value, Unset, is
// treated the same as X: no variants beyond the tile itself.
type SymmetryClass string

const (
	SymmetryX      SymmetryClass = "X"
	SymmetryI      SymmetryClass = "I"
	SymmetryT      SymmetryClass = "T"
	SymmetryL      SymmetryClass = "L"
	SymmetrySlash  SymmetryClass = "\\"
	SymmetryF      SymmetryClass = "F"
	SymmetryN      SymmetryClass = "N"
	SymmetryUnset  SymmetryClass = ""
)

// isEmptySocket reports whether id is an empty-socket sentinel ("" or
// "0"). Such ids never match, even against themselves, so an edge can be
// declared "nothing connects here" without silently becoming compatible
// with another nothing-edge.
func isEmptySocket(id string) bool {
	return id == "" || id == "0"
}

// SocketRef names one socket a tile edge offers. Weight is carried through
// for callers that want to bias which of several compatible sockets an
// editor suggests first; Expand itself ignores it.
type SocketRef struct {
	ID     string
	Weight int
}

// EdgeSockets lists the sockets a tile offers on each of its four edges,
// in the tile's own unrotated orientation.
type EdgeSockets struct {
	Top    []SocketRef
	Right  []SocketRef
	Bottom []SocketRef
	Left   []SocketRef
}

// edgeAt returns the edge list facing direction d.
func (e EdgeSockets) edgeAt(d ruleset.Direction) []SocketRef {
	switch d {
	case ruleset.Up:
		return e.Top
	case ruleset.Right:
		return e.Right
	case ruleset.Down:
		return e.Bottom
	default:
		return e.Left
	}
}

// BaseTile is one user-authored tile before symmetry expansion: an id, a
// selection weight, a symmetry class, and its four edge-socket lists in
// the tile's base (unrotated, unreflected) orientation.
type BaseTile struct {
	ID       ruleset.TileID
	Weight   ruleset.Weight
	Symmetry SymmetryClass
	Edges    EdgeSockets
}
