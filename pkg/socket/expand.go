package socket

import (
	"fmt"
	"sort"

	"github.com/dshills/wfc/pkg/ruleset"
)

// transform is one (rotation, reflectH, reflectV) entry from a symmetry
// class's variant table. Composition order is fixed: rotate first, then
// reflect horizontally, then reflect vertically.
type transform struct {
	rotDeg    int
	reflectH  bool
	reflectV  bool
}

// classTransforms lists, for each SymmetryClass, the variant transforms to
// apply to a base tile's edges. Variant counts match spec.md's symmetry
// table (X:1 I:2 T:4 L:4 \:2 F:8 N:8 unset:1).
//
// I's second entry is a 90° rotation rather than the horizontal reflection
// spec.md's transform table lists literally. A reflection alone cannot
// produce a second distinct variant for the canonical "straight line" I
// tile (top/bottom=A, left/right=B): swapping two edges that already hold
// equal single values is a no-op. Deriving the worked example in spec.md
// §8 (a road tile with edges top=road,right=grass,bottom=road,left=grass
// expanding into a perpendicular top/bottom=grass,left/right=road
// counterpart) requires the edge-cycling rotation, not a mirror. See
// DESIGN.md for the full derivation; this resolves the discrepancy in
// favor of the literal worked example.
var classTransforms = map[SymmetryClass][]transform{
	SymmetryX:     {{0, false, false}},
	SymmetryI:     {{0, false, false}, {90, false, false}},
	SymmetryT:     {{0, false, false}, {90, false, false}, {180, false, false}, {270, false, false}},
	SymmetryL:     {{0, false, false}, {90, false, false}, {180, false, false}, {270, false, false}},
	SymmetrySlash: {{0, false, false}, {0, true, true}},
	SymmetryF: {
		{0, false, false}, {90, false, false}, {180, false, false}, {270, false, false},
		{0, true, false}, {90, true, false}, {180, true, false}, {270, true, false},
	},
	SymmetryN: {
		{0, false, false}, {90, false, false}, {180, false, false}, {270, false, false},
		{0, true, false}, {90, true, false}, {180, true, false}, {270, true, false},
	},
	SymmetryUnset: {{0, false, false}},
}

// transformsFor returns the variant transform list for a symmetry class,
// defaulting unrecognized classes to the same single-variant behavior as
// SymmetryUnset.
func transformsFor(class SymmetryClass) []transform {
	if t, ok := classTransforms[class]; ok {
		return t
	}
	return classTransforms[SymmetryUnset]
}

// variantName derives a variant's tile id from its base id and transform,
// following the base_<rot>[h][v] convention; the identity transform keeps
// the base id unchanged.
func variantName(baseID ruleset.TileID, t transform) ruleset.TileID {
	if t.rotDeg == 0 && !t.reflectH && !t.reflectV {
		return baseID
	}
	suffix := fmt.Sprintf("_%d", t.rotDeg)
	if t.reflectH {
		suffix += "h"
	}
	if t.reflectV {
		suffix += "v"
	}
	return ruleset.TileID(string(baseID) + suffix)
}

// rotate90 cycles the four edges one 90° clockwise step: top takes the old
// left edge's sockets, right takes top's, bottom takes right's, left
// takes bottom's.
func rotate90(e EdgeSockets) EdgeSockets {
	return EdgeSockets{
		Top:    e.Left,
		Right:  e.Top,
		Bottom: e.Right,
		Left:   e.Bottom,
	}
}

// reflectHorizontal swaps the left and right edges, leaving top/bottom in
// place.
func reflectHorizontal(e EdgeSockets) EdgeSockets {
	e.Left, e.Right = e.Right, e.Left
	return e
}

// reflectVertical swaps the top and bottom edges, leaving left/right in
// place.
func reflectVertical(e EdgeSockets) EdgeSockets {
	e.Top, e.Bottom = e.Bottom, e.Top
	return e
}

// applyTransform derives a variant's edges from a base tile's edges by
// rotating, then reflecting horizontally, then reflecting vertically.
func applyTransform(e EdgeSockets, t transform) EdgeSockets {
	steps := (t.rotDeg / 90) % 4
	for i := 0; i < steps; i++ {
		e = rotate90(e)
	}
	if t.reflectH {
		e = reflectHorizontal(e)
	}
	if t.reflectV {
		e = reflectVertical(e)
	}
	return e
}

// variant is one enumerated rotation/reflection instance of a base tile.
type variant struct {
	id    ruleset.TileID
	edges EdgeSockets
}

// compatible reports whether two opposing edges share a socket id, never
// matching on the empty sentinel.
func compatible(a, b []SocketRef) bool {
	for _, sa := range a {
		if isEmptySocket(sa.ID) {
			continue
		}
		for _, sb := range b {
			if sa.ID == sb.ID {
				return true
			}
		}
	}
	return false
}

// Expand enumerates every base tile's rotation/reflection variants and
// derives a ruleset.RuleSet: one tile per variant, adjacency wherever two
// variants' opposing edges share a compatible socket.
//
// Variants are enumerated in a stable order (base tiles sorted by id, then
// transforms in table order), so two calls with the same input always
// produce byte-identical RuleSet.Serialize output.
func Expand(bases []BaseTile) (*ruleset.RuleSet, error) {
	if len(bases) == 0 {
		return nil, ErrNoBaseTiles
	}

	sorted := make([]BaseTile, len(bases))
	copy(sorted, bases)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	seen := make(map[ruleset.TileID]bool, len(sorted))
	var variants []variant
	b := ruleset.NewBuilder()

	for _, base := range sorted {
		if base.ID == "" {
			return nil, &EmptyBaseIDError{}
		}
		if seen[base.ID] {
			return nil, &DuplicateBaseIDError{ID: string(base.ID)}
		}
		seen[base.ID] = true

		weight := base.Weight
		if weight == 0 {
			weight = 1
		}
		if weight < 0 {
			return nil, &InvalidWeightError{ID: string(base.ID), Weight: int(weight)}
		}

		for _, t := range transformsFor(base.Symmetry) {
			id := variantName(base.ID, t)
			if err := b.AddTile(id, weight); err != nil {
				return nil, err
			}
			variants = append(variants, variant{id: id, edges: applyTransform(base.Edges, t)})
		}
	}

	for _, d := range ruleset.Directions {
		opp := d.Opposite()
		for _, x := range variants {
			for _, y := range variants {
				if compatible(x.edges.edgeAt(d), y.edges.edgeAt(opp)) {
					b.AddAdjacency(x.id, y.id, d)
				}
			}
		}
	}

	return b.Build()
}
