package ruleset

import "sort"

// RuleSet is an immutable tile universe: the set of tile identifiers, each
// tile's selection weight, and a per-direction adjacency relation. Build a
// RuleSet with Builder; the handed-out RuleSet never mutates afterward, so
// it may be shared read-only across any number of concurrent Solver runs.
type RuleSet struct {
	tiles     []TileID // sorted ascending, index i == the bitset bit for tiles[i]
	index     map[TileID]int
	weights   []Weight            // aligned with tiles
	adjacency [][4]TileSet        // adjacency[i][d] = allowed neighbor tiles in direction d from tiles[i]
}

// Builder accumulates tiles and adjacency entries before Build freezes
// them into a RuleSet. The zero value is ready to use.
type Builder struct {
	tiles   []TileID
	index   map[TileID]int
	weights map[TileID]Weight
	rules   map[TileID]map[Direction]map[TileID]bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		index:   make(map[TileID]int),
		weights: make(map[TileID]Weight),
		rules:   make(map[TileID]map[Direction]map[TileID]bool),
	}
}

// AddTile registers a tile with the given weight. Calling AddTile again
// for an id already added overwrites its weight. A zero weight argument
// means "use the default weight of 1", matching the canonical JSON
// format's default.
func (b *Builder) AddTile(id TileID, weight Weight) error {
	if id == "" {
		return ErrEmptyID
	}
	if weight == 0 {
		weight = 1
	}
	if weight < 0 {
		return &InvalidWeightError{ID: id, Weight: weight}
	}
	if _, ok := b.index[id]; !ok {
		b.index[id] = len(b.tiles)
		b.tiles = append(b.tiles, id)
	}
	b.weights[id] = weight
	return nil
}

// AddAdjacency records that tile `to` is permitted to sit in direction `d`
// from tile `from`. It auto-inserts the symmetric entry (from permitted in
// opposite(d) from to) so the RuleSet invariant
// b∈adjacency[(a,d)] ⇔ a∈adjacency[(b,opposite(d))] always holds.
func (b *Builder) AddAdjacency(from, to TileID, d Direction) {
	b.addDirected(from, d, to)
	b.addDirected(to, d.Opposite(), from)
}

func (b *Builder) addDirected(from TileID, d Direction, to TileID) {
	byDir, ok := b.rules[from]
	if !ok {
		byDir = make(map[Direction]map[TileID]bool)
		b.rules[from] = byDir
	}
	set, ok := byDir[d]
	if !ok {
		set = make(map[TileID]bool)
		byDir[d] = set
	}
	set[to] = true
}

// Build validates and freezes the accumulated tiles and rules into an
// immutable RuleSet. Every tile referenced by a rule must have been added
// via AddTile; Build fails with ErrNoTilesDefined if no tiles were added.
func (b *Builder) Build() (*RuleSet, error) {
	if len(b.tiles) == 0 {
		return nil, ErrNoTilesDefined
	}

	tiles := make([]TileID, len(b.tiles))
	copy(tiles, b.tiles)
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })

	index := make(map[TileID]int, len(tiles))
	weights := make([]Weight, len(tiles))
	for i, id := range tiles {
		index[id] = i
		weights[i] = b.weights[id]
	}

	size := len(tiles)
	adjacency := make([][4]TileSet, size)
	for i := range adjacency {
		for d := range adjacency[i] {
			adjacency[i][d] = NewTileSet(size)
		}
	}

	for from, byDir := range b.rules {
		fromIdx, ok := index[from]
		if !ok {
			return nil, &InvalidTileIDError{ID: from}
		}
		for d, set := range byDir {
			for to := range set {
				toIdx, ok := index[to]
				if !ok {
					return nil, &InvalidTileIDError{ID: to}
				}
				adjacency[fromIdx][d].Set(toIdx)
			}
		}
	}

	return &RuleSet{tiles: tiles, index: index, weights: weights, adjacency: adjacency}, nil
}

// TileCount returns the number of tiles in the universe.
func (r *RuleSet) TileCount() int { return len(r.tiles) }

// Tiles returns the tile ids in their fixed, sorted iteration order.
func (r *RuleSet) Tiles() []TileID {
	out := make([]TileID, len(r.tiles))
	copy(out, r.tiles)
	return out
}

// IndexOf returns the bitset index for id, or ok=false if id is unknown.
func (r *RuleSet) IndexOf(id TileID) (index int, ok bool) {
	i, ok := r.index[id]
	return i, ok
}

// TileAt returns the tile id for a bitset index. Panics if index is out
// of range, matching the contract that callers only ever pass indices
// obtained from this same RuleSet.
func (r *RuleSet) TileAt(index int) TileID {
	return r.tiles[index]
}

// Weight returns tile id's selection weight. Fails with InvalidTileIDError
// on an unknown id.
func (r *RuleSet) Weight(id TileID) (Weight, error) {
	i, ok := r.index[id]
	if !ok {
		return 0, &InvalidTileIDError{ID: id}
	}
	return r.weights[i], nil
}

// WeightAt returns the weight for a bitset index directly, avoiding a map
// lookup on the Solver's hot path.
func (r *RuleSet) WeightAt(index int) Weight {
	return r.weights[index]
}

// Full returns a bitset with every tile present — the initial possibility
// set for a freshly constructed cell.
func (r *RuleSet) Full() TileSet {
	return FullTileSet(len(r.tiles))
}

// ValidNeighbors returns the precomputed set of tiles permitted to sit in
// direction d from tile. Fails with InvalidTileIDError on an unknown tile.
func (r *RuleSet) ValidNeighbors(tile TileID, d Direction) (TileSet, error) {
	i, ok := r.index[tile]
	if !ok {
		return TileSet{}, &InvalidTileIDError{ID: tile}
	}
	return r.adjacency[i][d], nil
}

// ValidNeighborsAt is ValidNeighbors addressed by bitset index, used by
// the Solver's propagation inner loop.
func (r *RuleSet) ValidNeighborsAt(index int, d Direction) TileSet {
	return r.adjacency[index][d]
}
