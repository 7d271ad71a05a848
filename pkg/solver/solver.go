package solver

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/dshills/wfc/pkg/grid"
	"github.com/dshills/wfc/pkg/ruleset"
	"github.com/dshills/wfc/pkg/rng"
)

// jitterEpsilon bounds the per-cell tie-breaking jitter added to entropy
// before comparing cells: small enough never to reorder two genuinely
// distinct entropy values at double precision, per spec.
const jitterEpsilon = 1e-3

// Model is the stateful solver core: a Grid, a RuleSet shared read-only,
// a deterministic RNG, and a propagation worklist. Construct with New and
// call Run at most once.
type Model struct {
	width, height int
	rs            *ruleset.RuleSet
	grid          *grid.Grid
	rnd           *rng.RNG
	worklist      *worklist
	entropy       *entropyCache
	uncollapsed   int
	ran           bool
}

// New constructs a Model over a width×height grid against rs. seed may be
// nil, in which case a seed is drawn from crypto/rand. Fails with
// InvalidDimensionsError if either dimension is zero, or
// ruleset.ErrNoTilesDefined if rs has no tiles.
func New(width, height int, rs *ruleset.RuleSet, seed *uint64) (*Model, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidDimensionsError{Width: width, Height: height}
	}
	if rs.TileCount() == 0 {
		return nil, ruleset.ErrNoTilesDefined
	}

	s := seed
	if s == nil {
		drawn, err := randomSeed()
		if err != nil {
			return nil, err
		}
		s = &drawn
	}

	g, err := grid.New(width, height, rs.Full())
	if err != nil {
		return nil, err
	}

	var totalW, totalWLogW float64
	for i := 0; i < rs.TileCount(); i++ {
		w := float64(rs.WeightAt(i))
		totalW += w
		totalWLogW += w * math.Log2(w)
	}

	return &Model{
		width:       width,
		height:      height,
		rs:          rs,
		grid:        g,
		rnd:         rng.NewRNG(*s, "collapse", configHash(width, height, rs)),
		worklist:    newWorklist(width * height),
		entropy:     newEntropyCache(width*height, totalW, totalWLogW),
		uncollapsed: width * height,
	}, nil
}

// randomSeed draws a 64-bit seed from crypto/rand when the caller supplies
// no seed: a caller-independent entropy source per spec.md §3, chosen over
// a wall-clock read because crypto/rand cannot fail in a way that should
// change engine behavior.
func randomSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// configHash derives a stable byte fingerprint of the dimensions and
// RuleSet for RNG stage derivation, matching the teacher's
// H(masterSeed, stageName, configHash) convention.
func configHash(width, height int, rs *ruleset.RuleSet) []byte {
	data, err := rs.Serialize()
	if err != nil {
		data = nil
	}
	buf := make([]byte, 8+8+len(data))
	binary.BigEndian.PutUint64(buf[0:8], uint64(width))
	binary.BigEndian.PutUint64(buf[8:16], uint64(height))
	copy(buf[16:], data)
	return buf
}

// Run drains the observe/collapse/propagate loop to completion. It may be
// called at most once; a second call panics, since a Model's grid state
// is consumed by the first run.
//
// ctx is checked cooperatively at the top of each observe iteration; this
// is an optional extension spec.md explicitly permits, grounded on the
// teacher's select-on-ctx.Done() checks threaded through its own pipeline.
func (m *Model) Run(ctx context.Context) (*grid.Grid, error) {
	if m.ran {
		panic("solver: Run called more than once on the same Model")
	}
	m.ran = true

	for m.uncollapsed > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		cellIdx, ok := m.observe()
		if !ok {
			break
		}
		if err := m.collapse(cellIdx); err != nil {
			return nil, err
		}
		if err := m.propagate(); err != nil {
			return nil, err
		}
	}

	return m.grid, nil
}

// observe selects the uncollapsed cell with the lowest entropy, breaking
// ties with a small per-cell RNG jitter so that cells of equal entropy are
// chosen uniformly at random. Jitter is drawn first, for every cell
// considered, before any collapse sampling — the fixed stream order
// spec.md's determinism property depends on.
func (m *Model) observe() (index int, ok bool) {
	best := math.Inf(1)
	bestIdx := -1
	for i := range m.grid.Cells {
		c := &m.grid.Cells[i]
		if c.Collapsed {
			continue
		}
		h := m.entropy.entropy(i, c.Possibilities.Count())
		h += m.rnd.Float64Range(0, jitterEpsilon)
		if h < best {
			best = h
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return 0, false
	}
	return bestIdx, true
}

// collapse weighted-samples one tile from the cell's possibilities and
// narrows it to that single choice.
func (m *Model) collapse(index int) error {
	c := &m.grid.Cells[index]
	indices := c.Possibilities.Indices()
	weights := make([]float64, len(indices))
	for i, t := range indices {
		weights[i] = float64(m.rs.WeightAt(t))
	}
	choice := m.rnd.WeightedChoice(weights)
	if choice < 0 {
		return &ContradictionError{CellIndex: index}
	}
	chosen := indices[choice]

	for _, t := range indices {
		if t == chosen {
			continue
		}
		m.entropy.remove(index, float64(m.rs.WeightAt(t)))
	}

	c.Collapse(chosen)
	m.uncollapsed--
	m.worklist.push(index)
	return nil
}

// propagate drains the worklist, intersecting each in-bounds neighbor's
// possibilities with the union of allowed neighbors implied by the
// popped cell's remaining possibilities.
func (m *Model) propagate() error {
	for {
		i, ok := m.worklist.pop()
		if !ok {
			return nil
		}
		ix, iy := i%m.width, i/m.width
		ci := &m.grid.Cells[i]

		for _, d := range ruleset.Directions {
			jx, jy, inBounds := m.grid.Neighbor(ix, iy, d)
			if !inBounds {
				continue
			}
			j := m.grid.Index(jx, jy)
			cj := &m.grid.Cells[j]

			allowed := ruleset.NewTileSet(m.rs.TileCount())
			for _, t := range ci.Possibilities.Indices() {
				allowed.UnionInPlace(m.rs.ValidNeighborsAt(t, d))
			}

			newJ := cj.Possibilities.Intersect(allowed)
			if newJ.Equal(cj.Possibilities) {
				continue
			}
			if newJ.IsEmpty() {
				return &ContradictionError{CellIndex: j}
			}

			for _, t := range cj.Possibilities.Indices() {
				if !newJ.Has(t) {
					m.entropy.remove(j, float64(m.rs.WeightAt(t)))
				}
			}

			cj.Possibilities = newJ
			if count := newJ.Count(); count == 1 && !cj.Collapsed {
				cj.Collapsed = true
				m.uncollapsed--
			}
			m.worklist.push(j)
		}
	}
}
