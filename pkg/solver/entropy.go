package solver

import "math"

// entropyCache maintains, per cell, the running weight sums behind the
// Shannon entropy formula, so a collapse's propagation only updates the
// handful of cells it actually touches instead of recomputing entropy
// from scratch over every uncollapsed cell each observe step.
type entropyCache struct {
	sumW     []float64
	sumWLogW []float64
	value    []float64
	dirty    []bool
}

func newEntropyCache(size int, totalW, totalWLogW float64) *entropyCache {
	c := &entropyCache{
		sumW:     make([]float64, size),
		sumWLogW: make([]float64, size),
		value:    make([]float64, size),
		dirty:    make([]bool, size),
	}
	for i := 0; i < size; i++ {
		c.sumW[i] = totalW
		c.sumWLogW[i] = totalWLogW
		c.dirty[i] = true
	}
	return c
}

// remove records that a tile of weight w is no longer possible for cell
// i.
func (c *entropyCache) remove(i int, w float64) {
	if w <= 0 {
		return
	}
	c.sumW[i] -= w
	c.sumWLogW[i] -= w * math.Log2(w)
	c.dirty[i] = true
}

// entropy returns cell i's current entropy, recomputing from the cached
// sums only if dirty. count is the cell's remaining possibility count;
// a singleton or empty possibility set always has entropy 0.
func (c *entropyCache) entropy(i, count int) float64 {
	if count <= 1 {
		return 0
	}
	if !c.dirty[i] {
		return c.value[i]
	}
	sumW := c.sumW[i]
	var v float64
	if sumW > 0 {
		v = math.Log2(sumW) - c.sumWLogW[i]/sumW
	}
	c.value[i] = v
	c.dirty[i] = false
	return v
}
