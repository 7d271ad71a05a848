// Package grid holds the Solver's working state shape: a Cell's
// possibility bitset and collapsed flag, and the flat, row-major Grid of
// cells a Model collapses. It is pure data and bitset algebra — no RNG, no
// propagation logic — the same split the teacher draws between its
// tile-data and pipeline-orchestration layers.
package grid
