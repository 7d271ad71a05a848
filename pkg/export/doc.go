// Package export writes a solved grid.Grid out to data formats other
// tools can consume: the engine's own compact JSON shape, and a
// Tiled-compatible TMJ document. Neither sink renders pixels; both are
// text/data formats describing the solved tile layout.
package export
