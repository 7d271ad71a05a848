// Package socket implements the Symmetry Expander: a pure transformation
// from user-level base tiles (four edge-socket lists plus a symmetry
// class) to a flat ruleset.RuleSet, by enumerating each base tile's
// rotation/reflection variants and deriving adjacency from socket
// compatibility between opposing edges.
//
// Expand never touches a Solver or any RNG; it is a deterministic pure
// function of its input, grounded in the same "assemble then freeze"
// shape as ruleset.Builder.
package socket
