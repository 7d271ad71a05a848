// Package ruleset describes the tile universe a Solver collapses against: a
// set of tile identifiers, a positive selection weight per tile, and a
// per-direction adjacency relation between tiles.
//
// A RuleSet is built through a Builder and then frozen with Build. The
// relation is symmetric by construction (AddAdjacency records every entry
// together with its mirror in the opposite direction), and Build checks
// that every referenced tile exists. Once built, a RuleSet is immutable
// and safe to share read-only
// across any number of concurrent Solver runs.
package ruleset
