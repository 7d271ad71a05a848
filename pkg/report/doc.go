// Package report is an independent, post-hoc auditor of a solved grid: it
// re-checks constraint soundness and computes descriptive tile-usage
// metrics. It is not on the Solver's hot path — callers who retry on a
// Contradiction and want visibility into a successful run use it
// separately, against the engine's public Grid/RuleSet types only.
package report
