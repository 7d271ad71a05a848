// Package solver implements the Model: the stateful core that owns a
// Grid, a deterministic random source, and the propagation worklist, and
// exposes a single blocking Run that either returns a fully collapsed
// grid or a Contradiction.
//
// Run may be called at most once per Model. A Model is not safe for
// concurrent use, though distinct Models may run in parallel over a
// shared read-only RuleSet.
package solver
