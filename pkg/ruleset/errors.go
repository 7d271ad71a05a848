package ruleset

import "fmt"

// ErrNoTilesDefined is returned by Build when the Builder has no tiles.
var ErrNoTilesDefined = fmt.Errorf("ruleset: no tiles defined")

// ErrEmptyID is returned by AddTile when the tile id is empty.
var ErrEmptyID = fmt.Errorf("ruleset: tile id must not be empty")

// InvalidTileIDError reports that a rule, query, or serialized document
// referenced a tile id that does not exist in the RuleSet.
type InvalidTileIDError struct {
	ID TileID
}

func (e *InvalidTileIDError) Error() string {
	return fmt.Sprintf("ruleset: invalid tile id %q", string(e.ID))
}

// InvalidWeightError reports a non-positive weight passed to AddTile.
type InvalidWeightError struct {
	ID     TileID
	Weight Weight
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("ruleset: tile %q: weight must be positive, got %d", string(e.ID), int(e.Weight))
}

// JSONParseError reports malformed canonical-format input or a rules entry
// that references an undeclared tile. Offset carries a byte position into
// the input when the underlying decoder makes one available (0 otherwise).
type JSONParseError struct {
	Message string
	Offset  int64
}

func (e *JSONParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("ruleset: parse error at offset %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("ruleset: parse error: %s", e.Message)
}
