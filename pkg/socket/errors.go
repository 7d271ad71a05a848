package socket

import "fmt"

// ErrNoBaseTiles is returned by Expand when given an empty base tile list.
var ErrNoBaseTiles = fmt.Errorf("socket: no base tiles defined")

// EmptyBaseIDError reports a BaseTile with an empty ID.
type EmptyBaseIDError struct{}

func (e *EmptyBaseIDError) Error() string {
	return "socket: base tile id must not be empty"
}

// DuplicateBaseIDError reports two base tiles sharing an id, which would
// otherwise silently collide once symmetry variants are named.
type DuplicateBaseIDError struct {
	ID string
}

func (e *DuplicateBaseIDError) Error() string {
	return fmt.Sprintf("socket: duplicate base tile id %q", e.ID)
}

// InvalidWeightError reports a non-positive BaseTile.Weight.
type InvalidWeightError struct {
	ID     string
	Weight int
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("socket: tile %q: weight must be positive, got %d", e.ID, e.Weight)
}
