package solver

import "fmt"

// InvalidDimensionsError reports a Model constructed with a zero width or
// height.
type InvalidDimensionsError struct {
	Width, Height int
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("solver: invalid dimensions %dx%d", e.Width, e.Height)
}

// ContradictionError reports that propagation reduced a cell to zero
// possibilities. CellIndex is the row-major index of the offending cell.
type ContradictionError struct {
	CellIndex int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("solver: contradiction at cell %d", e.CellIndex)
}
