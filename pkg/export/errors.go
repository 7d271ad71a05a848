package export

import "fmt"

// UncollapsedCellError reports that a grid passed to an export function
// has not been fully solved — exporting is only meaningful for a
// Model.Run success result.
type UncollapsedCellError struct {
	CellIndex int
}

func (e *UncollapsedCellError) Error() string {
	return fmt.Sprintf("export: cell %d is not collapsed", e.CellIndex)
}
