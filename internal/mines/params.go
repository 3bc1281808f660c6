package mines

import "fmt"

type GameParams struct {
	Rows, Cols, MineCount int
}

func (p GameParams) CellCount() int {
	return p.Rows * p.Cols
}

func (p GameParams) SafeCellCount() int {
	return p.Rows*p.Cols - p.MineCount
}

// Validate rejects any configuration that cannot produce a playable
// board. It must pass before a single mine is placed.
func (p GameParams) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 ||
		p.MineCount <= 0 || p.MineCount >= p.Rows*p.Cols {
		return InvalidConfigError{p}
	}
	return nil
}

func (p GameParams) ValidatePoint(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Rows, p.Cols, p.MineCount)
}
