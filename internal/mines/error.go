package mines

import "fmt"

type InvalidConfigError struct {
	Params GameParams
}

// [InvalidConfigError] implements [error]
func (e InvalidConfigError) Error() string {
	p := e.Params
	switch {
	case p.Rows <= 0:
		return fmt.Sprintf("cannot create a board with %d rows", p.Rows)
	case p.Cols <= 0:
		return fmt.Sprintf("cannot create a board with %d columns", p.Cols)
	case p.MineCount <= 0:
		return fmt.Sprintf("cannot create a board with %d mines", p.MineCount)
	case p.MineCount >= p.Rows*p.Cols:
		return fmt.Sprintf("not enough space for %d mines on a %dx%d board",
			p.MineCount, p.Rows, p.Cols)
	default:
		return fmt.Sprintf("invalid board config %s", p)
	}
}
