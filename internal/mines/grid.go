package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellView is the read-only per-cell state the render collaborator
// pulls once per frame.
type CellView struct {
	Revealed    bool `json:"revealed"`
	HasMine     bool `json:"has_mine"`
	Flagged     bool `json:"flagged"`
	NearbyMines int  `json:"nearby_mines"`
}

func (c Cell) view() CellView {
	return CellView{
		Revealed:    c.revealed,
		HasMine:     c.hasMine,
		Flagged:     c.flagged,
		NearbyMines: c.nearbyMines,
	}
}

// Snapshot copies the state of all rows*cols cells in row-major order.
func (b *Board) Snapshot() []CellView {
	views := make([]CellView, len(b.cells))
	for i, c := range b.cells {
		views[i] = c.view()
	}
	return views
}

func (b *Board) CellAt(row, col int) (CellView, bool) {
	if !b.InBounds(row, col) {
		return CellView{}, false
	}
	return b.cells[b.index(row, col)].view(), true
}

func (c Cell) String() string {
	switch {
	case c.flagged:
		return "F"
	case !c.revealed:
		return "-"
	case c.hasMine:
		return "*"
	default:
		return strconv.Itoa(c.nearbyMines)
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.params.Rows {
		for col := range b.params.Cols {
			fmt.Fprint(&sb, b.cells[b.index(row, col)].String()+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
