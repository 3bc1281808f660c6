package session

import (
	"github.com/google/uuid"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type EventKind int

const (
	// CellRevealed fires once per safe cell that transitions from
	// hidden to revealed, so a cascade opening 12 cells emits 12
	// events. Per-cell on purpose: the presentation layer plays its
	// number cue for every opened cell.
	CellRevealed EventKind = iota
	MineExploded
	FlagToggled
	GameLost
	GameWon
)

func (k EventKind) String() string {
	switch k {
	case CellRevealed:
		return "cell_revealed"
	case MineExploded:
		return "mine_exploded"
	case FlagToggled:
		return "flag_toggled"
	case GameLost:
		return "game_lost"
	case GameWon:
		return "game_won"
	default:
		return "unknown"
	}
}

// Event is one discrete at-most-once-per-transition cue for the
// audio/visual collaborator. MineExploded, GameLost and GameWon each
// fire exactly once per game; FlagToggled once per successful toggle.
type Event struct {
	Kind      EventKind
	SessionID uuid.UUID
	// Cell is set for CellRevealed, MineExploded and FlagToggled.
	Cell mines.Point
	// Flagged carries the new marker value on FlagToggled.
	Flagged bool
}
