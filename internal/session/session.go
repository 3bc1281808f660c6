package session

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var Log = logrus.New()

// Session is a thin shell over [mines.Board]: it owns the one live
// board, tracks the overall phase across games and translates board
// outcomes into the discrete cue events the presentation layer needs.
//
// Commands are expected to arrive one at a time; the mutex only makes
// the three mutating operations a single critical section in case the
// input collaborator ever delivers them concurrently.
type Session struct {
	mu     sync.Mutex
	id     uuid.UUID
	params mines.GameParams
	rand   *rand.Rand
	board  *mines.Board
}

// New validates params and creates a session in the Setup phase; no
// board exists until the first NewGame call.
func New(params mines.GameParams, r *rand.Rand) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		id:     uuid.New(),
		params: params,
		rand:   r,
	}, nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Params() mines.GameParams {
	return s.params
}

// NewGame replaces the board wholesale; nothing survives the reset.
// The error path is unreachable with params already validated in New,
// but the board stays untouched if it ever triggers.
func (s *Session) NewGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, err := mines.NewBoard(s.params, s.rand)
	if err != nil {
		return err
	}
	s.board = board

	Log.WithFields(logrus.Fields{
		"session": s.id,
		"params":  s.params.String(),
	}).Info("new game")

	return nil
}

// HandleReveal runs a reveal command and returns the cue events it
// produced. Unchanged outcomes (and commands before the first game)
// produce none.
func (s *Session) HandleReveal(row, col int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board == nil {
		return nil
	}

	res := s.board.Reveal(row, col)
	switch res.Outcome {
	case mines.Exploded:
		return []Event{
			{Kind: MineExploded, SessionID: s.id, Cell: res.At},
			{Kind: GameLost, SessionID: s.id},
		}
	case mines.Revealed:
		events := make([]Event, 0, len(res.Opened)+1)
		for _, p := range res.Opened {
			events = append(events, Event{
				Kind: CellRevealed, SessionID: s.id, Cell: p,
			})
		}
		if s.board.Phase() == mines.Won {
			events = append(events, Event{Kind: GameWon, SessionID: s.id})
		}
		Log.WithFields(logrus.Fields{
			"session": s.id,
			"row":     row, "col": col,
			"opened": res.Count(),
		}).Debug("revealed")
		return events
	default:
		return nil
	}
}

// HandleFlagToggle runs a flag command and returns the FlagToggled
// event on success, nothing on a no-op.
func (s *Session) HandleFlagToggle(row, col int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board == nil {
		return nil
	}

	flagged, changed := s.board.ToggleFlag(row, col)
	if !changed {
		return nil
	}
	return []Event{{
		Kind:      FlagToggled,
		SessionID: s.id,
		Cell:      mines.Point{Row: row, Col: col},
		Flagged:   flagged,
	}}
}

func (s *Session) Phase() mines.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board == nil {
		return mines.Setup
	}
	return s.board.Phase()
}

// Snapshot returns the per-cell render view, or nil before the first
// game.
func (s *Session) Snapshot() []mines.CellView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board == nil {
		return nil
	}
	return s.board.Snapshot()
}

func (s *Session) CellAt(row, col int) (mines.CellView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board == nil {
		return mines.CellView{}, false
	}
	return s.board.CellAt(row, col)
}

// Render returns the board's ASCII dump for debug display.
func (s *Session) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board == nil {
		return ""
	}
	return s.board.String()
}
