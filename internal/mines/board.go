package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Phase is the overall game status. A board is born Playing; Won and
// Lost are terminal until the board is replaced wholesale. Setup only
// exists before the first board has been generated.
type Phase int

const (
	Setup Phase = iota
	Playing
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Setup:
		return "setup"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type Cell struct {
	revealed    bool
	hasMine     bool
	flagged     bool
	nearbyMines int
}

type Point struct {
	Row, Col int
}

type RevealOutcome int

const (
	// Unchanged means the command was a no-op: out of bounds, already
	// revealed, flagged, or the game is over. Not an error — stale
	// clicks are steady-state traffic from the input collaborator.
	Unchanged RevealOutcome = iota
	Revealed
	Exploded
)

func (o RevealOutcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Revealed:
		return "revealed"
	case Exploded:
		return "exploded"
	default:
		return "unknown"
	}
}

type RevealResult struct {
	Outcome RevealOutcome
	At      Point
	// Opened lists every safe cell newly revealed by this command, the
	// clicked cell first, then cascade cells in visit order.
	Opened []Point
}

func (r RevealResult) Count() int {
	return len(r.Opened)
}

// Board owns the grid, the mine layout and the reveal/flag/win-loss
// transition logic. Cells live in one flat slice indexed row*cols+col.
type Board struct {
	params       GameParams
	cells        []Cell
	phase        Phase
	revealedSafe int
}

// NewBoard validates params, places exactly params.MineCount mines
// uniformly without replacement and computes every adjacency count.
// On an invalid config no board is constructed.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	/*
	 * Write down the list of possible mine locations, then pick
	 * MineCount off the list at random. Swapping the used slot to the
	 * shrinking tail guarantees termination at any mine density.
	 */
	candidates := make([]int, params.CellCount())
	for i := range candidates {
		candidates[i] = i
	}
	mined := make([]int, 0, params.MineCount)
	k := len(candidates)
	for range params.MineCount {
		i := r.IntN(k)
		mined = append(mined, candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	b := newBoard(params, mined)

	Log.WithFields(logrus.Fields{
		"params": params.String(),
	}).Debug("generated board")

	return b, nil
}

// newBoard builds a Playing board with mines at the given flat
// indices. Callers are responsible for passing a valid layout.
func newBoard(params GameParams, mined []int) *Board {
	b := &Board{
		params: params,
		cells:  make([]Cell, params.CellCount()),
	}
	for _, i := range mined {
		b.cells[i].hasMine = true
	}
	b.countNearbyMines()
	b.phase = Playing
	return b
}

func (b *Board) index(row, col int) int {
	return row*b.params.Cols + col
}

func (b *Board) InBounds(row, col int) bool {
	return b.params.ValidatePoint(row, col)
}

func (b *Board) Params() GameParams {
	return b.params
}

func (b *Board) Phase() Phase {
	return b.phase
}

func (b *Board) MinesPlaced() (count int) {
	for i := range b.cells {
		if b.cells[i].hasMine {
			count++
		}
	}
	return
}

func (b *Board) RevealedSafeCells() int {
	return b.revealedSafe
}

func (b *Board) countNearbyMines() {
	for row := range b.params.Rows {
		for col := range b.params.Cols {
			if b.cells[b.index(row, col)].hasMine {
				continue
			}
			count := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := row+dr, col+dc
					if b.InBounds(nr, nc) && b.cells[b.index(nr, nc)].hasMine {
						count++
					}
				}
			}
			b.cells[b.index(row, col)].nearbyMines = count
		}
	}
}

// Reveal opens a cell. Out-of-range coordinates, already-revealed or
// flagged cells and commands after game end are no-ops reporting
// Unchanged. Opening a mine loses the game and exposes every mine so
// the caller can render the full layout. Opening a safe cell with no
// nearby mines flood-fills the connected zero region plus its ring of
// numbered cells; mined cells are never opened by the cascade.
func (b *Board) Reveal(row, col int) RevealResult {
	res := RevealResult{Outcome: Unchanged, At: Point{row, col}}

	if b.phase != Playing || !b.InBounds(row, col) {
		return res
	}
	cell := &b.cells[b.index(row, col)]
	if cell.revealed || cell.flagged {
		return res
	}

	if cell.hasMine {
		cell.revealed = true
		b.phase = Lost
		b.RevealAllMines()
		res.Outcome = Exploded
		Log.WithFields(logrus.Fields{
			"row": row, "col": col,
		}).Info("mine exploded")
		return res
	}

	cell.revealed = true
	b.revealedSafe++
	res.Opened = append(res.Opened, Point{row, col})

	/*
	 * Cascade via an explicit to-do queue rather than recursion; the
	 * revealed flag doubles as the visited set, so every cell is
	 * enqueued at most once and the loop is bounded by rows*cols.
	 * Neighbors are visited row-major within the 3x3 block minus
	 * center to keep the Opened order reproducible.
	 */
	if cell.nearbyMines == 0 {
		todo := newCellTodo(len(b.cells))
		todo.add(b.index(row, col))
		for {
			i, ok := todo.next()
			if !ok {
				break
			}
			r, c := i/b.params.Cols, i%b.params.Cols
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if !b.InBounds(nr, nc) {
						continue
					}
					neighbor := &b.cells[b.index(nr, nc)]
					if neighbor.revealed || neighbor.hasMine || neighbor.flagged {
						continue
					}
					neighbor.revealed = true
					b.revealedSafe++
					res.Opened = append(res.Opened, Point{nr, nc})
					if neighbor.nearbyMines == 0 {
						todo.add(b.index(nr, nc))
					}
				}
			}
		}
	}

	res.Outcome = Revealed

	if b.CheckWinCondition() {
		b.phase = Won
		Log.WithFields(logrus.Fields{
			"revealed": b.revealedSafe,
		}).Info("all safe cells revealed")
	}

	return res
}

// ToggleFlag flips the marker on a hidden cell and reports the new
// value. Out-of-range coordinates, revealed cells and commands after
// game end leave the state alone and report changed == false.
func (b *Board) ToggleFlag(row, col int) (flagged, changed bool) {
	if b.phase != Playing || !b.InBounds(row, col) {
		return false, false
	}
	cell := &b.cells[b.index(row, col)]
	if cell.revealed {
		return cell.flagged, false
	}
	cell.flagged = !cell.flagged
	return cell.flagged, true
}

// CheckWinCondition reports whether every safe cell has been revealed.
// Pure; safe to call anytime.
func (b *Board) CheckWinCondition() bool {
	return b.revealedSafe == b.params.SafeCellCount()
}

// RevealAllMines exposes every mined cell, leaving flags and safe
// cells untouched. Used on loss; idempotent.
func (b *Board) RevealAllMines() {
	for i := range b.cells {
		if b.cells[i].hasMine {
			b.cells[i].revealed = true
		}
	}
}
