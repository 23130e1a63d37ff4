package domain

import "errors"

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String returns the mark symbol, or "" for an empty cell.
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Board is a fixed 3x3 board stored row-major, indexed 0..8.
type Board [9]Cell

// ErrOutOfBounds reports a cell index outside the board. It marks a caller
// bug: the UI can only produce indices 0..8.
var ErrOutOfBounds = errors.New("cell index out of bounds")

// Game holds the current state of a Tic-Tac-Toe match: the board, whose turn
// it is, and the verdict of the last evaluation.
type Game struct {
	Board   Board
	Turn    Cell
	Verdict Verdict
}

// New returns a fresh game with an empty board and X to move.
func New() Game {
	return Game{Turn: X}
}

// Play places the current turn's mark at cell (0..8). A move on an occupied
// cell or after the game has finished is ignored: the state is left untouched
// and no error is returned, matching a UI that simply does not react to the
// click. Only an out-of-range index is an error.
func (g *Game) Play(cell int) error {
	if cell < 0 || cell >= len(g.Board) {
		return ErrOutOfBounds
	}
	if g.Verdict.Outcome != Ongoing || g.Board[cell] != Empty {
		return nil
	}

	g.Board[cell] = g.Turn
	g.Verdict = Evaluate(g.Board)

	// Turn only flips while the game is still open; once terminal it is
	// frozen until Reset.
	if g.Verdict.Outcome == Ongoing {
		if g.Turn == X {
			g.Turn = O
		} else {
			g.Turn = X
		}
	}
	return nil
}

// Reset restores the initial state unconditionally.
func (g *Game) Reset() {
	*g = New()
}

// Status projects the game into a display summary. It is recomputed on every
// call rather than stored.
func (g Game) Status() string {
	switch g.Verdict.Outcome {
	case Won:
		return "Winner: " + g.Verdict.Winner.String()
	case Drawn:
		return "Draw"
	default:
		return "Next: " + g.Turn.String()
	}
}
