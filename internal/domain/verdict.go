package domain

// Line is an index triple on the board that wins the game when all three
// cells hold the same mark.
type Line [3]int

// Lines holds the eight winning triples: rows, columns, diagonals. The order
// is the tie-break when a board satisfies more than one line.
var Lines = [8]Line{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Outcome classifies a board as still playable or terminal.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Won
	Drawn
)

// Verdict is the result of evaluating a board. Winner and WinLine are only
// meaningful when Outcome is Won.
type Verdict struct {
	Outcome Outcome
	Winner  Cell
	WinLine Line
}

// Evaluate inspects a board and returns its verdict. It is pure and total:
// any combination of cells yields exactly one of Ongoing, Won or Drawn.
func Evaluate(b Board) Verdict {
	for _, ln := range Lines {
		if m := b[ln[0]]; m != Empty && m == b[ln[1]] && m == b[ln[2]] {
			return Verdict{Outcome: Won, Winner: m, WinLine: ln}
		}
	}
	for _, c := range b {
		if c == Empty {
			return Verdict{Outcome: Ongoing}
		}
	}
	return Verdict{Outcome: Drawn}
}
