package domain

import (
	"testing"
)

// helper to apply a sequence of moves
func playMoves(t *testing.T, g *Game, moves []int) {
	t.Helper()
	for i, m := range moves {
		if err := g.Play(m); err != nil {
			t.Fatalf("move %d (cell %d) failed: %v", i, m, err)
		}
	}
}

// containsLine reports whether any winning triple is fully contained in cells.
func containsLine(cells []int) bool {
	set := make(map[int]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	for _, ln := range Lines {
		if set[ln[0]] && set[ln[1]] && set[ln[2]] {
			return true
		}
	}
	return false
}

// fillerMoves picks n cells off the given line that never complete a line of
// their own, so the opponent's filler marks cannot win first.
func fillerMoves(t *testing.T, line Line, n int) []int {
	t.Helper()
	used := map[int]bool{line[0]: true, line[1]: true, line[2]: true}
	var out []int
	for i := 0; i < 9 && len(out) < n; i++ {
		if used[i] {
			continue
		}
		cand := append(append([]int{}, out...), i)
		if !containsLine(cand) {
			out = append(out, i)
			used[i] = true
		}
	}
	if len(out) < n {
		t.Fatalf("could not pick %d fillers off line %v", n, line)
	}
	return out
}

func TestNewGameInitialState(t *testing.T) {
	g := New()
	if g.Turn != X {
		t.Fatalf("expected initial turn X, got %v", g.Turn)
	}
	if g.Verdict.Outcome != Ongoing {
		t.Fatalf("expected ongoing verdict, got %v", g.Verdict.Outcome)
	}
	for i, c := range g.Board {
		if c != Empty {
			t.Fatalf("expected empty board, cell %d = %v", i, c)
		}
	}
	if got := g.Status(); got != "Next: X" {
		t.Fatalf("expected status %q, got %q", "Next: X", got)
	}
}

func TestPlayOutOfBounds(t *testing.T) {
	g := New()
	for _, cell := range []int{-1, 9, 42} {
		if err := g.Play(cell); err != ErrOutOfBounds {
			t.Fatalf("expected ErrOutOfBounds for cell %d, got %v", cell, err)
		}
	}
	if g != New() {
		t.Fatalf("rejected moves must not change state: %+v", g)
	}
}

func TestPlayOccupiedIsNoOp(t *testing.T) {
	g := New()
	if err := g.Play(0); err != nil {
		t.Fatalf("first move failed: %v", err)
	}
	after := g
	// Clicking the same cell again, any number of times, changes nothing
	// and surfaces no error.
	for i := 0; i < 3; i++ {
		if err := g.Play(0); err != nil {
			t.Fatalf("occupied click %d returned error: %v", i, err)
		}
		if g != after {
			t.Fatalf("occupied click changed state: %+v", g)
		}
	}
	if g.Board[0] != X || g.Turn != O {
		t.Fatalf("expected X at 0 and O to move, got %v / %v", g.Board[0], g.Turn)
	}
}

func TestTurnAlternation(t *testing.T) {
	g := New()
	// Draw sequence: no winner, so the turn flips after every move.
	seq := []int{0, 1, 2, 3, 5, 4, 6, 8}
	for n, m := range seq {
		want := X
		if n%2 == 1 {
			want = O
		}
		if g.Turn != want {
			t.Fatalf("before move %d expected turn %v, got %v", n, want, g.Turn)
		}
		playMoves(t, &g, []int{m})
	}
}

func TestWinOnEveryLineForX(t *testing.T) {
	for _, line := range Lines {
		g := New()
		f := fillerMoves(t, line, 2)
		seq := []int{line[0], f[0], line[1], f[1], line[2]}
		playMoves(t, &g, seq)
		if g.Verdict.Outcome != Won || g.Verdict.Winner != X {
			t.Fatalf("expected X to win on line %v; verdict=%+v", line, g.Verdict)
		}
		if g.Verdict.WinLine != line {
			t.Fatalf("expected winning line %v, got %v", line, g.Verdict.WinLine)
		}
		if got := g.Status(); got != "Winner: X" {
			t.Fatalf("expected status %q, got %q", "Winner: X", got)
		}
	}
}

func TestWinOnEveryLineForO(t *testing.T) {
	for _, line := range Lines {
		g := New()
		f := fillerMoves(t, line, 3)
		seq := []int{f[0], line[0], f[1], line[1], f[2], line[2]}
		playMoves(t, &g, seq)
		if g.Verdict.Outcome != Won || g.Verdict.Winner != O {
			t.Fatalf("expected O to win on line %v; verdict=%+v", line, g.Verdict)
		}
		if g.Verdict.WinLine != line {
			t.Fatalf("expected winning line %v, got %v", line, g.Verdict.WinLine)
		}
	}
}

func TestRowWinScenario(t *testing.T) {
	g := New()
	// X takes the top row at moves 1, 3, 5.
	playMoves(t, &g, []int{0, 4, 1, 3, 2})
	if g.Verdict.Outcome != Won || g.Verdict.Winner != X {
		t.Fatalf("expected X win, got %+v", g.Verdict)
	}
	if g.Verdict.WinLine != (Line{0, 1, 2}) {
		t.Fatalf("expected line (0,1,2), got %v", g.Verdict.WinLine)
	}
}

func TestDrawFillsBoard(t *testing.T) {
	g := New()
	playMoves(t, &g, []int{0, 1, 2, 3, 5, 4, 6, 8, 7})
	if g.Verdict.Outcome != Drawn {
		t.Fatalf("expected draw, got %+v", g.Verdict)
	}
	if g.Verdict.Winner != Empty {
		t.Fatalf("expected no winner on draw, got %v", g.Verdict.Winner)
	}
	if got := g.Status(); got != "Draw" {
		t.Fatalf("expected status %q, got %q", "Draw", got)
	}
}

func TestFinishedGameIgnoresMoves(t *testing.T) {
	g := New()
	playMoves(t, &g, []int{0, 4, 1, 3, 2}) // X wins top row
	won := g
	for cell := 0; cell < 9; cell++ {
		if err := g.Play(cell); err != nil {
			t.Fatalf("click after win returned error: %v", err)
		}
	}
	if g != won {
		t.Fatalf("finished game changed after clicks: %+v", g)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	cases := map[string][]int{
		"fresh":    {},
		"mid-game": {0, 4, 8},
		"won":      {0, 4, 1, 3, 2},
		"drawn":    {0, 1, 2, 3, 5, 4, 6, 8, 7},
	}
	for name, seq := range cases {
		g := New()
		playMoves(t, &g, seq)
		g.Reset()
		if g != New() {
			t.Fatalf("%s: reset did not restore initial state: %+v", name, g)
		}
		// Play is possible again from the empty board.
		if err := g.Play(4); err != nil {
			t.Fatalf("%s: move after reset failed: %v", name, err)
		}
		if g.Board[4] != X || g.Turn != O {
			t.Fatalf("%s: unexpected state after post-reset move: %+v", name, g)
		}
	}
}

func TestStatusProjection(t *testing.T) {
	g := New()
	if got := g.Status(); got != "Next: X" {
		t.Fatalf("got %q", got)
	}
	playMoves(t, &g, []int{0})
	if got := g.Status(); got != "Next: O" {
		t.Fatalf("got %q", got)
	}
}
