package types

import "testing"

func TestGridNextExamples(t *testing.T) {
	g := Grid{Side: 4}

	tests := []struct {
		name  string
		index int
		dir   Direction
		want  int
	}{
		{"down wraps bottom row to top", 14, Down, 2},
		{"down wraps bottom-left corner", 12, Down, 0},
		{"down inside grid", 5, Down, 9},
		{"up wraps top row to bottom", 1, Up, 13},
		{"up inside grid", 9, Up, 5},
		{"left wraps last column to row start", 3, Left, 0},
		{"left wraps in middle row", 7, Left, 4},
		{"left inside row", 5, Left, 6},
		{"right wraps row start to row end", 4, Right, 7},
		{"right wraps cell zero", 0, Right, 3},
		{"right inside row", 6, Right, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Next(tt.index, tt.dir); got != tt.want {
				t.Errorf("Next(%d, %v) = %d, want %d", tt.index, tt.dir, got, tt.want)
			}
		})
	}
}

func TestGridNextStaysInRange(t *testing.T) {
	for side := 1; side <= 9; side++ {
		g := Grid{Side: side}
		for index := 0; index < g.Cells(); index++ {
			for _, dir := range []Direction{Up, Left, Down, Right} {
				next := g.Next(index, dir)
				if !g.Contains(next) {
					t.Fatalf("side=%d: Next(%d, %v) = %d out of [0, %d)", side, index, dir, next, g.Cells())
				}
			}
		}
	}
}

func TestGridHorizontalMovesKeepRow(t *testing.T) {
	g := Grid{Side: 5}
	for index := 0; index < g.Cells(); index++ {
		for _, dir := range []Direction{Left, Right} {
			next := g.Next(index, dir)
			if g.Row(next) != g.Row(index) {
				t.Errorf("Next(%d, %v) = %d leaves row %d", index, dir, next, g.Row(index))
			}
		}
	}
}

func TestGridVerticalMovesKeepColumn(t *testing.T) {
	g := Grid{Side: 5}
	for index := 0; index < g.Cells(); index++ {
		for _, dir := range []Direction{Up, Down} {
			next := g.Next(index, dir)
			if g.Col(next) != g.Col(index) {
				t.Errorf("Next(%d, %v) = %d leaves column %d", index, dir, next, g.Col(index))
			}
		}
	}
}

func TestGridOppositeStepsCancel(t *testing.T) {
	g := Grid{Side: 6}
	for index := 0; index < g.Cells(); index++ {
		for _, dir := range []Direction{Up, Left, Down, Right} {
			back := g.Next(g.Next(index, dir), dir.Opposite())
			if back != index {
				t.Errorf("Next(Next(%d, %v), %v) = %d, want %d", index, dir, dir.Opposite(), back, index)
			}
		}
	}
}

func TestDirectionString(t *testing.T) {
	if Left.String() != "left" {
		t.Errorf("Left.String() = %q", Left.String())
	}
	if got := Direction(9).String(); got != "direction(9)" {
		t.Errorf("Direction(9).String() = %q", got)
	}
}
