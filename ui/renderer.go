package ui

import (
	"fmt"
	"snake-grid/game"
	"snake-grid/game/manager"
	"snake-grid/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	scoreFontSize = 50
	scoreMargin   = 12
	panelPadding  = 10
)

var (
	backgroundColor = rl.NewColor(123, 66, 145, 255)
	canvasColor     = rl.NewColor(116, 51, 121, 255)
	headColor       = rl.NewColor(42, 148, 150, 255)
	tailColor       = rl.NewColor(42, 148, 150, 120)
	coinColor       = rl.NewColor(244, 215, 112, 255)
	indicatorColor  = rl.NewColor(244, 215, 112, 200)
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	canvasX      int32
	canvasY      int32
	canvasSize   int32
	cellSize     int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions re-reads the window size and recomputes the canvas: a
// square half the window wide, a quarter of the width in and an eighth of the
// height down.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.canvasX = r.screenWidth / 4
	r.canvasY = r.screenHeight / 8
	r.canvasSize = r.screenWidth / 2
}

// cellOrigin returns the top-left pixel of a cell.
func (r *Renderer) cellOrigin(grid types.Grid, index int) (int32, int32) {
	x := r.canvasX + int32(grid.Col(index))*r.cellSize
	y := r.canvasY + int32(grid.Row(index))*r.cellSize
	return x, y
}

func (r *Renderer) Draw(g *game.Game) {
	snap := g.Snapshot()
	r.cellSize = r.canvasSize / int32(snap.Grid.Side)

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	rl.DrawRectangle(r.canvasX, r.canvasY, r.canvasSize, r.canvasSize, canvasColor)

	if snap.Food != snap.Head {
		x, y := r.cellOrigin(snap.Grid, snap.Food)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, coinColor)
	}
	for _, p := range snap.Tail {
		x, y := r.cellOrigin(snap.Grid, p)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, tailColor)
	}
	x, y := r.cellOrigin(snap.Grid, snap.Head)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, headColor)
	r.drawIndicator(x, y, snap.Direction)

	rl.DrawText(fmt.Sprint(snap.Score), scoreMargin, scoreMargin, scoreFontSize, rl.White)

	r.drawStatsPanel(snap, g.GetState())
	rl.EndDrawing()
}

// drawIndicator marks the head with a triangle pointing where it is going on
// screen. Left steps to higher columns, so it points right.
func (r *Renderer) drawIndicator(headX, headY int32, dir types.Direction) {
	cell := float32(r.cellSize)
	half := cell / 2
	x, y := float32(headX), float32(headY)

	var v1, v2, v3 rl.Vector2
	switch dir {
	case types.Left:
		v1 = rl.Vector2{X: x + cell, Y: y + half}
		v2 = rl.Vector2{X: x + half, Y: y}
		v3 = rl.Vector2{X: x + half, Y: y + cell}
	case types.Right:
		v1 = rl.Vector2{X: x, Y: y + half}
		v2 = rl.Vector2{X: x + half, Y: y + cell}
		v3 = rl.Vector2{X: x + half, Y: y}
	case types.Down:
		v1 = rl.Vector2{X: x + half, Y: y + cell}
		v2 = rl.Vector2{X: x + cell, Y: y + half}
		v3 = rl.Vector2{X: x, Y: y + half}
	default:
		v1 = rl.Vector2{X: x + half, Y: y}
		v2 = rl.Vector2{X: x, Y: y + half}
		v3 = rl.Vector2{X: x + cell, Y: y + half}
	}
	rl.DrawTriangle(v1, v2, v3, indicatorColor)
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, state *manager.StateManager) {
	panelX := r.canvasX + r.canvasSize + panelPadding*2
	panelWidth := r.screenWidth - panelX - panelPadding
	if panelWidth <= 0 {
		return
	}

	fontSize := r.screenHeight / 40
	lineHeight := fontSize + fontSize/2
	y := r.canvasY

	lines := []string{
		fmt.Sprintf("Best: %d", snap.HighScore),
		fmt.Sprintf("Games: %d", snap.GamesPlayed),
		fmt.Sprintf("Avg: %.2f", snap.AvgScore),
		fmt.Sprintf("Median: %.1f", snap.MedianScore),
		fmt.Sprintf("Length: %d", len(snap.Tail)+1),
	}
	for _, line := range lines {
		rl.DrawText(line, panelX, y, fontSize, rl.White)
		y += lineHeight
	}

	r.drawScoreGraph(snap.Scores, state.GetAverageScore(), panelX, y+lineHeight, panelWidth, r.canvasSize/3)
}

// drawScoreGraph plots finished run scores left to right, oldest first, with
// a dashed line at the average.
func (r *Renderer) drawScoreGraph(scores []int, avg float64, graphX, graphY, graphWidth, graphHeight int32) {
	rl.DrawRectangleLines(graphX, graphY, graphWidth, graphHeight, rl.White)
	if len(scores) < 2 {
		return
	}

	maxScore := 1
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	px := func(i int) int32 {
		return graphX + int32(float32(graphWidth)*float32(i)/float32(manager.MaxRunHistory))
	}
	py := func(v float32) int32 {
		return graphY + graphHeight - int32(float32(graphHeight)*v/float32(maxScore))
	}

	for j := 1; j < len(scores); j++ {
		rl.DrawLine(px(j-1), py(float32(scores[j-1])), px(j), py(float32(scores[j])), headColor)
	}

	avgY := py(float32(avg))
	for x := graphX; x < graphX+graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, coinColor)
	}
}
