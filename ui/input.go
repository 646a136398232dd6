package ui

import (
	"snake-grid/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PollDirection returns at most one heading pressed this frame. S, W, A, D
// are checked in that order and the first hit wins. A and D map to the
// horizontal headings that move the head left and right on screen.
func PollDirection() (types.Direction, bool) {
	switch {
	case rl.IsKeyPressed(rl.KeyS):
		return types.Down, true
	case rl.IsKeyPressed(rl.KeyW):
		return types.Up, true
	case rl.IsKeyPressed(rl.KeyA):
		return types.Right, true
	case rl.IsKeyPressed(rl.KeyD):
		return types.Left, true
	}
	return types.Up, false
}
