package manager

import (
	"snake-grid/game/entity"
	"snake-grid/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Occupied returns the cells covered by the snake's head and tail.
func (cm *CollisionManager) Occupied(snake *entity.Snake) map[int]struct{} {
	tail := snake.Tail()
	occupied := make(map[int]struct{}, len(tail)+1)
	occupied[snake.Head()] = struct{}{}
	for _, p := range tail {
		occupied[p] = struct{}{}
	}
	return occupied
}

// IsFoodCollision checks if a cell holds the coin
func (cm *CollisionManager) IsFoodCollision(index, food int) bool {
	return index == food
}

// ValidateSpawnPosition checks if a cell is on the board and free of the snake
func (cm *CollisionManager) ValidateSpawnPosition(index int, snake *entity.Snake) bool {
	if !cm.grid.Contains(index) {
		return false
	}
	return !snake.Occupies(index)
}
