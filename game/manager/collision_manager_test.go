package manager

import (
	"snake-grid/game/entity"
	"snake-grid/game/types"
	"testing"
)

func TestOccupiedCoversHeadAndTail(t *testing.T) {
	grid := types.Grid{Side: 4}
	snake := entity.NewSnake(grid, 0.5, entity.TurnOnTick)
	snake.Grow()
	snake.Grow()
	snake.Update(1) // 0 -> 1
	snake.Update(1) // 1 -> 2

	cm := NewCollisionManager(grid)
	occupied := cm.Occupied(snake)

	if len(occupied) != 3 {
		t.Fatalf("occupied = %v, want 3 cells", occupied)
	}
	for _, c := range []int{0, 1, 2} {
		if _, ok := occupied[c]; !ok {
			t.Errorf("cell %d missing from %v", c, occupied)
		}
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	grid := types.Grid{Side: 4}
	snake := entity.NewSnake(grid, 0.5, entity.TurnOnTick)
	snake.Grow()
	snake.Update(1) // head 1, tail [0]

	cm := NewCollisionManager(grid)
	tests := []struct {
		index int
		want  bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{15, true},
		{16, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := cm.ValidateSpawnPosition(tt.index, snake); got != tt.want {
			t.Errorf("ValidateSpawnPosition(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Side: 4})
	if !cm.IsFoodCollision(5, 5) {
		t.Error("head on coin not detected")
	}
	if cm.IsFoodCollision(5, 6) {
		t.Error("false coin hit")
	}
}
