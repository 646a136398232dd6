package entity

import (
	"fmt"
	"snake-grid/game/types"
)

// TurnPolicy decides when a direction change moves the snake.
type TurnPolicy int

const (
	// TurnOnTick only records the new heading; the move happens on the next tick.
	TurnOnTick TurnPolicy = iota
	// TurnImmediate moves one cell as soon as the heading changes and restarts the tick timer.
	TurnImmediate
)

func (p TurnPolicy) String() string {
	switch p {
	case TurnOnTick:
		return "tick"
	case TurnImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseTurnPolicy maps a flag value to a TurnPolicy.
func ParseTurnPolicy(s string) (TurnPolicy, error) {
	switch s {
	case "tick", "":
		return TurnOnTick, nil
	case "immediate":
		return TurnImmediate, nil
	}
	return TurnOnTick, fmt.Errorf("unknown turn policy %q", s)
}

type Snake struct {
	grid          types.Grid
	tickThreshold float32
	policy        TurnPolicy

	current   int
	pending   int
	direction types.Direction
	timer     float32
	tail      []int // most recent first
	length    int   // growth target for tail
}

// NewSnake places a snake at cell 0 heading Left. The grid side and tick
// threshold must be positive; the caller validates them.
func NewSnake(grid types.Grid, tickThreshold float32, policy TurnPolicy) *Snake {
	if grid.Side <= 0 {
		panic(fmt.Sprintf("entity: grid side must be positive, got %d", grid.Side))
	}
	s := &Snake{
		grid:          grid,
		tickThreshold: tickThreshold,
		policy:        policy,
		tail:          make([]int, 0),
	}
	s.Reset()
	return s
}

// Reset puts the snake back to its starting state.
func (s *Snake) Reset() {
	s.tail = s.tail[:0]
	s.current = 0
	s.pending = s.grid.Next(0, types.Left)
	s.length = 0
	s.direction = types.Left
	s.timer = 0
}

// SetDirection turns the snake. Repeating the current heading does nothing.
// Under TurnImmediate the snake also steps once; the return value reports
// whether that step hit the tail and reset the snake.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == s.direction {
		return false
	}
	s.direction = dir

	if s.policy != TurnImmediate {
		return false
	}
	collided := s.step()
	s.timer = 0
	return collided
}

// Update advances the tick timer by delta seconds and steps once when it runs
// past the threshold. It reports whether the snake hit its tail and was reset.
func (s *Snake) Update(delta float32) bool {
	s.timer += delta
	if s.timer <= s.tickThreshold {
		return false
	}
	s.timer = 0
	return s.step()
}

// Grow raises the tail length target by one. The tail catches up on the
// following steps.
func (s *Snake) Grow() {
	s.length++
}

func (s *Snake) step() bool {
	s.updateTail()
	s.pending = s.grid.Next(s.current, s.direction)

	if s.tailContains(s.pending) {
		s.Reset()
		return true
	}
	s.current = s.pending
	return false
}

func (s *Snake) updateTail() {
	s.tail = append(s.tail, 0)
	copy(s.tail[1:], s.tail)
	s.tail[0] = s.current

	if len(s.tail) > s.length {
		s.tail = s.tail[:s.length]
	}
}

func (s *Snake) tailContains(index int) bool {
	for _, p := range s.tail {
		if p == index {
			return true
		}
	}
	return false
}

func (s *Snake) Grid() types.Grid {
	return s.grid
}

// Head returns the cell occupied by the head.
func (s *Snake) Head() int {
	return s.current
}

// Pending returns the cell computed for the latest step.
func (s *Snake) Pending() int {
	return s.pending
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) Timer() float32 {
	return s.timer
}

func (s *Snake) Length() int {
	return s.length
}

func (s *Snake) Policy() TurnPolicy {
	return s.policy
}

// Tail returns a copy of the tail, most recent cell first.
func (s *Snake) Tail() []int {
	tail := make([]int, len(s.tail))
	copy(tail, s.tail)
	return tail
}

// Occupies reports whether the head or the tail covers index.
func (s *Snake) Occupies(index int) bool {
	return index == s.current || s.tailContains(index)
}
