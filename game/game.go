package game

import (
	"io"
	"log"
	"snake-grid/game/entity"
	"snake-grid/game/manager"
	"snake-grid/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrInvalidGridSide   = errors.New("grid side must be positive")
	ErrInvalidTick       = errors.New("tick threshold must be positive")
	ErrInvalidTurnPolicy = errors.New("unknown turn policy")
)

// Config is fixed for the lifetime of a Game.
type Config struct {
	GridSide      int
	TickThreshold float32 // seconds per movement step
	TurnPolicy    entity.TurnPolicy
	Rand          manager.Rand // nil seeds from Seed
	Seed          uint64
	Logger        *log.Logger // nil discards
}

func DefaultConfig() Config {
	return Config{
		GridSide:      types.DefaultGridSide,
		TickThreshold: types.DefaultTickThreshold,
		TurnPolicy:    entity.TurnOnTick,
	}
}

// Validate reports the first setting the game cannot run with.
func (c Config) Validate() error {
	if c.GridSide <= 0 {
		return errors.Wrapf(ErrInvalidGridSide, "got %d", c.GridSide)
	}
	if !(c.TickThreshold > 0) {
		return errors.Wrapf(ErrInvalidTick, "got %v", c.TickThreshold)
	}
	if c.TurnPolicy != entity.TurnOnTick && c.TurnPolicy != entity.TurnImmediate {
		return errors.Wrapf(ErrInvalidTurnPolicy, "got %d", int(c.TurnPolicy))
	}
	return nil
}

// FrameInput is what the front end gathered during one frame.
type FrameInput struct {
	Delta     float32 // seconds since the previous frame
	Direction types.Direction
	Turn      bool // Direction is set
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Ate       bool
	Collided  bool
	HighScore bool
	Run       *manager.RunRecord // last finished run when Collided
}

// Snapshot is a read-only copy of what the renderer needs for one frame.
type Snapshot struct {
	Grid        types.Grid
	Head        int
	Tail        []int
	Food        int
	Direction   types.Direction
	Score       int
	HighScore   int
	GamesPlayed int
	AvgScore    float64
	MedianScore float64
	Scores      []int
}

type Game struct {
	UUID      string
	Grid      types.Grid
	Clock     float64 // game time in seconds, sum of frame deltas
	snake     *entity.Snake
	food      *manager.FoodManager
	collision *manager.CollisionManager
	state     *manager.StateManager
	logger    *log.Logger
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game config")
	}

	rng := cfg.Rand
	if rng == nil {
		rng = manager.NewRand(cfg.Seed)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	grid := types.Grid{Side: cfg.GridSide}
	g := &Game{
		UUID:      uuid.New().String(),
		Grid:      grid,
		snake:     entity.NewSnake(grid, cfg.TickThreshold, cfg.TurnPolicy),
		food:      manager.NewFoodManager(grid, rng),
		collision: manager.NewCollisionManager(grid),
		state:     manager.NewStateManager(),
		logger:    logger,
	}

	g.logger.Printf("session %s: %dx%d grid, tick %.2fs, turn policy %s",
		g.UUID, grid.Side, grid.Side, cfg.TickThreshold, cfg.TurnPolicy)
	return g, nil
}

// Step runs one frame: turn, eat, then advance.
func (g *Game) Step(in FrameInput) StepResult {
	var res StepResult
	g.Clock += float64(in.Delta)

	if in.Turn && g.snake.SetDirection(in.Direction) {
		g.endRun(&res)
	}

	if g.collision.IsFoodCollision(g.snake.Head(), g.food.Position()) {
		g.eat(&res)
	}

	if g.snake.Update(in.Delta) {
		g.endRun(&res)
	}
	return res
}

func (g *Game) eat(res *StepResult) {
	res.Ate = true
	g.snake.Grow()
	g.state.ObserveLength(g.snake.Length())
	if g.state.AddScore() {
		res.HighScore = true
		g.logger.Printf("session %s: new high score %d", g.UUID, g.state.GetHighScore())
	}

	pos := g.food.Spawn(g.collision.Occupied(g.snake))
	if !g.collision.ValidateSpawnPosition(pos, g.snake) {
		g.logger.Printf("session %s: no free cell, coin parked at %d", g.UUID, pos)
	}
}

func (g *Game) endRun(res *StepResult) {
	record := g.state.EndRun(g.Clock)
	res.Collided = true
	res.Run = &record
	g.logger.Printf("session %s: run %d over, score %d, length %d, %.1fs",
		g.UUID, g.state.GetGamesPlayed(), record.Score, record.Length, record.Duration())
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:        g.Grid,
		Head:        g.snake.Head(),
		Tail:        g.snake.Tail(),
		Food:        g.food.Position(),
		Direction:   g.snake.Direction(),
		Score:       g.state.GetScore(),
		HighScore:   g.state.GetHighScore(),
		GamesPlayed: g.state.GetGamesPlayed(),
		AvgScore:    g.state.GetAverageScore(),
		MedianScore: g.state.GetMedianScore(),
		Scores:      g.state.GetScoreHistory(),
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() int {
	return g.food.Position()
}

func (g *Game) GetState() *manager.StateManager {
	return g.state
}
