package main

import (
	"flag"
	"log"
	"os"
	"snake-grid/game"
	"snake-grid/game/entity"
	"snake-grid/game/types"
	"snake-grid/ui"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const windowTitle = "SNAKE"

func main() {
	side := flag.Int("side", types.DefaultGridSide, "Cells per row and column")
	tick := flag.Float64("tick", types.DefaultTickThreshold, "Seconds between moves (lower = faster)")
	turn := flag.String("turn", "tick", "Turn policy: tick (turn on next move) or immediate")
	seed := flag.Uint64("seed", 0, "Coin placement seed (0 = time based)")
	fps := flag.Int("fps", 60, "Target frame rate")
	width := flag.Int("width", 800, "Initial window width")
	height := flag.Int("height", 600, "Initial window height")
	flag.Parse()

	logger := log.New(os.Stderr, "snake: ", log.LstdFlags)

	policy, err := entity.ParseTurnPolicy(*turn)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	cfg := game.DefaultConfig()
	cfg.GridSide = *side
	cfg.TickThreshold = float32(*tick)
	cfg.TurnPolicy = policy
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	cfg.Logger = logger

	g, err := game.NewGame(cfg)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(*width), int32(*height), windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(*fps))

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		in := game.FrameInput{Delta: rl.GetFrameTime()}
		in.Direction, in.Turn = ui.PollDirection()
		g.Step(in)

		renderer.Draw(g)
	}

	state := g.GetState()
	logger.Printf("session %s closed: %d runs, best %d", g.UUID, state.GetGamesPlayed(), state.GetHighScore())
}
