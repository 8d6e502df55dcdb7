package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/platform/shutdown"
	"github.com/vovakirdan/snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game sized to the current terminal.

Controls:
  Arrows/WASD - Steer
  Q           - Give up
  Enter       - Leave after losing
  Ctrl+C      - Save and exit

The high score is saved when the game ends, including when the process
is terminated or the terminal is closed.

Examples:
  snake play
  snake play --length 5
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger("snake")
	if err != nil {
		return err
	}
	defer closeLog()

	hiscore, err := openHiscore(cfg)
	if err != nil {
		return err
	}
	history := openHistory(cfg, logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	rec := tui.NewRecorder(hiscore, historyStore(history), playerName(), logger)
	model := tui.NewModel(cfg, rc, rec, logger)
	logger.Info("game started", "width", width, "height", height, "hiscore", hiscore.Path())

	hook := shutdown.New(logger)
	if history != nil {
		hook.Register(func() { history.Close() })
	}
	hook.Register(rec.Save)
	defer hook.Run()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	stop := hook.Watch(ctx, func(os.Signal) { cancel() })
	defer stop()

	if err := tui.Run(ctx, model); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
