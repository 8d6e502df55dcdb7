package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake/internal/platform/tui"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and game history",
	Long: `Display the high score and the best recorded games.

On a terminal an interactive table is shown; otherwise, or with --plain,
the scores are printed.

Examples:
  snake scores
  snake scores --plain --limit 5
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to print")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print instead of showing the table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "snake")
	if err != nil {
		return err
	}

	hiscore, err := openHiscore(cfg)
	if err != nil {
		return err
	}
	history := openHistory(cfg, logger)
	if history != nil {
		defer history.Close()
	}

	if flagScoresClear {
		if history == nil {
			return fmt.Errorf("no history database to clear")
		}
		if err := history.ClearGames(); err != nil {
			return err
		}
		fmt.Println("Game history cleared.")
		return nil
	}

	best := hiscore.Load()
	if history != nil {
		// The file may be missing on a machine that only kept the database.
		if dbBest, err := history.HighScore(); err == nil {
			best = max(best, dbBest)
		}
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height, termErr := term.GetSize(fd)
		if termErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(history, best, width, height)
	}

	fmt.Printf("hi-score: %d\n", best)
	if history == nil {
		return nil
	}

	games, err := history.TopGames(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving games: %w", err)
	}

	fmt.Println()
	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Length", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "------", "------", "----")
	for i, g := range games {
		fmt.Printf("  %-4d  %-6d  %-6d  %-12s  %s\n",
			i+1, g.Score, g.Length, g.Player, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := history.GetStats(); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Average: %.1f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
