// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play a game
//	snake scores             - Show the high score and game history
//	snake serve              - Start an SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible gameplay
//	--length <n>        - Initial snake length
//	--hiscore <path>    - High score file
//	--db <path>         - Game history database
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/platform/tui"
	"github.com/vovakirdan/snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLength   int
	flagHiscore  string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game played in the terminal.

Steer with the arrow keys or WASD. Eating food makes the snake longer and
the game faster. The board wraps around at its edges; running into your
own body ends the game. Press q to give up.

Available commands:
  play     - Play a game (default)
  scores   - View the high score and game history
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake --length 5 --seed 42
  snake scores
  snake serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagLength, "length", 0, "Initial snake length (overrides config)")
	pf.StringVar(&flagHiscore, "hiscore", "", "Path to high score file (overrides config)")
	pf.StringVar(&flagDBPath, "db", "", "Path to game history database (overrides config)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Board.InitialLength = flagLength
	}
	if flagHiscore != "" {
		cfg.Storage.HiscoreFile = flagHiscore
	}
	if flagDBPath != "" {
		cfg.Storage.HistoryDB = flagDBPath
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the level from --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// newFileLogger logs to --log-file, or nowhere when it is unset: the game
// owns the terminal while it runs.
func newFileLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, prefix)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, prefix)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// openHiscore resolves the high score file from the config.
func openHiscore(cfg config.Config) (*storage.FileStore, error) {
	path, err := storage.ResolvePath(cfg.Storage.HiscoreFile)
	if err != nil {
		return nil, err
	}
	return storage.NewFileStore(path), nil
}

// openHistory opens the history database. The game works without it, so
// failures are logged and yield nil.
func openHistory(cfg config.Config, logger *log.Logger) *storage.Store {
	if cfg.Storage.HistoryDB == "" {
		return nil
	}
	store, err := storage.Open(cfg.Storage.HistoryDB)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return nil
	}
	return store
}

// historyStore keeps a nil store out of the interface.
func historyStore(s *storage.Store) tui.HistoryStore {
	if s == nil {
		return nil
	}
	return s
}

// playerName returns the local user name for history records.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
