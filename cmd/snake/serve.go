package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/platform/shutdown"
	"github.com/vovakirdan/snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own game. The high score file and the game
history are shared by all players.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key in the data directory

Examples:
  snake serve                           # Listen on :23234
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh -t localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "snake-ssh")
	if err != nil {
		return err
	}

	hiscore, err := openHiscore(cfg)
	if err != nil {
		return err
	}
	history := openHistory(cfg, logger)

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        cfg,
	}

	server, err := tui.NewSSHServer(srvCfg, hiscore, history, logger)
	if err != nil {
		if history != nil {
			history.Close()
		}
		return fmt.Errorf("error creating server: %w", err)
	}

	if history != nil {
		defer history.Close()
	}

	// Sessions save their own games; a signal only stops the listener.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	stop := shutdown.New(logger).Watch(ctx, func(os.Signal) { cancel() })
	defer stop()

	fmt.Printf("Starting snake SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
