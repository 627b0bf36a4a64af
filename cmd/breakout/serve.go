package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so players can connect and play remotely.

Every connection gets its own independent game. Runs are recorded with
the SSH user name as the player.

Host key:
  - If --host-key is provided, uses that key file
  - Otherwise uses server.host_key from the config
  - Falls back to ~/.breakout/host_key (auto-generated)

Examples:
  breakout serve                          # Listen on the configured address
  breakout serve --ssh :2222              # Listen on port 2222
  breakout serve --host-key ./my_host_key # Use specific host key

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Close idle connections after this long (default 30m)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := configFromContext(cmd.Context())
	logger := loggerFromContext(cmd.Context()).WithPrefix("breakout-ssh")

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Game = cfg
	srvCfg.Address = cfg.Server.Addr
	srvCfg.HostKeyPath = cfg.Server.HostKeyPath
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = flagIdleTimeout
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open run database, runs will not be saved", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(srvCfg, store, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}

