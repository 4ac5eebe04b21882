package cli

import (
	"time"

	"github.com/spf13/cobra"

	cfgpkg "github.com/c-h3xcode/td/internal/config"
	"github.com/c-h3xcode/td/internal/runtime"
	logpkg "github.com/c-h3xcode/td/pkg/log"
)

// NewRoot constructs the root command with the push, read, stats and gc
// subcommands.
func NewRoot(logger logpkg.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "tqueue",
		Short: "Durable per-queue event log",
		Long:  "tqueue manages a durable, per-queue event log backed by a write-ahead binlog.",
	}
	root.PersistentFlags().String("config", "", "Path to a JSON config file")
	root.PersistentFlags().String("data-dir", "", "Data directory (defaults to the OS application data directory)")
	root.PersistentFlags().String("fsync", "", "Fsync mode: always|interval|never")

	root.AddCommand(newPushCommand(logger))
	root.AddCommand(newReadCommand(logger))
	root.AddCommand(newStatsCommand(logger))
	root.AddCommand(newGCCommand(logger))
	return root
}

// openRuntime builds the effective configuration (file, env, then flags) and
// opens the runtime.
func openRuntime(cmd *cobra.Command, logger logpkg.Logger) (*runtime.Runtime, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := cfgpkg.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	cfgpkg.FromEnv(&cfg)
	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if v, _ := cmd.Flags().GetString("fsync"); v != "" {
		cfg.Fsync = v
	}
	return runtime.Open(runtime.Options{
		DataDir:   cfg.DataDir,
		Sync:      cfg.SyncMode(),
		SyncEvery: time.Duration(cfg.FsyncIntervalMs) * time.Millisecond,
		Config:    cfg,
		Logger:    logger,
	})
}
