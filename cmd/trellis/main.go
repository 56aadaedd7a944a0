// Package main is the entry point for the trellis CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.Trellis/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "trellis",
		Short:        "Config-driven terminal layout engine",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "path to trellis.toml (default: search upward from the working directory)")

	root.AddCommand(
		treeCmd(),
		computeCmd(),
		checkCmd(),
		initCmd(),
		previewCmd(),
	)

	return root
}

// loadConfig reads the --config file. Without --config and without a
// trellis.toml anywhere up the tree, the built-in default layout is used.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if path == "" && errors.Is(err, config.ErrNotFound) {
		d := config.Defaults()
		return &d, nil
	}
	return cfg, err
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
