// Command reportkit rewrites monthly SEO report documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/reportkit/config"
	"github.com/tsawler/reportkit/internal/logging"
	"github.com/tsawler/reportkit/policy"
)

// app holds the state shared by the commands.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "reportkit",
		Short: "Rewrite monthly SEO report documents",
		Long: `reportkit rewrites exported monthly SEO reports (.docx) into the
client-facing layout: duplicated and internal sections are removed, the
title moves into the page header, and keywords are sorted into the
"reached", "kept" and "progressed" tables by their ranking history.

Processed copies are written to <folder>/Processed/<name>_modified.docx;
the originals are never changed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: built-in settings)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newRunCmd(a),
		newWatchCmd(a),
		newClassifyCmd(a),
		newPolicyCmd(a),
	)
	return root
}

// init loads the configuration and builds the logger.
func (a *app) init() error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	level := a.cfg.Logging.Level
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(a.cfg.Env, level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// policy loads and compiles the configured template policy.
func (a *app) policy() (*policy.Compiled, error) {
	p, err := a.cfg.LoadPolicy()
	if err != nil {
		return nil, err
	}
	return p.Compile()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
