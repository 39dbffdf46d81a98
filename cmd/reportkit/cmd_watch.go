package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/reportkit/batch"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		f            runFlags
		skipExisting bool
		debounce     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch <folder>",
		Short: "Rewrite reports as they are added to a folder",
		Long: `Processes the reports already in the folder, then keeps watching it and
rewrites every report that is added or saved. Stop with Ctrl+C.

Example:
  reportkit watch ./reports --details-text "Built 12 backlinks"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			ctx := cmd.Context()
			opts, err := a.pipelineOptions(cmd, f)
			if err != nil {
				return err
			}
			runner, err := a.runner()
			if err != nil {
				return err
			}

			if !skipExisting {
				if _, err := runner.Run(ctx, dir, opts); err != nil {
					return err
				}
			}

			var wopts []batch.WatchOption
			if debounce > 0 {
				wopts = append(wopts, batch.WithDebounce(debounce))
			}
			wopts = append(wopts, batch.OnResult(func(r batch.Result) {
				if r.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "failed  %s: %v\n", r.Input, r.Err)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved   %s\n", r.Output)
			}))

			w, err := batch.NewWatcher(runner, dir, opts, wopts...)
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				_ = w.Stop()
				return err
			}

			select {
			case <-ctx.Done():
			case <-w.Done():
			}
			a.logger.Info("stopping watch", zap.String("dir", dir))
			return w.Stop()
		},
	}
	cmd.Flags().StringVarP(&f.detailsText, "details-text", "d", "", "Text for the details table (default: policy text)")
	cmd.Flags().BoolVar(&f.ask, "ask", false, "Read the details text from standard input")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Only process reports added after the watch starts")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "Quiet time before a changed file is processed (default: config)")
	return cmd
}
