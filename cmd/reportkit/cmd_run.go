package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/reportkit/batch"
	"github.com/tsawler/reportkit/metrics"
	"github.com/tsawler/reportkit/pipeline"
)

type runFlags struct {
	detailsText string
	ask         bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run <folder>",
		Short: "Rewrite every report in a folder",
		Long: `Rewrites every .docx report in the folder. Office lock files (~$*) and
other formats are ignored. A document that fails is reported and the run
continues with the next one.

Example:
  reportkit run ./reports --details-text "Built 12 backlinks"
  reportkit run ./reports --ask`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.detailsText, "details-text", "d", "", "Text for the details table (default: policy text)")
	cmd.Flags().BoolVar(&f.ask, "ask", false, "Read the details text from standard input")
	return cmd
}

func (a *app) run(cmd *cobra.Command, dir string, f runFlags) error {
	opts, err := a.pipelineOptions(cmd, f)
	if err != nil {
		return err
	}
	runner, err := a.runner()
	if err != nil {
		return err
	}

	sum, err := runner.Run(cmd.Context(), dir, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range sum.Results {
		if r.Err != nil {
			fmt.Fprintf(out, "failed  %s: %v\n", r.Input, r.Err)
			continue
		}
		fmt.Fprintf(out, "saved   %s\n", r.Output)
	}
	fmt.Fprintf(out, "%d of %d documents processed\n", sum.Succeeded(), len(sum.Results))

	if failed := len(sum.Failed()); failed > 0 {
		return fmt.Errorf("%d documents failed", failed)
	}
	return nil
}

// pipelineOptions resolves the per-run inputs from the flags.
func (a *app) pipelineOptions(cmd *cobra.Command, f runFlags) (pipeline.Options, error) {
	opts := pipeline.Options{DetailsText: f.detailsText}
	if !f.ask || cmd.Flags().Changed("details-text") {
		return opts, nil
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Enter the text for the details table:")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return opts, fmt.Errorf("failed to read details text: %w", err)
	}
	opts.DetailsText = strings.TrimSpace(line)
	return opts, nil
}

// runner builds a batch runner from the configuration.
func (a *app) runner() (*batch.Runner, error) {
	compiled, err := a.policy()
	if err != nil {
		return nil, err
	}
	m := metrics.New()
	p := pipeline.New(compiled, pipeline.WithMetrics(m))
	return batch.New(p, a.cfg, batch.WithLogger(a.logger), batch.WithMetrics(m)), nil
}
