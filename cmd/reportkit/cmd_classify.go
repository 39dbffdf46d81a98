package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/reportkit/rank"
)

func newClassifyCmd(a *app) *cobra.Command {
	var (
		improvement string
		fromLabel   string
	)
	cmd := &cobra.Command{
		Use:   "classify <keyword> <position>...",
		Short: "Classify one keyword's ranking history",
		Long: `Shows how a keyword row would be classified. Positions are given oldest
first, the last one being the current month; use "-" for a month without
a position.

Example:
  reportkit classify "running shoes" 14 9 3
  reportkit classify shoes - 12 4 --from-label all-priors`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled, err := a.policy()
			if err != nil {
				return err
			}
			rules := compiled.Rules
			if improvement != "" {
				rules.Improvement = rank.Improvement(improvement)
			}
			if fromLabel != "" {
				rules.FromLabel = rank.FromLabel(fromLabel)
			}
			if err := rules.Validate(); err != nil {
				return err
			}

			row := rank.KeywordRow{Keyword: args[0], Cells: args[1:]}
			out, ok := rank.Classify(row, rules)
			w := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintf(w, "%s: skipped (needs %d positions and a current one)\n", row.Keyword, rules.MinRankingColumns)
				return nil
			}
			fmt.Fprintf(w, "keyword:   %s\n", row.Keyword)
			fmt.Fprintf(w, "positions: %s\n", strings.Join(args[1:], " "))
			fmt.Fprintf(w, "outcome:   %s\n", out.Kind)
			if out.Kind == rank.Progressed {
				fmt.Fprintf(w, "from:      %s\n", out.From)
				fmt.Fprintf(w, "page one:  %t\n", out.PageOne)
			}
			if out.Kind != rank.NoChange {
				fmt.Fprintf(w, "label:     %q\n", out.Label)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&improvement, "improvement", "", "Improvement rule: history or previous (default: policy)")
	cmd.Flags().StringVar(&fromLabel, "from-label", "", "From label rule: previous-cell or all-priors (default: policy)")
	return cmd
}
