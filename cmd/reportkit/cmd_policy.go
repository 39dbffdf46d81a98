package main

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/reportkit/policy"
)

func newPolicyCmd(a *app) *cobra.Command {
	var builtin bool
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Print the template policy as YAML",
		Long: `Prints the effective template policy: the built-in defaults overlaid
with the config file's policy section and policy file. The policy is
validated first. The output can be edited and used as a policy file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := policy.Default()
			if !builtin {
				compiled, err := a.policy()
				if err != nil {
					return err
				}
				p = compiled.Policy
			}
			data, err := p.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&builtin, "default", false, "Print the built-in policy, ignoring the configuration")
	return cmd
}
