// Package command holds small helpers shared by the cobra subcommand
// packages under cmd/.
package command

import (
	"github.com/spf13/cobra"
)

// NewSubcommandGroup returns a bare command that only exists to group the
// given subcommands; invoking it without one prints usage.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}
