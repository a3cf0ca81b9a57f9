package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <username>",
		Short: "Cache a profile from the remote service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Registry.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("cached %s (#%d)\n", p.Username(), p.ID())
			return nil
		},
	}
}
