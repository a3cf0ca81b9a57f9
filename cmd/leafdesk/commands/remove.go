package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <username>",
		Short: "Delete a cached profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !appCtx.Registry.Delete(cmd.Context(), args[0]) {
				fmt.Printf("no cached profile named %s\n", args[0])
				return nil
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}
}
