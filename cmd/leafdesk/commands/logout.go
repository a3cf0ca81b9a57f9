package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout <username>",
		Short: "Revoke a cached profile's sign-in token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := appCtx.Registry.Find(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("no cached profile named %s", args[0])
			}
			if !p.SignOut() {
				return fmt.Errorf("could not sign %s out", args[0])
			}
			fmt.Printf("%s signed out\n", args[0])
			return nil
		},
	}
}
