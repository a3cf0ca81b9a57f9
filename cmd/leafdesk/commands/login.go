package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign a cached profile in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return fmt.Errorf("password required (-p)")
			}
			p, ok := appCtx.Registry.Find(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("no cached profile named %s. add it first", args[0])
			}
			res, err := p.Authenticate(cmd.Context(), password)
			if err != nil {
				return err
			}
			if !res.Success {
				if res.Message != "" {
					return fmt.Errorf("sign-in refused: %s", res.Message)
				}
				return fmt.Errorf("sign-in refused")
			}
			fmt.Printf("%s signed in\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}
