package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"leafdesk/internal/ui"
)

func refreshCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "refresh [username]",
		Short: "Sync cached profiles with the remote service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				p, ok := appCtx.Registry.Find(cmd.Context(), args[0])
				if !ok {
					return fmt.Errorf("no cached profile named %s", args[0])
				}
				ok, err := p.Refresh(cmd.Context(), force)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(ui.MutedStyle.Render("not refreshed (throttled or refused); use --force"))
					return nil
				}
				fmt.Printf("refreshed %s\n", args[0])
				return nil
			}

			for _, res := range appCtx.Registry.RefreshAll(cmd.Context(), force) {
				switch {
				case res.Err != nil:
					fmt.Printf("%s  %s\n", res.Username, ui.ErrStyle.Render(res.Err.Error()))
				case res.Refreshed:
					fmt.Printf("%s  refreshed\n", res.Username)
				default:
					fmt.Printf("%s  %s\n", res.Username, ui.MutedStyle.Render("skipped"))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "refresh even within the throttle window, re-fetching avatars")
	return cmd
}
