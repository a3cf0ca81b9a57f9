package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"leafdesk/internal/ui"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every cached profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := appCtx.Registry.List(cmd.Context())
			if len(profiles) == 0 {
				fmt.Println(ui.MutedStyle.Render("no cached profiles. add one with: leafdesk add <username>"))
				return nil
			}
			for _, p := range profiles {
				rec := p.Record()
				status := ui.MutedStyle.Render("signed out")
				if rec.SignedIn {
					status = ui.TitleStyle.Render("signed in")
				}
				fmt.Printf("%s  %s  %s\n",
					ui.TitleStyle.Render(rec.Username),
					ui.MutedStyle.Render(fmt.Sprintf("#%d", rec.ID)),
					status,
				)
			}
			return nil
		},
	}
}
