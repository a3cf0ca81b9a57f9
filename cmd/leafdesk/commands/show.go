package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"leafdesk/internal/ui"
)

func showCmd() *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "show <username|id>",
		Short: "Look up a profile on the remote service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, err := appCtx.Registry.Obtain(cmd.Context(), args[0], byID)
			if err != nil {
				return err
			}
			if !remote.Success {
				fmt.Println(ui.ErrStyle.Render("profile not found: " + args[0]))
				return nil
			}
			fmt.Println(ui.TitleStyle.Render(remote.Username))
			fmt.Printf("%s%s\n", ui.KeyStyle.Render("id"), ui.ValueStyle.Render(fmt.Sprintf("%d", remote.ID)))
			fmt.Printf("%s%s\n", ui.KeyStyle.Render("name"), ui.ValueStyle.Render(remote.Name))
			fmt.Printf("%s%s\n", ui.KeyStyle.Render("url"), ui.ValueStyle.Render(remote.URL))
			fmt.Printf("%s%s\n", ui.KeyStyle.Render("avatar"), ui.ValueStyle.Render(remote.Avatar))
			if remote.Coin.Title != "" {
				fmt.Printf("%s%s\n", ui.KeyStyle.Render("coin"), ui.ValueStyle.Render(remote.Coin.Title))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&byID, "id", false, "look up by numeric id instead of username")
	return cmd
}
