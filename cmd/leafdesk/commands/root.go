package commands

import (
	"github.com/spf13/cobra"

	"leafdesk/internal/app"
)

var (
	dataDir string
	apiBase string
	appCtx  *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "leafdesk",
		Short: "Local cache for leafal.io user profiles",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if apiBase != "" {
				cfg.APIBase = apiBase
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data dir (default <user config dir>/leafdesk)")
	root.PersistentFlags().StringVar(&apiBase, "api", "", "API base URL (default https://www.leafal.io/api/)")

	root.AddCommand(listCmd(), addCmd(), removeCmd(), showCmd(), loginCmd(), logoutCmd(), refreshCmd())
	return root.Execute()
}
