package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/errlens/internal/viewer"
)

func newViewCommand(root *rootFlags) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the log interactively",
		Long: `Open a full-screen viewer. Number keys 1-8 toggle categories, r switches
between file order and newest first, d toggles datetimes and R reloads the
log. Press ? for all keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := root.open()
			if err != nil {
				return err
			}
			defer session.Close()

			opts, err := filters.apply(cmd, session.DefaultOptions())
			if err != nil {
				return err
			}
			return viewer.Run(viewer.Options{
				Context:     cmd.Context(),
				Loader:      session,
				Filters:     opts,
				ThemeName:   session.Prefs.Theme,
				LineNumbers: session.Prefs.LineNumbers,
				LogPath:     session.Config.LogPath,
			})
		},
	}

	filters.register(cmd)
	return cmd
}
