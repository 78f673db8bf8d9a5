package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPurgeCommand(root *rootFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Empty the log file",
		Long: `Truncate the log file to zero bytes. The file itself is kept so PHP can
keep writing to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to purge without --yes")
			}
			session, err := root.open()
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Purge(cmd.Context()); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					printUnavailable(cmd.ErrOrStderr(), session.Config.LogPath)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Purged %s\n", session.Config.LogPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm truncating the log")
	return cmd
}
