package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/errlens/internal/errlog"
	"github.com/five82/errlens/internal/render"
)

func newCountCommand(root *rootFlags) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count log entries per category",
		Long: `Count entries per category. Stack trace lines belong to their entry and
are not counted.`,
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
			res, err := session.Analyze(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if errors.Is(res.Err(), errlog.ErrLogUnavailable) {
				printUnavailable(cmd.ErrOrStderr(), session.Config.LogPath)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), render.CountsTable(res))
			return nil
		},
	}

	filters.register(cmd)
	return cmd
}
