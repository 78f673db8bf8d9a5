package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/errlens/internal/errlog"
	"github.com/five82/errlens/internal/render"
)

func newShowCommand(root *rootFlags) *cobra.Command {
	var (
		filters     filterFlags
		format      string
		plain       bool
		lineNumbers bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the classified log",
		Long: `Print the log with entries styled by category and stack traces indented
under their error.

Examples:
  errlens show --reverse
  errlens show --only error,stackTraceTitle,stackTraceStep,stackTraceOrigin
  errlens show --format json | jq .`,
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

			out := cmd.OutOrStdout()
			if errors.Is(res.Err(), errlog.ErrLogUnavailable) {
				printUnavailable(cmd.ErrOrStderr(), session.Config.LogPath)
				return nil
			}

			var r render.Renderer
			switch format {
			case "text":
				r = render.NewTextRenderer(session.Prefs.Theme, plain, lineNumbers || session.Prefs.LineNumbers)
			case "json":
				r = render.JSONRenderer{}
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
			return r.Render(out, res)
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json")
	cmd.Flags().BoolVar(&plain, "plain", false, "no colors; mark titles with ** and datetimes with backticks")
	cmd.Flags().BoolVarP(&lineNumbers, "line-numbers", "n", false, "prefix lines with their line number in the file")
	return cmd
}
