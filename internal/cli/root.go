// Package cli defines the errlens command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/five82/errlens/internal/app"
	"github.com/five82/errlens/internal/errlog"
)

type rootFlags struct {
	configPath string
	prefsPath  string
	logPath    string
	verbose    bool
}

func (f *rootFlags) open() (*app.Session, error) {
	return app.Open(app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		LogPath:    f.logPath,
		Verbose:    f.verbose,
	})
}

// NewRootCommand builds the errlens command tree.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "errlens",
		Short: "Classify and browse PHP error logs",
		Long: `errlens reads a PHP error log, tags every line (error, warning, notice,
deprecated, stack trace...), keeps stack traces attached to the error that
produced them and shows the result newest-first or in file order.

Settings are read from ~/.config/errlens/config.toml.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "config file (default: ~/.config/errlens/config.toml)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "preferences file (default: ~/.config/errlens/prefs.toml)")
	root.PersistentFlags().StringVarP(&flags.logPath, "log", "l", "", "PHP error log to read (overrides log_path)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(
		newShowCommand(flags),
		newCountCommand(flags),
		newViewCommand(flags),
		newPurgeCommand(flags),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// filterFlags are the display overrides shared by show and count.
type filterFlags struct {
	reverse  bool
	datetime bool
	orphans  bool
	only     []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.reverse, "reverse", "r", false, "newest entries first (default from config)")
	cmd.Flags().BoolVar(&f.datetime, "datetime", true, "show datetimes (default from config)")
	cmd.Flags().BoolVar(&f.orphans, "orphans", false, "show stack trace lines that have no owning entry")
	cmd.Flags().StringSliceVar(&f.only, "only", nil, "show only these categories, e.g. --only error,warning")
}

// apply layers explicitly set flags over the configured options.
func (f *filterFlags) apply(cmd *cobra.Command, opts errlog.Options) (errlog.Options, error) {
	if cmd.Flags().Changed("reverse") {
		opts.ReverseOrder = f.reverse
	}
	if cmd.Flags().Changed("datetime") {
		opts.ShowDatetime = f.datetime
	}
	if cmd.Flags().Changed("orphans") {
		opts.ShowOrphans = f.orphans
	}
	if len(f.only) > 0 {
		cats := make([]errlog.Category, 0, len(f.only))
		for _, name := range f.only {
			c, err := errlog.ParseCategory(name)
			if err != nil {
				return errlog.Options{}, fmt.Errorf("--only: %w", err)
			}
			cats = append(cats, c)
		}
		opts = opts.Only(cats...)
	}
	return opts, nil
}

func printUnavailable(w io.Writer, path string) {
	fmt.Fprintf(w, "No log file found at %s.\n", path)
	fmt.Fprintln(w, "Enable PHP error logging (log_errors = On, error_log = <path>) and point")
	fmt.Fprintln(w, "log_path in ~/.config/errlens/config.toml, or --log, at that file.")
}
