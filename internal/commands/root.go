// Package commands holds the salesmaster command line: the HTTP server and
// the maintenance commands that share its configuration.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var debug bool
	rc := &cobra.Command{
		Use:   "salesmaster",
		Short: "SalesMaster Cloud backend and maintenance tools.",
		Long: `SalesMaster Cloud keeps the shared collection of customer accounts.

Administrators replace it from spreadsheets, vendors read the accounts
assigned to them and contact customers over WhatsApp. Configuration is
read from the environment and from a .env file in the working directory.
`,
		SilenceUsage: true,
	}
	rc.PersistentFlags().BoolVar(&debug, "debug", false, "Log at debug level.")

	logger := func(w io.Writer) *slog.Logger {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	// Server logs go to stdout like any service, the maintenance commands keep
	// stdout for their own output.
	rc.AddCommand(newServeCommand(func() *slog.Logger { return logger(stdout) }))
	rc.AddCommand(newMigrateCommand(func() *slog.Logger { return logger(stderr) }))
	rc.AddCommand(newImportCommand(stdout, func() *slog.Logger { return logger(stderr) }))

	rc.SetIn(stdin)
	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}
