package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gigsim/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import simulations from an exported JSON file",
		Long: `Import simulations from a JSON export of the platform API.

The file is either an array of projects or {"projects": [...]}. Each project
may carry its message count as meta.totalMessages or messageCount and its
deadline as deadlineTimestamp or deadline (epoch ms or ISO-8601). All
records are validated first; nothing is stored unless every one is valid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Importing "+args[0])
			}
			res, err := app.Import.ImportFile(context.Background(), args[0])
			stop()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}
