package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/cli/formatter"
	"github.com/alexanderramin/gigsim/internal/importer"
	"github.com/spf13/cobra"
)

func newLevelCmd(a *App) *cobra.Command {
	var from string
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "level",
		Short: "Show XP, level and what each simulation contributed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := a.now()
			req := app.NewProgressRequest()
			req.Now = &now
			req.IncludeArchived = !activeOnly

			var resp *app.ProgressResponse
			if from != "" {
				records, err := importer.Load(from)
				if err != nil {
					return err
				}
				resp, err = a.Progress.ProgressFromRecords(ctx, req, records)
				if err != nil {
					return err
				}
			} else {
				var err error
				resp, err = a.Progress.Progress(ctx, req)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Compute from an exported JSON file instead of the local store")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Ignore archived simulations")

	return cmd
}
