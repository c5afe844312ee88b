package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPortfolioCmd(a *App) *cobra.Command {
	var format, owner, output string

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Export completed simulations as a portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			p, err := a.Portfolio.Build(context.Background(), app.PortfolioRequest{Now: &now, Owner: owner})
			if err != nil {
				return err
			}
			out, err := formatter.EncodePortfolio(p, format)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing portfolio: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d projects\n", output, len(p.Entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatter.PortfolioYAML, "Output format: yaml or json")
	cmd.Flags().StringVar(&owner, "owner", "", "Name shown on the portfolio")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
