package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gigsim/internal/deadline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newCountdownCmd(app *App) *cobra.Command {
	var mode deadline.Mode

	cmd := &cobra.Command{
		Use:   "countdown ID",
		Short: "Live countdown to a simulation's deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSimulationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			sim, err := app.Simulations.GetByID(ctx, id)
			if err != nil {
				return err
			}

			model := newCountdownModel(sim, app.Config.Deadline.WarningHours, mode, app.refreshInterval(), app.now)
			if !app.interactive() {
				fmt.Fprint(cmd.OutOrStdout(), model.View())
				return nil
			}

			p := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	addModeFlag(cmd.Flags(), &mode, deadline.ModeFull)

	return cmd
}
