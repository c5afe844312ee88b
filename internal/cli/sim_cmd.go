package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gigsim/internal/cli/formatter"
	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/leveling"
	"github.com/spf13/cobra"
)

func newSimCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sim",
		Aliases: []string{"simulation"},
		Short:   "Manage simulations",
	}

	cmd.AddCommand(
		newSimAddCmd(app),
		newSimListCmd(app),
		newSimInspectCmd(app),
		newSimUpdateCmd(app),
		newSimStatusCmd(app),
		newSimArchiveCmd(app),
		newSimUnarchiveCmd(app),
		newSimRemoveCmd(app),
	)

	return cmd
}

func newSimAddCmd(app *App) *cobra.Command {
	var v simAddValues

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Start a new simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if v.ShortID == "" || v.Title == "" {
				if !app.interactive() {
					return fmt.Errorf("--id and --title are required")
				}
				if err := simAddForm(&v).Run(); err != nil {
					return err
				}
			}

			dl, err := parseDeadlineFlag(v.Deadline, app.now())
			if err != nil {
				return err
			}
			sim := &domain.Simulation{
				ShortID:  v.ShortID,
				Title:    strings.TrimSpace(v.Title),
				Client:   strings.TrimSpace(v.Client),
				Deadline: dl,
			}
			if err := app.Simulations.Create(context.Background(), sim); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created simulation %s [%s]\n", sim.Title, sim.ShortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&v.ShortID, "id", "", "Short ID (3-6 uppercase letters + 2-4 digits, e.g. LOGO01)")
	cmd.Flags().StringVar(&v.Title, "title", "", "Simulation title")
	cmd.Flags().StringVar(&v.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&v.Deadline, "deadline", "", "Deadline (YYYY-MM-DD, YYYY-MM-DDTHH:MM, epoch ms or +36h)")

	return cmd
}

func newSimListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List simulations",
		RunE: func(cmd *cobra.Command, args []string) error {
			sims, err := app.Simulations.List(context.Background(), all)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSimulationList(sims, app.now(), app.Config.Deadline.WarningHours))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived simulations")

	return cmd
}

func newSimInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show simulation details",
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
			msgs, err := app.Messages.List(ctx, id)
			if err != nil {
				return err
			}

			now := app.now()
			rec := sim.Activity(len(msgs))
			data := formatter.SimulationInspectData{
				Simulation: sim,
				Messages:   rec.MessageCount,
				XP:         leveling.Score(rec, now).Total(),
				Deadline: deadline.Classify(deadline.Input{
					Target:                deadline.AtPtr(sim.Deadline),
					Now:                   now,
					WarningThresholdHours: app.Config.Deadline.WarningHours,
					Mode:                  app.Config.Deadline.RenderMode,
				}),
				Now: now,
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSimulationInspect(data))
			return nil
		},
	}
}

func newSimUpdateCmd(app *App) *cobra.Command {
	var title, client, dl string
	var clearDeadline bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Edit a simulation's title, client or deadline",
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

			if cmd.Flags().Changed("title") {
				sim.Title = strings.TrimSpace(title)
			}
			if cmd.Flags().Changed("client") {
				sim.Client = strings.TrimSpace(client)
			}
			if cmd.Flags().Changed("deadline") {
				parsed, err := parseDeadlineFlag(dl, app.now())
				if err != nil {
					return err
				}
				sim.Deadline = parsed
			}
			if clearDeadline {
				sim.Deadline = nil
			}

			if err := app.Simulations.Update(ctx, sim); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated simulation %s\n", sim.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&client, "client", "", "New client name")
	cmd.Flags().StringVar(&dl, "deadline", "", "New deadline (YYYY-MM-DD, YYYY-MM-DDTHH:MM, epoch ms or +36h)")
	cmd.Flags().BoolVar(&clearDeadline, "clear-deadline", false, "Remove the deadline")
	cmd.MarkFlagsMutuallyExclusive("deadline", "clear-deadline")

	return cmd
}

func newSimStatusCmd(app *App) *cobra.Command {
	statuses := []string{
		string(domain.StatusCreated),
		string(domain.StatusRequirementsSent),
		string(domain.StatusInProgress),
		string(domain.StatusCompleted),
		string(domain.StatusCancelled),
	}

	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Move a simulation to " + strings.Join(statuses, "|"),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSimulationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			next, err := domain.ParseSimulationStatus(strings.ToLower(args[1]))
			if err != nil {
				return err
			}
			sim, err := app.Simulations.SetStatus(ctx, id, next)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", sim.DisplayID(), formatter.StatusPill(sim.Status))
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return statuses, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}
}

func newSimArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSimulationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Simulations.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived simulation %s\n", args[0])
			return nil
		},
	}
}

func newSimUnarchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive ID",
		Short: "Restore an archived simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSimulationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Simulations.Unarchive(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unarchived simulation %s\n", args[0])
			return nil
		},
	}
}

func newSimRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a simulation and its messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSimulationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Simulations.Delete(ctx, id, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed simulation %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if not archived")

	return cmd
}
