package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gigsim/internal/cli/formatter"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/spf13/cobra"
)

func newMsgCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "msg",
		Aliases: []string{"chat"},
		Short:   "Exchange chat messages on a simulation",
	}
	cmd.AddCommand(newMsgSendCmd(app), newMsgListCmd(app))
	return cmd
}

func newMsgSendCmd(app *App) *cobra.Command {
	var from, body string

	cmd := &cobra.Command{
		Use:   "send ID",
		Short: "Record a message from you or the client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSimulationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(body) == "" {
				if !app.interactive() {
					return fmt.Errorf("--body is required")
				}
				if err := messageBodyForm(&body).Run(); err != nil {
					return err
				}
			}

			before, err := app.Simulations.GetByID(ctx, id)
			if err != nil {
				return err
			}
			msg := &domain.Message{
				SimulationID: id,
				Sender:       domain.Sender(strings.ToLower(from)),
				Body:         body,
				SentAt:       app.now().UTC(),
			}
			if err := app.Messages.Send(ctx, msg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sent message to %s\n", before.DisplayID())
			after, err := app.Simulations.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if after.Status != before.Status {
				fmt.Fprintf(out, "%s is now %s\n", after.DisplayID(), formatter.StatusPill(after.Status))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", string(domain.SenderUser), "Sender: user or client")
	cmd.Flags().StringVar(&body, "body", "", "Message text (markdown subset)")

	return cmd
}

func newMsgListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list ID",
		Short: "Show a simulation's chat transcript",
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
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMessages(sim, msgs, app.now()))
			return nil
		},
	}
}
