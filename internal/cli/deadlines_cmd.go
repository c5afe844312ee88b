package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/gigsim/internal/app"
	"github.com/alexanderramin/gigsim/internal/cli/formatter"
	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/spf13/cobra"
)

const clearScreen = "\033[H\033[2J"

func newDeadlinesCmd(a *App) *cobra.Command {
	var (
		mode      deadline.Mode
		warnHours float64
		watch     bool
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "deadlines [ID...]",
		Short: "List deadline notices, most urgent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("warn-hours") {
				warnHours = a.Config.Deadline.WarningHours
			}
			if warnHours <= 0 {
				return fmt.Errorf("--warn-hours must be positive")
			}

			render := func(ctx context.Context) (string, error) {
				now := a.now()
				req := app.NewDeadlineRequest()
				req.Now = &now
				req.Mode = mode
				req.WarningHours = warnHours
				req.SimulationScope = args
				req.IncludeClosed = all
				resp, err := a.Deadlines.Notices(ctx, req)
				if err != nil {
					return "", err
				}
				return formatter.FormatDeadlines(resp), nil
			}

			if !watch {
				out, err := render(context.Background())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return watchLoop(ctx, cmd.OutOrStdout(), a.refreshInterval(), render)
		},
	}

	addModeFlag(cmd.Flags(), &mode, a.Config.Deadline.RenderMode)
	cmd.Flags().Float64Var(&warnHours, "warn-hours", deadline.DefaultWarningHours, "Hours before a deadline at which it becomes urgent")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-render every refresh interval until interrupted")
	cmd.Flags().BoolVar(&all, "all", false, "Include completed and cancelled simulations")

	return cmd
}

// watchLoop redraws render's output every interval until ctx is done.
// The first frame is drawn immediately.
func watchLoop(ctx context.Context, w io.Writer, interval time.Duration, render func(context.Context) (string, error)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		out, err := render(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(w, clearScreen+out+"\n")

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
