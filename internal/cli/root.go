package cli

import (
	"time"

	"github.com/alexanderramin/gigsim/internal/config"
	"github.com/alexanderramin/gigsim/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Simulations service.SimulationService
	Messages    service.MessageService
	Progress    service.ProgressService
	Deadlines   service.DeadlineService
	Portfolio   service.PortfolioService
	Import      service.ImportService

	Config config.Config

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// import spinner only run when it returns true.
	IsInteractive func() bool
	// Now overrides the wall clock in tests.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) refreshInterval() time.Duration {
	secs := a.Config.Deadline.RefreshSeconds
	if secs <= 0 {
		secs = 1
	}
	return time.Duration(secs) * time.Second
}

// NewRootCmd creates the top-level "gigsim" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gigsim",
		Short:         "Freelance simulation tracker: levels, deadlines and portfolios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSimCmd(app),
		newMsgCmd(app),
		newLevelCmd(app),
		newDeadlinesCmd(app),
		newCountdownCmd(app),
		newPortfolioCmd(app),
		newImportCmd(app),
	)

	return root
}
