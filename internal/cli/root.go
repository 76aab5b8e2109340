package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"issue-tracker/internal/tracker"
	"issue-tracker/pkg/datemath"
	"issue-tracker/pkg/log"
)

// DefaultAPIURL is used when neither --api nor TRACKER_API is set.
const DefaultAPIURL = "http://localhost:5000"

// App holds what the commands need to build a controller.
type App struct {
	NewAPI func(baseURL string) tracker.API
	Now    func() time.Time

	apiURL   string
	timezone string
	verbose  bool
}

// NewRootCmd creates the top-level "tracker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Issue tracker client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultURL := os.Getenv("TRACKER_API")
	if defaultURL == "" {
		defaultURL = DefaultAPIURL
	}
	root.PersistentFlags().StringVar(&app.apiURL, "api", defaultURL, "Issue service base URL (env TRACKER_API)")
	root.PersistentFlags().StringVar(&app.timezone, "tz", "", "IANA timezone for relative dates (default local)")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Log requests to stderr")

	root.AddCommand(
		newListCmd(app),
		newAddCmd(app),
		newEditCmd(app),
		newCloseCmd(app),
		newDeleteCmd(app),
		newTUICmd(app),
	)

	return root
}

// controller builds a Controller for one command run. quiet forces a
// discarding logger, for the full-screen UI.
func (app *App) controller(quiet bool) (*tracker.Controller, error) {
	parser, err := datemath.NewParser(app.timezone)
	if err != nil {
		return nil, err
	}

	logger := log.NewNop()
	if app.verbose && !quiet {
		logger = log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true})
	}

	opts := []tracker.Option{tracker.WithLogger(logger), tracker.WithDateParser(parser)}
	if app.Now != nil {
		opts = append(opts, tracker.WithClock(app.Now))
	}
	return tracker.New(app.NewAPI(app.apiURL), opts...), nil
}
