package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bakerspal/internal/adapters/cookiefile"
	"bakerspal/internal/adapters/sqlitestore"
	"bakerspal/internal/config"
	"bakerspal/internal/logging"
	"bakerspal/internal/ports"
	"bakerspal/internal/state"
)

var (
	verbose bool
	log     *zap.Logger
	store   ports.StateStore
	tracker *state.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "bakerspal-cli",
	Short: "CLI for tracking a home bakery business",
	Long: `bakerspal-cli tracks the numbers of a small home bakery:
ingredients and their price history, recipes with cost breakdowns,
sales with credit tracking, and free-form notes.

Data lives in a local store and can be exported, imported, or shared
as a URL-safe token.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		log = logging.New(verbose)

		var err error
		dir := config.DataDir()
		if config.StoreBackend() == config.StoreCookie {
			store, err = cookiefile.Open(dir, cookiefile.WithLogger(log))
		} else {
			store, err = sqlitestore.Open(dir, sqlitestore.WithLogger(log))
		}
		if err != nil {
			return err
		}

		tracker = state.Load(store,
			state.WithChannel(state.Channel(config.Channel())),
			state.WithLogger(log),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
		if log != nil {
			log.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// GetTracker returns the initialized state tracker
func GetTracker() *state.Tracker {
	return tracker
}
