package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"bakerspal/internal/adapters/cookiefile"
	"bakerspal/internal/adapters/gemini"
	"bakerspal/internal/adapters/sqlitestore"
	"bakerspal/internal/adapters/tui"
	"bakerspal/internal/config"
	"bakerspal/internal/domain"
	"bakerspal/internal/logging"
	"bakerspal/internal/ports"
	"bakerspal/internal/state"
)

func main() {
	viewFlag := flag.String("view", config.StartView(), "view to open (dashboard, ingredients, recipes, sales, notes, assistant)")
	tokenFlag := flag.String("open", "", "share token to open instead of the stored state")
	verboseFlag := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log := logging.New(*verboseFlag)
	defer log.Sync()

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	tracker := state.Load(store,
		state.WithChannel(state.Channel(config.Channel())),
		state.WithToken(*tokenFlag),
		state.WithLogger(log),
	)

	advisor, err := gemini.New(context.Background(), config.GeminiAPIKey(), config.GeminiModel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(tracker, advisor, domain.ParseView(*viewFlag))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openStore() (ports.StateStore, error) {
	dir := config.DataDir()
	if config.StoreBackend() == config.StoreCookie {
		return cookiefile.Open(dir)
	}
	return sqlitestore.Open(dir)
}
