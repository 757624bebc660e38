package main

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"bakerspal/internal/adapters/cookiefile"
	mcpadapter "bakerspal/internal/adapters/mcp"
	"bakerspal/internal/adapters/sqlitestore"
	"bakerspal/internal/config"
	"bakerspal/internal/logging"
	"bakerspal/internal/ports"
	"bakerspal/internal/state"
)

func main() {
	zlog := logging.New(false)
	defer zlog.Sync()

	store, err := openStore()
	if err != nil {
		log.Fatalf("bakerspal-mcp: %v", err)
	}
	defer store.Close()

	tracker := state.Load(store,
		state.WithChannel(state.Channel(config.Channel())),
		state.WithLogger(zlog),
	)

	mcpServer := server.NewMCPServer(
		"bakerspal-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, tracker)
	mcpadapter.RegisterWriteTools(mcpServer, tracker)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("bakerspal-mcp: %v", err)
	}
}

func openStore() (ports.StateStore, error) {
	dir := config.DataDir()
	if config.StoreBackend() == config.StoreCookie {
		return cookiefile.Open(dir)
	}
	return sqlitestore.Open(dir)
}
