package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/vire-review/internal/common"
	"github.com/bobmcallan/vire-review/internal/review"
	"github.com/bobmcallan/vire-review/internal/storage"
)

// newMCPServer builds the MCP server with every review tool registered.
func newMCPServer(cfg *common.Config, svc *review.Service, logger *common.Logger) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)
	registerTools(mcpServer, newToolHandlers(svc, logger, cfg.Portfolio.Symbols))
	return mcpServer
}

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for desktop agents)")
	configFile := flag.String("config", "vire-review.toml", "Path to config file")
	flag.Parse()

	cfg, err := common.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	common.LoadVersionFromFile()

	// Stdout carries the stdio protocol, so console logging always goes to stderr.
	logger := common.NewLoggerFromConfig(cfg.Logging)

	store, err := storage.NewDataStore(cfg.Storage, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open review data")
		os.Exit(1)
	}

	svc := review.NewService(store, logger)
	mcpServer := newMCPServer(cfg, svc, logger)

	logger.Info().
		Str("version", common.GetFullVersion()).
		Str("storage", store.Name()).
		Bool("stdio", *stdio).
		Msg("Stock reviewer starting")

	if *stdio {
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := strconv.Itoa(cfg.Server.Port)
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().Str("port", port).Msg("Starting MCP Streamable HTTP")

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
