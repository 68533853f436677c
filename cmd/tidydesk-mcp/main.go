package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tidydesk/internal/adapters/filesystem"
	mcpadapter "tidydesk/internal/adapters/mcp"
	"tidydesk/internal/config"
	"tidydesk/internal/domain"
)

func main() {
	rulesFlag := flag.String("rules", "", "path to a TOML rules file")
	flag.Parse()

	rules, err := config.LoadRules(filesystem.ExpandPath(*rulesFlag))
	if err != nil {
		log.Fatalf("tidydesk-mcp: %v", err)
	}

	ws := filesystem.NewRepository()
	classifier := domain.NewClassifier(rules)

	mcpServer := server.NewMCPServer(
		"tidydesk-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check that returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, ws, classifier)
	mcpadapter.RegisterWriteTools(mcpServer, ws, classifier)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tidydesk-mcp: %v", err)
	}
}
