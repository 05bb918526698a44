package main

import (
	"flag"
	"log/slog"
	"os"

	planmcp "github.com/claude/planfit/internal/mcp"
	"github.com/claude/planfit/internal/plan"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// planfit-mcp serves the weekly plan over MCP on stdio. The plan store is
// local to this process and empty on every start.
func main() {
	flag.Parse()

	// Logs go to stderr; stdout carries the MCP stream.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("PlanFit MCP server starting", "version", Version)

	store := plan.NewStore()
	s := planmcp.New(store, Version, log)

	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
