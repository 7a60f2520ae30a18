package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/astradev123/obsidian-focus-time/internal/adapters/filesystem"
	mcpadapter "github.com/astradev123/obsidian-focus-time/internal/adapters/mcp"
	"github.com/astradev123/obsidian-focus-time/internal/config"
	"github.com/astradev123/obsidian-focus-time/internal/plugin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("focustime-mcp: %v", err)
	}
	workspaceFlag := flag.String("workspace", cfg.WorkspacePath, "path to the document workspace")
	flag.Parse()

	cfg.SetWorkspace(*workspaceFlag)

	blob := filesystem.NewBlobFile(filesystem.ExpandHome(cfg.BlobPath))
	files := filesystem.NewDataDir(filesystem.ExpandHome(cfg.DataDir))
	workspace := filesystem.NewWorkspace(filesystem.ExpandHome(cfg.WorkspacePath))

	p := plugin.New(blob, files, workspace, plugin.Options{
		SnapshotDir:  cfg.SnapshotDir,
		TickInterval: cfg.TickInterval,
	})

	mcpServer := server.NewMCPServer(
		"focustime-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterStatsTools(mcpServer, p.Stats)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("focustime-mcp: %v", err)
	}
}
