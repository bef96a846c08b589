// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/huangsam/speedcheck/internal/contract"
)

// NewMCPServer initializes and configures the Speedcheck MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.HistoryStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Speedcheck History Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: get_speed_history ---
	s.AddTool(mcp.NewTool("get_speed_history",
		mcp.WithDescription("Return recorded speed test runs with download/upload speeds, ping, and stability scores."),
		mcp.WithNumber("limit", mcp.Description("Limit results to the most recent N runs.")),
	), h.handleGetSpeedHistory)

	// --- 2. Tool: get_speed_summary ---
	s.AddTool(mcp.NewTool("get_speed_summary",
		mcp.WithDescription("Return aggregate statistics over the recorded speed test history (mean/median/min/max, stability, trend)."),
	), h.handleGetSpeedSummary)

	// --- 3. Tool: get_improvement_tips ---
	s.AddTool(mcp.NewTool("get_improvement_tips",
		mcp.WithDescription("Return connection improvement tips based on the most recent recorded run."),
	), h.handleGetImprovementTips)

	return s
}

// StartMCPServer starts the Speedcheck MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.HistoryStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
