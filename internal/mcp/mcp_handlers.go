package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huangsam/speedcheck/core"
	"github.com/huangsam/speedcheck/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.HistoryStore
}

func (h *toolHandler) handleGetSpeedHistory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	results, err := h.store.Load()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading history failed: %v", err)), nil
	}

	limit := request.GetInt("limit", h.baseCfg.ResultLimit)
	if limit > 0 && len(results) > limit {
		results = results[len(results)-limit:]
	}

	jsonData, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSpeedSummary(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	results, err := h.store.Load()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading history failed: %v", err)), nil
	}

	summary := core.Summarize(results)
	if summary == nil {
		return mcp.NewToolResultError("no speed test runs recorded yet"), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetImprovementTips(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	results, err := h.store.Load()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading history failed: %v", err)), nil
	}

	var tips []string
	if len(results) == 0 {
		tips = core.ImprovementTips(nil)
	} else {
		tips = core.ImprovementTips(&results[len(results)-1])
	}

	jsonData, _ := json.MarshalIndent(map[string][]string{"tips": tips}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
