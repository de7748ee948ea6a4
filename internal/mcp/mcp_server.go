// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/kwtrend/internal/contract"
	"github.com/huangsam/kwtrend/internal/iocache"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the kwtrend MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, cache iocache.EngineCache, loader contract.SourceLoader) *server.MCPServer {
	s := server.NewMCPServer(
		"Keyword Trend Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		cache:   cache,
		loader:  loader,
	}

	// --- 1. Tool: list_periods ---
	s.AddTool(mcp.NewTool("list_periods",
		mcp.WithDescription("List every week of a keyword report in order, with its record count, total and leading keyword."),
		mcp.WithString("source", mcp.Description("Path to the delimited report (defaults to the configured source).")),
	), h.handleListPeriods)

	// --- 2. Tool: get_ranking ---
	s.AddTool(mcp.NewTool("get_ranking",
		mcp.WithDescription("Get the ranked keyword table for one week, or for every week in order."),
		mcp.WithString("source", mcp.Description("Path to the delimited report.")),
		mcp.WithString("week", mcp.Description("Week to select. Leave empty for all weeks.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of rows returned.")),
	), h.handleGetRanking)

	// --- 3. Tool: get_top_keywords ---
	s.AddTool(mcp.NewTool("get_top_keywords",
		mcp.WithDescription("Get the top keywords by count for one week, or across every record."),
		mcp.WithString("source", mcp.Description("Path to the delimited report.")),
		mcp.WithString("week", mcp.Description("Week to select. Leave empty for all weeks.")),
		mcp.WithNumber("limit", mcp.Description("Number of keywords (defaults to 10).")),
	), h.handleGetTopKeywords)

	// --- 4. Tool: get_trends ---
	s.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Get keyword counts per week for the keywords with the highest totals, or the top points of one week."),
		mcp.WithString("source", mcp.Description("Path to the delimited report.")),
		mcp.WithString("week", mcp.Description("Week to select. Leave empty for the cross-week series.")),
		mcp.WithNumber("limit", mcp.Description("Number of keywords (defaults to 5).")),
	), h.handleGetTrends)

	// --- 5. Tool: get_weekly_totals ---
	s.AddTool(mcp.NewTool("get_weekly_totals",
		mcp.WithDescription("Get the summed keyword count of every week in order."),
		mcp.WithString("source", mcp.Description("Path to the delimited report.")),
	), h.handleGetWeeklyTotals)

	// --- 6. Tool: export_report ---
	s.AddTool(mcp.NewTool("export_report",
		mcp.WithDescription("Export one week, or every week, as delimited text with a suggested filename."),
		mcp.WithString("source", mcp.Description("Path to the delimited report.")),
		mcp.WithString("week", mcp.Description("Week to export. Leave empty for all weeks.")),
	), h.handleExportReport)

	return s
}

// StartMCPServer starts the kwtrend MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, cache iocache.EngineCache, loader contract.SourceLoader) error {
	s := NewMCPServer(baseCfg, cache, loader)
	return server.ServeStdio(s)
}
