package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huangsam/kwtrend/core"
	"github.com/huangsam/kwtrend/core/algo"
	"github.com/huangsam/kwtrend/internal/contract"
	"github.com/huangsam/kwtrend/internal/iocache"
	"github.com/huangsam/kwtrend/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	cache   iocache.EngineCache
	loader  contract.SourceLoader
}

// configFor clones the base config and applies the shared tool arguments.
func (h *toolHandler) configFor(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if s := request.GetString("source", ""); s != "" {
		cfg.Source = s
	}
	if cfg.Source == "" {
		return nil, errors.New("source is required")
	}
	if cfg.Source == contract.StdinSource {
		return nil, errors.New("stdin is not available over MCP")
	}
	cfg.Week = request.GetString("week", cfg.Week)
	if l := request.GetInt("limit", 0); l != 0 {
		if l < 0 || l > contract.MaxResultLimit {
			return nil, fmt.Errorf("limit must be between 1 and %d", contract.MaxResultLimit)
		}
		cfg.Limit = l
	}
	return cfg, nil
}

// engineFor resolves the config for a request and fetches its engine.
func (h *toolHandler) engineFor(ctx context.Context, request mcp.CallToolRequest) (*core.Engine, *contract.Config, *mcp.CallToolResult) {
	cfg, err := h.configFor(request)
	if err != nil {
		return nil, nil, mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err))
	}
	e, err := iocache.Fetch(ctx, h.cache, h.loader, cfg, cfg.Source)
	if err != nil {
		return nil, nil, mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err))
	}
	return e, cfg, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListPeriods(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, _, res := h.engineFor(ctx, request)
	if res != nil {
		return res, nil
	}
	return jsonResult(core.Summaries(e))
}

func (h *toolHandler) handleGetRanking(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, cfg, res := h.engineFor(ctx, request)
	if res != nil {
		return res, nil
	}
	rows := core.RowsOf(e.Ranked(cfg.Week), e.Columns())
	if cfg.Limit > 0 {
		rows = algo.TopN(rows, cfg.Limit)
	}
	return jsonResult(rows)
}

func (h *toolHandler) handleGetTopKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, cfg, res := h.engineFor(ctx, request)
	if res != nil {
		return res, nil
	}
	top := core.TopRecords(e, cfg.Week, cfg.LimitOr(schema.DefaultBarLimit))
	return jsonResult(core.RowsOf(algo.WithRanks(top), e.Columns()))
}

func (h *toolHandler) handleGetTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, cfg, res := h.engineFor(ctx, request)
	if res != nil {
		return res, nil
	}
	n := cfg.LimitOr(schema.DefaultTrendLimit)
	if cfg.Week != "" {
		return jsonResult(core.PeriodSeries(e, cfg.Week, n))
	}
	return jsonResult(core.CrossPeriodSeries(e, n))
}

func (h *toolHandler) handleGetWeeklyTotals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, _, res := h.engineFor(ctx, request)
	if res != nil {
		return res, nil
	}
	return jsonResult(core.WeeklyTotals(e))
}

func (h *toolHandler) handleExportReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, cfg, res := h.engineFor(ctx, request)
	if res != nil {
		return res, nil
	}
	return jsonResult(core.Export(e, cfg.Week))
}
