// Package core has core logic for grouping, ranking and exporting weekly keyword reports.
package core

import (
	"context"
	"fmt"

	"github.com/huangsam/kwtrend/core/algo"
	"github.com/huangsam/kwtrend/internal/contract"
	"github.com/huangsam/kwtrend/internal/outwriter"
	"github.com/huangsam/kwtrend/schema"
)

// ExecutorFunc defines the function signature for executing different views.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader) error

// LoadEngine acquires the source text once, checks its header and builds an Engine.
func LoadEngine(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader, source string) (*Engine, error) {
	text, err := loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	if err := contract.ValidateHeader(text, cfg.Columns, cfg.StrictHeader); err != nil {
		return nil, fmt.Errorf("invalid source %q: %w", source, err)
	}
	return FromText(text, cfg.Columns), nil
}

// loadForWeek loads the configured source and warns when the selected week has no records.
func loadForWeek(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader) (*Engine, error) {
	e, err := LoadEngine(ctx, cfg, loader, cfg.Source)
	if err != nil {
		return nil, err
	}
	if cfg.Week != "" && !e.HasPeriod(cfg.Week) {
		contract.LogWarn("week selection", fmt.Errorf("no records for week %q", cfg.Week))
	}
	return e, nil
}

// ExecutePeriods prints the week selector: every week in canonical order with its totals.
func ExecutePeriods(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader) error {
	e, err := LoadEngine(ctx, cfg, loader, cfg.Source)
	if err != nil {
		return err
	}
	return outwriter.PrintPeriods(Summaries(e), cfg)
}

// ExecuteRanking prints the ranked table for the selected week, or every week
// in canonical order. A zero limit prints every row.
func ExecuteRanking(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader) error {
	e, err := loadForWeek(ctx, cfg, loader)
	if err != nil {
		return err
	}
	rows := RowsOf(e.Ranked(cfg.Week), e.Columns())
	if cfg.Limit > 0 {
		rows = algo.TopN(rows, cfg.Limit)
	}
	return outwriter.PrintRecords(rows, cfg)
}

// ExecuteChart prints the series behind the configured chart view.
func ExecuteChart(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader) error {
	e, err := loadForWeek(ctx, cfg, loader)
	if err != nil {
		return err
	}
	switch cfg.View {
	case schema.LineView:
		if cfg.Week != "" {
			return outwriter.PrintPeriodSeries(PeriodSeries(e, cfg.Week, cfg.LimitOr(schema.DefaultTrendLimit)), cfg)
		}
		return outwriter.PrintTrendSeries(CrossPeriodSeries(e, cfg.LimitOr(schema.DefaultTrendLimit)), cfg)
	case schema.WeeklyView:
		return outwriter.PrintTotals(WeeklyTotals(e), cfg)
	default:
		top := TopRecords(e, cfg.Week, cfg.LimitOr(schema.DefaultBarLimit))
		return outwriter.PrintRecords(RowsOf(algo.WithRanks(top), e.Columns()), cfg)
	}
}

// ExecuteExport encodes the selected week, or every week, and saves the report.
func ExecuteExport(ctx context.Context, cfg *contract.Config, loader contract.SourceLoader) error {
	e, err := loadForWeek(ctx, cfg, loader)
	if err != nil {
		return err
	}
	report := Export(e, cfg.Week)
	_, err = outwriter.WriteExport(report, ExportRows(e, cfg.Week), cfg)
	return err
}
