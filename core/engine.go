package core

import (
	"iter"
	"slices"

	"github.com/huangsam/kwtrend/core/agg"
	"github.com/huangsam/kwtrend/core/algo"
	"github.com/huangsam/kwtrend/schema"
)

// Engine owns the grouped and ranked view of one parsed dataset.
// It is built once and never mutated; every accessor returns a fresh slice,
// so callers may hold on to or modify what they receive.
type Engine struct {
	cols      schema.Columns
	periods   []string                   // Canonical (lexical) period order
	firstSeen []string                   // Period order of first appearance in the source
	groups    map[string][]schema.Record // Period -> records ranked by metric
	all       []schema.Record            // Every group, canonical order, pre-ranked
}

// NewEngine partitions records by their exact period key and ranks each group
// once. Every record lands in exactly one group.
func NewEngine(records iter.Seq[schema.Record], cols schema.Columns) *Engine {
	e := &Engine{
		cols:      cols,
		firstSeen: []string{},
		groups:    make(map[string][]schema.Record),
	}
	for rec := range records {
		if _, ok := e.groups[rec.Period]; !ok {
			e.firstSeen = append(e.firstSeen, rec.Period)
		}
		e.groups[rec.Period] = append(e.groups[rec.Period], rec)
	}

	for period, group := range e.groups {
		e.groups[period] = algo.RankRecords(group)
	}

	e.periods = slices.Clone(e.firstSeen)
	slices.Sort(e.periods)

	for _, period := range e.periods {
		e.all = append(e.all, e.groups[period]...)
	}
	return e
}

// FromText parses text and builds an Engine from it.
func FromText(text string, cols schema.Columns) *Engine {
	return NewEngine(agg.Records(text, cols), cols)
}

// Columns returns the column layout the engine was built with.
func (e *Engine) Columns() schema.Columns {
	return e.cols
}

// Periods returns the distinct periods in canonical sorted order.
func (e *Engine) Periods() []string {
	return slices.Clone(e.periods)
}

// FirstSeen returns the distinct periods in the order the source introduced them.
func (e *Engine) FirstSeen() []string {
	return slices.Clone(e.firstSeen)
}

// HasPeriod reports whether period has at least one record.
func (e *Engine) HasPeriod(period string) bool {
	_, ok := e.groups[period]
	return ok
}

// Group returns the ranked records of period. An unknown period yields an
// empty slice.
func (e *Engine) Group(period string) []schema.Record {
	group, ok := e.groups[period]
	if !ok {
		return []schema.Record{}
	}
	return slices.Clone(group)
}

// All returns every record: groups in canonical period order, each pre-ranked.
// This is the default unfiltered view.
func (e *Engine) All() []schema.Record {
	if len(e.all) == 0 {
		return []schema.Record{}
	}
	return slices.Clone(e.all)
}

// Select returns All for an empty period and Group otherwise.
func (e *Engine) Select(period string) []schema.Record {
	if period == "" {
		return e.All()
	}
	return e.Group(period)
}

// Len returns the number of records held by the engine.
func (e *Engine) Len() int {
	return len(e.all)
}

// Ranked attaches 1-based ranks to the selected records. Ranks restart at 1
// for every period group, so the all-periods view carries per-group ranks.
func (e *Engine) Ranked(period string) []schema.RankedRecord {
	if period != "" {
		return algo.WithRanks(e.Group(period))
	}
	out := make([]schema.RankedRecord, 0, len(e.all))
	for _, p := range e.periods {
		out = append(out, algo.WithRanks(e.groups[p])...)
	}
	return out
}
