package core

import (
	"slices"
	"testing"

	"github.com/huangsam/kwtrend/core/agg"
	"github.com/huangsam/kwtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "week,keyword,count,avg_risk,trend\nW1,fire,10,0.5,up\nW1,flood,20,0.3,down\nW2,fire,5,0.4,flat\n"

func sampleEngine() *Engine {
	return FromText(sampleText, schema.DefaultColumns())
}

func keywords(records []schema.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Entity
	}
	return out
}

func TestEngine_Sample(t *testing.T) {
	e := sampleEngine()

	assert.Equal(t, []string{"W1", "W2"}, e.Periods())
	assert.Equal(t, []string{"flood", "fire"}, keywords(e.Group("W1")))
	assert.Equal(t, []string{"fire"}, keywords(e.Group("W2")))
	assert.Equal(t, 3, e.Len())
	assert.Equal(t, schema.DefaultColumns(), e.Columns())
}

func TestEngine_CanonicalOrder(t *testing.T) {
	text := "week,keyword,count\nW3,a,1\nW1,b,2\nW2,c,3\nW1,d,4\n"
	e := FromText(text, schema.DefaultColumns())

	assert.Equal(t, []string{"W1", "W2", "W3"}, e.Periods())
	assert.Equal(t, []string{"W3", "W1", "W2"}, e.FirstSeen())
	assert.Equal(t, []string{"d", "b", "c", "a"}, keywords(e.All()))
}

func TestEngine_GroupingIsTotal(t *testing.T) {
	text := "week,keyword,count\nW2,a,1\nW1,b,2\n,orphan,9\nW2,c,3\nW1 ,d,4\nW1,e,2\n"
	cols := schema.DefaultColumns()
	records, _ := agg.Parse(text, cols)
	e := FromText(text, cols)

	total := 0
	for _, p := range e.Periods() {
		group := e.Group(p)
		total += len(group)
		for _, r := range group {
			assert.Equal(t, p, r.Period)
		}
	}
	assert.Equal(t, len(records), total)
	assert.Equal(t, []string{"W1", "W1 ", "W2"}, e.Periods())
}

func TestEngine_GroupsAreRankedAndStable(t *testing.T) {
	text := "week,keyword,count\nW1,a,5\nW1,b,7\nW1,c,5\nW1,d,x\nW1,e,7\nW1,f,0\n"
	e := FromText(text, schema.DefaultColumns())

	group := e.Group("W1")
	assert.Equal(t, []string{"b", "e", "a", "c", "d", "f"}, keywords(group))
	assert.True(t, slices.IsSortedFunc(group, func(a, b schema.Record) int {
		return b.Metric - a.Metric
	}))
}

func TestEngine_Idempotent(t *testing.T) {
	first := sampleEngine()
	second := sampleEngine()
	assert.Equal(t, first.Periods(), second.Periods())
	assert.Equal(t, first.All(), second.All())
}

func TestEngine_Snapshots(t *testing.T) {
	e := sampleEngine()

	periods := e.Periods()
	periods[0] = "mutated"
	group := e.Group("W1")
	group[0].Entity = "mutated"

	assert.Equal(t, []string{"W1", "W2"}, e.Periods())
	assert.Equal(t, "flood", e.Group("W1")[0].Entity)
}

func TestEngine_EmptySelections(t *testing.T) {
	e := sampleEngine()
	assert.False(t, e.HasPeriod("W9"))
	assert.True(t, e.HasPeriod("W1"))
	assert.NotNil(t, e.Group("W9"))
	assert.Empty(t, e.Group("W9"))

	empty := FromText("", schema.DefaultColumns())
	assert.Empty(t, empty.Periods())
	assert.NotNil(t, empty.All())
	assert.Empty(t, empty.All())
	assert.Zero(t, empty.Len())
}

func TestEngine_SourceFraming(t *testing.T) {
	t.Run("byte order mark", func(t *testing.T) {
		e := FromText("\uFEFF"+sampleText, schema.DefaultColumns())
		assert.Equal(t, []string{"W1", "W2"}, e.Periods())
		assert.Equal(t, 3, e.Len())
	})

	t.Run("whitespace-only trailer", func(t *testing.T) {
		e := FromText("week,keyword,count,avg_risk,trend\nW1,fire,10,0.5,up\n  \n", schema.DefaultColumns())
		assert.Equal(t, []string{"W1"}, e.Periods())
		assert.Equal(t, []int{10}, WeeklyTotals(e).Values)
	})
}

func TestEngine_Select(t *testing.T) {
	e := sampleEngine()
	assert.Equal(t, e.All(), e.Select(""))
	assert.Equal(t, e.Group("W2"), e.Select("W2"))
}

func TestEngine_Ranked(t *testing.T) {
	e := sampleEngine()

	all := e.Ranked("")
	require.Len(t, all, 3)
	ranks := make([]int, len(all))
	for i, r := range all {
		ranks[i] = r.Rank
	}
	assert.Equal(t, []int{1, 2, 1}, ranks)

	w1 := e.Ranked("W1")
	require.Len(t, w1, 2)
	assert.Equal(t, "flood", w1[0].Entity)
	assert.Equal(t, 2, w1[1].Rank)

	assert.Empty(t, e.Ranked("W9"))
}

func TestNewEngine_FromSequence(t *testing.T) {
	records := []schema.Record{
		{Period: "B", Entity: "x", Metric: 1},
		{Period: "A", Entity: "y", Metric: 2},
		{Period: "B", Entity: "z", Metric: 3},
	}
	e := NewEngine(slices.Values(records), schema.DefaultColumns())
	assert.Equal(t, []string{"A", "B"}, e.Periods())
	assert.Equal(t, []string{"z", "x"}, keywords(e.Group("B")))
}
