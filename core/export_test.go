package core

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/huangsam/kwtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_AllPeriods(t *testing.T) {
	report := Export(sampleEngine(), "")

	assert.Equal(t, "weekly_report_all.csv", report.Filename)
	assert.Equal(t, schema.ExportMediaType, report.MediaType)
	assert.Equal(t, 3, report.Rows)

	expected := "\uFEFF" +
		"Week,Keyword,Count,Avg_Risk,Trend,Rank\n" +
		"W1,flood,20,0.3,down,1\n" +
		"W1,fire,10,0.5,up,2\n" +
		"W2,fire,5,0.4,flat,1"
	assert.Equal(t, expected, report.Content)
}

func TestExport_SinglePeriod(t *testing.T) {
	report := Export(sampleEngine(), "W2")
	assert.Equal(t, "weekly_report_W2.csv", report.Filename)
	assert.Equal(t, "\uFEFFWeek,Keyword,Count,Avg_Risk,Trend,Rank\nW2,fire,5,0.4,flat,1", report.Content)
}

func TestExport_UnknownPeriod(t *testing.T) {
	report := Export(sampleEngine(), "W9")
	assert.Equal(t, "weekly_report_W9.csv", report.Filename)
	assert.Zero(t, report.Rows)
	assert.Equal(t, "\uFEFFWeek,Keyword,Count,Avg_Risk,Trend,Rank", report.Content)
}

func TestEncodeCSV_ByteOrderMark(t *testing.T) {
	content := []byte(EncodeCSV(nil))
	assert.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}))
	assert.Equal(t, "Week,Keyword,Count,Avg_Risk,Trend,Rank", string(content[3:]))
}

func TestEncodeCSV_Quoting(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		expected string
	}{
		{"bare", "fire", "fire"},
		{"comma", "fire,flood", `"fire,flood"`},
		{"quote", `say "hi"`, `"say ""hi"""`},
		{"newline", "a\nb", "\"a\nb\""},
		{"carriage return", "a\rb", "\"a\rb\""},
		{"leading space stays bare", " fire", " fire"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, quoteField(tt.keyword))
		})
	}
}

func TestEncodeCSV_Deterministic(t *testing.T) {
	rows := ExportRows(sampleEngine(), "")
	assert.Equal(t, EncodeCSV(rows), EncodeCSV(rows))
	assert.False(t, strings.HasSuffix(EncodeCSV(rows), "\n"))
}

func TestExportRows_PassThroughColumns(t *testing.T) {
	text := "week,keyword,count,risk_score,direction\nW1,fire,abc,0.7,up\nW1,smoke\n"
	cols := schema.DefaultColumns()
	cols.Risk = "risk_score"
	cols.Trend = "direction"

	rows := ExportRows(FromText(text, cols), "W1")
	require.Len(t, rows, 2)
	assert.Equal(t, schema.ExportRow{Week: "W1", Keyword: "fire", Count: "abc", AvgRisk: "0.7", Trend: "up", Rank: 1}, rows[0])
	assert.Equal(t, schema.ExportRow{Week: "W1", Keyword: "smoke", Rank: 2}, rows[1])
}

func TestExport_RoundTrip(t *testing.T) {
	text := "week,keyword,count,avg_risk,trend\n" +
		"W2,fire,5,0.4,flat\n" +
		"W1,fire,10,0.5,up\n" +
		"W1,say \"hi\",20,0.3,down\n" +
		"W3,storm,40,0.9,up\n" +
		"W1,tie,10,0.1,flat\n"
	e := FromText(text, schema.DefaultColumns())
	content := Export(e, "").Content

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(content, schema.ByteOrderMark)))
	lines, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, e.Len()+1)
	assert.Equal(t, schema.ExportHeader, lines[0])

	ranked := e.Ranked("")
	for i, line := range lines[1:] {
		metric, err := strconv.Atoi(line[2])
		require.NoError(t, err)
		assert.Equal(t, ranked[i].Period, line[0])
		assert.Equal(t, ranked[i].Entity, line[1])
		assert.Equal(t, ranked[i].Metric, metric)
		assert.Equal(t, strconv.Itoa(ranked[i].Rank), line[5])
	}
}

func TestExport_ReparsesAsSource(t *testing.T) {
	text := "week,keyword,count,avg_risk,trend\n" +
		"W2,fire,5,0.4,flat\n" +
		"W1,fire,10,0.5,up\n" +
		"W1,flood,20,0.3,down\n"
	e := FromText(text, schema.DefaultColumns())
	content := Export(e, "").Content
	require.True(t, strings.HasPrefix(content, schema.ByteOrderMark))

	exportCols := schema.Columns{Period: "Week", Entity: "Keyword", Metric: "Count", Risk: "Avg_Risk", Trend: "Trend"}
	reparsed := FromText(content, exportCols)
	require.Equal(t, e.Len(), reparsed.Len())
	assert.Equal(t, e.Periods(), reparsed.Periods())

	ranked := e.Ranked("")
	for i, r := range reparsed.Ranked("") {
		assert.Equal(t, ranked[i].Period, r.Period)
		assert.Equal(t, ranked[i].Entity, r.Entity)
		assert.Equal(t, ranked[i].Metric, r.Metric)
		assert.Equal(t, ranked[i].Field("avg_risk"), r.Field("Avg_Risk"))
		assert.Equal(t, strconv.Itoa(ranked[i].Rank), r.Field("Rank"))
	}
}
