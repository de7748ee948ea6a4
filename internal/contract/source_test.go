package contract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/kwtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "week,keyword,count,avg_risk,trend\nW1,fire,10,0.5,up\n"

func TestLocalSourceLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleText), 0o644))

	text, err := NewLocalSourceLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, sampleText, text)
}

func TestLocalSourceLoader_Stdin(t *testing.T) {
	loader := &LocalSourceLoader{Stdin: strings.NewReader(sampleText)}
	text, err := loader.Load(context.Background(), StdinSource)
	require.NoError(t, err)
	assert.Equal(t, sampleText, text)
}

func TestLocalSourceLoader_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no source", func(t *testing.T) {
		_, err := NewLocalSourceLoader().Load(ctx, "")
		assert.ErrorIs(t, err, ErrNoSource)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLocalSourceLoader().Load(ctx, filepath.Join(t.TempDir(), "missing.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("blank content", func(t *testing.T) {
		loader := &LocalSourceLoader{Stdin: strings.NewReader(" \n\r\n")}
		_, err := loader.Load(ctx, StdinSource)
		assert.ErrorIs(t, err, ErrEmptySource)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewLocalSourceLoader().Load(cancelled, "report.csv")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestValidateHeader(t *testing.T) {
	cols := schema.DefaultColumns()

	assert.NoError(t, ValidateHeader(sampleText, cols, true))

	partial := "week,keyword,count\nW1,fire,10\n"
	assert.NoError(t, ValidateHeader(partial, cols, false), "lenient mode only warns")

	err := ValidateHeader(partial, cols, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumns))
	assert.Contains(t, err.Error(), "avg_risk, trend")
}

func TestCountNonNumeric(t *testing.T) {
	cols := schema.DefaultColumns()
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"all numeric", sampleText, 0},
		{"words and blanks", "week,keyword,count\nW1,a,n/a\nW1,b,\nW1,c,7\n", 2},
		{"leading digits count", "week,keyword,count\nW1,a,15x\nW1,b, 3\n", 0},
		{"custom metric column", "day,term,hits\nMon,a,x\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countNonNumeric(tt.text, cols))
		})
	}

	custom := schema.Columns{Period: "day", Entity: "term", Metric: "hits", Risk: "risk", Trend: "dir"}
	assert.Equal(t, 1, countNonNumeric("day,term,hits\nMon,a,x\n", custom))
	assert.NoError(t, ValidateHeader("week,keyword,count,avg_risk,trend\nW1,a,n/a,,\n", cols, true), "non-numeric counts never fail")
}

func TestMockSourceLoader(t *testing.T) {
	ctx := context.Background()
	loader := new(MockSourceLoader)
	loader.On("Load", ctx, "a.csv").Return(sampleText, nil).Once()
	loader.On("Load", ctx, "b.csv").Return("", ErrEmptySource).Once()

	text, err := loader.Load(ctx, "a.csv")
	assert.NoError(t, err)
	assert.Equal(t, sampleText, text)

	_, err = loader.Load(ctx, "b.csv")
	assert.ErrorIs(t, err, ErrEmptySource)

	loader.AssertExpectations(t)
}
