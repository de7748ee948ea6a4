package iocache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/huangsam/kwtrend/core"
	"github.com/huangsam/kwtrend/internal/contract"
	"github.com/huangsam/kwtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleText = "week,keyword,count,avg_risk,trend\nW1,fire,10,0.5,up\nW1,flood,20,0.3,down\nW2,fire,5,0.4,flat\n"

func testConfig() *contract.Config {
	return &contract.Config{Columns: schema.DefaultColumns()}
}

func TestEngineStore(t *testing.T) {
	store := NewEngineStore(time.Minute)
	engine := core.FromText(sampleText, schema.DefaultColumns())

	_, ok := store.Get("a")
	assert.False(t, ok)

	store.Set("a", engine)
	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Same(t, engine, got)
	assert.Equal(t, 1, store.Len())

	store.Delete("a")
	_, ok = store.Get("a")
	assert.False(t, ok)

	store.Set("b", engine)
	store.Set("c", engine)
	store.Flush()
	assert.Zero(t, store.Len())
}

func TestEngineStore_Expiry(t *testing.T) {
	store := NewEngineStore(20 * time.Millisecond)
	store.Set("a", core.FromText(sampleText, schema.DefaultColumns()))
	time.Sleep(50 * time.Millisecond)
	_, ok := store.Get("a")
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	cols := schema.DefaultColumns()
	other := cols
	other.Metric = "hits"

	assert.Equal(t, Key("a.csv", cols), Key("a.csv", cols))
	assert.NotEqual(t, Key("a.csv", cols), Key("b.csv", cols))
	assert.NotEqual(t, Key("a.csv", cols), Key("a.csv", other))
}

func TestFetch_CachesBySource(t *testing.T) {
	ctx := context.Background()
	loader := new(contract.MockSourceLoader)
	loader.On("Load", ctx, "a.csv").Return(sampleText, nil).Once()

	store := NewEngineStore(time.Minute)
	cfg := testConfig()

	first, err := Fetch(ctx, store, loader, cfg, "a.csv")
	require.NoError(t, err)
	second, err := Fetch(ctx, store, loader, cfg, "a.csv")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{"W1", "W2"}, first.Periods())
	loader.AssertExpectations(t)
}

func TestFetch_LoadError(t *testing.T) {
	ctx := context.Background()
	loader := new(contract.MockSourceLoader)
	loader.On("Load", ctx, "bad.csv").Return("", errors.New("boom"))

	cache := new(MockEngineCache)
	cache.On("Get", mock.Anything).Return(nil, false)

	_, err := Fetch(ctx, cache, loader, testConfig(), "bad.csv")
	assert.Error(t, err)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestFetch_StdinBypassesCache(t *testing.T) {
	ctx := context.Background()
	loader := new(contract.MockSourceLoader)
	loader.On("Load", ctx, contract.StdinSource).Return(sampleText, nil).Twice()

	cache := new(MockEngineCache)
	for range 2 {
		_, err := Fetch(ctx, cache, loader, testConfig(), contract.StdinSource)
		require.NoError(t, err)
	}
	cache.AssertNotCalled(t, "Get", mock.Anything)
	loader.AssertExpectations(t)
}
