package iocache

import (
	"github.com/huangsam/kwtrend/core"
	"github.com/stretchr/testify/mock"
)

// MockEngineCache is a mock implementation of EngineCache for testing.
type MockEngineCache struct {
	mock.Mock
}

var _ EngineCache = &MockEngineCache{} // Compile-time check

// Get implements the EngineCache interface.
func (m *MockEngineCache) Get(key string) (*core.Engine, bool) {
	ret := m.Called(key)
	engine, _ := ret.Get(0).(*core.Engine)
	return engine, ret.Bool(1)
}

// Set implements the EngineCache interface.
func (m *MockEngineCache) Set(key string, engine *core.Engine) {
	m.Called(key, engine)
}

// Delete implements the EngineCache interface.
func (m *MockEngineCache) Delete(key string) {
	m.Called(key)
}

// Flush implements the EngineCache interface.
func (m *MockEngineCache) Flush() {
	m.Called()
}
