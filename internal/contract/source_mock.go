package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSourceLoader is a mock implementation of SourceLoader for testing.
type MockSourceLoader struct {
	mock.Mock
}

var _ SourceLoader = &MockSourceLoader{} // Compile-time check

// Load implements the SourceLoader interface.
func (m *MockSourceLoader) Load(ctx context.Context, source string) (string, error) {
	ret := m.Called(ctx, source)
	return ret.String(0), ret.Error(1)
}
