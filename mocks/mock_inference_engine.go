package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docread/internal/port"
)

// MockInferenceEngine is a mock implementation of port.InferenceEngine.
type MockInferenceEngine struct {
	mock.Mock
}

func (m *MockInferenceEngine) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockInferenceEngine) Infer(ctx context.Context, req port.InferenceRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockInferenceEngine) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
