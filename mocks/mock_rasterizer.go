package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docread/internal/domain"
)

// MockRasterizer is a mock implementation of port.Rasterizer.
type MockRasterizer struct {
	mock.Mock
}

func (m *MockRasterizer) Rasterize(ctx context.Context, data []byte, kind domain.DocumentKind, dpi int) ([]domain.PageUnit, error) {
	args := m.Called(ctx, data, kind, dpi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PageUnit), args.Error(1)
}
