package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docread/internal/domain"
	"docread/internal/service"
)

// MockOCRService is a mock implementation of service.OCRService.
type MockOCRService struct {
	mock.Mock
}

func (m *MockOCRService) ProcessImage(ctx context.Context, in service.ProcessInput) (*domain.BatchResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchResult), args.Error(1)
}

func (m *MockOCRService) ProcessPDF(ctx context.Context, in service.ProcessInput) (*domain.BatchResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchResult), args.Error(1)
}

func (m *MockOCRService) ProcessBatch(ctx context.Context, files []service.ProcessInput) ([]service.BatchItem, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.BatchItem), args.Error(1)
}

func (m *MockOCRService) EngineReady(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOCRService) InFlight() int {
	args := m.Called()
	return args.Int(0)
}
