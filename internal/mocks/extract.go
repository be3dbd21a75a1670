package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipecard/internal/service"
)

// MockExtractService is a mock implementation of service.IExtractService
type MockExtractService struct {
	mock.Mock
}

// Extract mocks the Extract method
func (m *MockExtractService) Extract(ctx context.Context, rawURL string) (service.Outcome, error) {
	args := m.Called(ctx, rawURL)
	return args.Get(0).(service.Outcome), args.Error(1)
}
