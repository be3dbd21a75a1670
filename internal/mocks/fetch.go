package mocks

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipecard/internal/fetch"
)

// MockPageFetcher is a mock implementation of service.PageFetcher
type MockPageFetcher struct {
	mock.Mock
}

// Get mocks the Get method
func (m *MockPageFetcher) Get(ctx context.Context, target *url.URL) (*fetch.Page, error) {
	args := m.Called(ctx, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fetch.Page), args.Error(1)
}
