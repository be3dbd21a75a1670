package service

import (
	"context"
	"net/url"

	"github.com/pageza/recipecard/internal/fetch"
)

// PageFetcher downloads a page that already passed the allow-list.
type PageFetcher interface {
	Get(ctx context.Context, target *url.URL) (*fetch.Page, error)
}

// IExtractService defines the interface for recipe extraction
type IExtractService interface {
	Extract(ctx context.Context, rawURL string) (Outcome, error)
}
