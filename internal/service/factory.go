package service

import (
	"github.com/rs/zerolog"

	"github.com/pageza/recipecard/config"
	"github.com/pageza/recipecard/internal/fetch"
)

// NewFromConfig wires an ExtractService for cfg's publisher using the
// default HTTP client.
func NewFromConfig(cfg *config.Config, logger zerolog.Logger) *ExtractService {
	fetcher := &fetch.Client{
		UserAgent:    cfg.UserAgent,
		MaxPageBytes: cfg.MaxPageBytes,
	}
	return NewExtractService(fetch.NewPublisherAllowList(cfg.PublisherDomain), fetcher, logger)
}
