package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/pageza/recipecard/internal/fetch"
	"github.com/pageza/recipecard/internal/jsonld"
	"github.com/pageza/recipecard/internal/types"
)

// ErrRecipeNotFound means the page was fetched but held no JSON-LD Recipe.
var ErrRecipeNotFound = errors.New("no JSON-LD recipe found on page")

// Outcome reports how far an extraction got. URL is set once the target
// parsed, UpstreamStatus once the publisher answered, Recipe on success.
type Outcome struct {
	URL            string
	UpstreamStatus int
	Recipe         types.Recipe
}

// Fetched reports whether the publisher was contacted and answered.
func (o Outcome) Fetched() bool {
	return o.UpstreamStatus != 0
}

// ExtractService checks a URL against the allow-list, fetches it once and
// pulls the recipe out of the HTML.
type ExtractService struct {
	allow     *fetch.AllowList
	fetcher   PageFetcher
	extractor jsonld.Extractor
	logger    zerolog.Logger
}

// NewExtractService creates a new ExtractService instance
func NewExtractService(allow *fetch.AllowList, fetcher PageFetcher, logger zerolog.Logger) *ExtractService {
	return &ExtractService{
		allow:     allow,
		fetcher:   fetcher,
		extractor: jsonld.RecipeExtractor{},
		logger:    logger,
	}
}

// Extract runs the whole pipeline for rawURL. The returned Outcome is filled
// in as far as the request got even when an error is returned.
func (s *ExtractService) Extract(ctx context.Context, rawURL string) (Outcome, error) {
	var out Outcome

	target, err := fetch.ParseTarget(rawURL)
	if err != nil {
		return out, err
	}
	out.URL = target.String()

	if !s.allow.Allows(target) {
		return out, fetch.ErrHostNotAllowed
	}

	page, err := s.fetcher.Get(ctx, target)
	if err != nil {
		var statusErr *fetch.StatusError
		if errors.As(err, &statusErr) {
			out.UpstreamStatus = statusErr.StatusCode
		}
		s.logger.Debug().Err(err).Str("url", out.URL).Msg("upstream fetch failed")
		return out, err
	}
	out.UpstreamStatus = page.StatusCode

	recipe, ok := s.extractor.Extract(page.Body)
	if !ok {
		s.logger.Debug().Str("url", out.URL).Str("content_type", page.ContentType).Int("bytes", len(page.Body)).Msg("no recipe on page")
		return out, ErrRecipeNotFound
	}
	out.Recipe = recipe

	s.logger.Debug().Str("url", out.URL).Str("recipe", recipe.Name()).Msg("recipe extracted")
	return out, nil
}
