package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipecard/internal/audit"
	"github.com/pageza/recipecard/internal/card"
	"github.com/pageza/recipecard/internal/fetch"
	"github.com/pageza/recipecard/internal/service"
)

// ExtractHandler serves the extraction endpoint.
type ExtractHandler struct {
	extractService service.IExtractService
	audit          *audit.Dispatcher
}

// NewExtractHandler creates a new extract handler. dispatcher may be nil.
func NewExtractHandler(extractService service.IExtractService, dispatcher *audit.Dispatcher) *ExtractHandler {
	return &ExtractHandler{
		extractService: extractService,
		audit:          dispatcher,
	}
}

// RegisterRoutes registers the extraction routes
func (h *ExtractHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/extract", h.Extract)
}

// Extract fetches the page named by the url query parameter and returns its
// JSON-LD recipe. Clients that prefer text/html get the rendered card instead.
func (h *ExtractHandler) Extract(c *gin.Context) {
	out, err := h.extractService.Extract(c.Request.Context(), c.Query("url"))

	status, msg := errorResponse(err)
	if err != nil {
		c.String(status, msg)
	} else {
		c.Header("Cache-Control", "no-store")
		switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) {
		case gin.MIMEHTML:
			c.HTML(http.StatusOK, cardTemplate, card.Build(out.Recipe, out.URL))
		default:
			c.JSON(http.StatusOK, out.Recipe)
		}
	}

	// Recorded after the response is written, for every request that reached the publisher.
	if out.URL != "" && !errors.Is(err, fetch.ErrHostNotAllowed) {
		h.audit.Dispatch(c.Request.Context(), audit.NewRecord(out.URL, out.UpstreamStatus, out.Recipe != nil))
	}
}

// errorResponse maps an extraction error onto its status code and plain-text body.
func errorResponse(err error) (int, string) {
	var statusErr *fetch.StatusError
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.Is(err, fetch.ErrMissingURL):
		return http.StatusBadRequest, "Missing url parameter"
	case errors.Is(err, fetch.ErrInvalidURL):
		return http.StatusBadRequest, "Invalid url"
	case errors.Is(err, fetch.ErrHostNotAllowed):
		return http.StatusBadRequest, "Host not allowed"
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, fmt.Sprintf("Upstream responded with status %d", statusErr.StatusCode)
	case errors.Is(err, fetch.ErrUpstream):
		return http.StatusBadGateway, "Upstream fetch failed"
	case errors.Is(err, service.ErrRecipeNotFound):
		return http.StatusUnprocessableEntity, "No JSON-LD Recipe found on page"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
