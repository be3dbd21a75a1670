package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipecard/internal/card"
)

const (
	indexTemplate = "index.html.tmpl"
	cardTemplate  = "card.html.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// LoadTemplates installs the page and card templates on the engine.
func LoadTemplates(router *gin.Engine) {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"placeholder": func() string { return card.Placeholder },
	}).ParseFS(templateFS, "templates/*.tmpl"))
	router.SetHTMLTemplate(tmpl)
}

// UIHandler serves the single-page form.
type UIHandler struct {
	publisher string
}

// NewUIHandler creates a UI handler. publisher is shown as a hint in the form.
func NewUIHandler(publisher string) *UIHandler {
	return &UIHandler{publisher: publisher}
}

// RegisterRoutes registers the UI routes
func (h *UIHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.Index)
}

type indexPage struct {
	Publisher string
	Recipe    string
}

// Index renders the form, pre-filled from the recipe query parameter of a shared link.
func (h *UIHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, indexPage{
		Publisher: h.publisher,
		Recipe:    c.Query("recipe"),
	})
}
