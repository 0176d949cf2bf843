package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/hpungsan/polish/internal/config"
	"github.com/hpungsan/polish/internal/errors"
	"github.com/hpungsan/polish/internal/ops"
	"github.com/hpungsan/polish/internal/prompt"
	"github.com/hpungsan/polish/internal/store"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	store    *store.Store
	cfg      *config.Config
	renderer *Renderer
}

// HandleIndex handles GET /: the enhance form and history.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("type")
	input := ops.ListInput{
		Category: category,
		Limit:    parseIntParam(r, "limit", ops.DefaultListLimit),
		Offset:   parseIntParam(r, "offset", 0),
	}

	result, err := ops.History(r.Context(), h.store, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "index", ListPageData{
		PageData: PageData{
			Title:   "Prompt Polish",
			Version: h.renderer.version,
			Nav:     "history",
		},
		Items:      result.Items,
		Pagination: result.Pagination,
		Categories: prompt.Categories,
		Category:   category,
		Limit:      result.Pagination.Limit,
	})
}

// HandleFavorites handles GET /favorites.
func (h *Handlers) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("type")
	input := ops.ListInput{
		Category: category,
		Limit:    parseIntParam(r, "limit", ops.DefaultListLimit),
		Offset:   parseIntParam(r, "offset", 0),
	}

	result, err := ops.Favorites(r.Context(), h.store, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "favorites", ListPageData{
		PageData: PageData{
			Title:   "Favorites",
			Version: h.renderer.version,
			Nav:     "favorites",
		},
		Items:      result.Items,
		Pagination: result.Pagination,
		Categories: prompt.Categories,
		Category:   category,
		Limit:      result.Pagination.Limit,
	})
}

// HandleEnhance handles POST /enhance: enhance and record a prompt.
func (h *Handlers) HandleEnhance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	result, err := ops.Enhance(r.Context(), h.store, h.cfg, ops.EnhanceInput{
		Text:     r.FormValue("text"),
		Category: r.FormValue("type"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusCreated, result)
		return
	}

	http.Redirect(w, r, "/prompts/"+url.PathEscape(result.ID), http.StatusSeeOther)
}

// HandleDetail handles GET /prompts/{id}: view a single record.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("prompt ID is required"))
		return
	}

	record, err := ops.Fetch(r.Context(), h.store, ops.FetchInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, record)
		return
	}

	h.renderer.renderPage(w, "detail", DetailPageData{
		PageData: PageData{
			Title:   record.Category.Label() + " prompt",
			Version: h.renderer.version,
			Nav:     "history",
		},
		Record:       record,
		RenderedHTML: renderMarkdown(record.EnhancedText),
	})
}

// HandleToggleFavorite handles POST /prompts/{id}/favorite.
func (h *Handlers) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("prompt ID is required"))
		return
	}

	result, err := ops.ToggleFavorite(r.Context(), h.store, ops.ToggleFavoriteInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	http.Redirect(w, r, "/prompts/"+url.PathEscape(id), http.StatusSeeOther)
}

// HandleClearHistory handles POST /history/clear: deletes history, keeps favorites.
func (h *Handlers) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	if r.FormValue("confirm") != "true" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("confirm parameter must be \"true\""))
		return
	}

	result, err := ops.ClearHistory(r.Context(), h.store)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
