package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arindamsaha1507/vyakarana/internal/apperr"
	"github.com/arindamsaha1507/vyakarana/internal/sutraservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *sutraservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *sutraservice.Service) *Handler {
	return &Handler{svc: svc}
}

// ListSutras handles GET /sutras with optional pagination and
// adhyaya/pada filters.
func (h *Handler) ListSutras(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	adhyaya, _ := strconv.Atoi(q.Get("adhyaya"))
	pada, _ := strconv.Atoi(q.Get("pada"))

	items, total, err := h.svc.ListSutras(r.Context(), limit, offset, adhyaya, pada)
	if err != nil {
		slog.Error("list sutras failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if items == nil {
		items = []sutraservice.SutraListItem{}
	}
	writeJSON(w, http.StatusOK, SutraListResponse{Sutras: items, Total: total})
}

// GetSutra handles GET /sutras/{ref} where ref is the canonical "a.p.n"
// form.
func (h *Handler) GetSutra(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	detail, err := h.svc.GetSutra(r.Context(), ref)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("sutra not found: "+ref))
			return
		}
		slog.Error("get sutra failed", slog.String("ref", ref), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Search handles GET /search. With mode=text the in-memory substring
// search is used (optionally case sensitive); otherwise the query goes
// to the index.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("missing query parameter q"))
		return
	}
	limit, _ := strconv.Atoi(q.Get("limit"))

	if q.Get("mode") == "text" {
		caseSensitive := q.Get("case_sensitive") == "true"
		items := h.svc.SearchText(r.Context(), query, caseSensitive)
		writeJSON(w, http.StatusOK, TextSearchResponse{Sutras: items, Total: len(items)})
		return
	}

	results, err := h.svc.Search(r.Context(), query, limit)
	if err != nil {
		slog.Error("search failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	out := make([]SearchResult, len(results))
	for i, res := range results {
		out[i] = SearchResult{Ref: res.Ref, Devanagari: res.Devanagari, Snippet: res.Snippet}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: out})
}

// Stats handles GET /stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		slog.Error("stats failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, st)
}
