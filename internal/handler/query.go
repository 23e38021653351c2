package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mahdirahman356/electro-evo-server/internal/apperror"
	"github.com/mahdirahman356/electro-evo-server/internal/model"
	"github.com/mahdirahman356/electro-evo-server/internal/service"
)

// QueryHandler exposes the boycott-query collection over HTTP.
type QueryHandler struct {
	queryService *service.QueryService
	logger       *slog.Logger
}

func NewQueryHandler(queryService *service.QueryService, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
		logger:       logger,
	}
}

// HandleList handles GET /queries.
//
// With no ?search= parameter it returns the whole collection; with one,
// it returns the queries whose product name contains the term
// (case-insensitive). An empty result is [], never null.
func (h *QueryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	queries, err := h.queryService.List(r.Context(), search)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, queries)
}

// HandleListByOwner handles GET /queries/email/{email} — the "my queries"
// page. The route is guarded, so by the time we get here the session email
// is known to match {email}.
func (h *QueryHandler) HandleListByOwner(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	queries, err := h.queryService.ListByOwner(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, queries)
}

// HandleGetByID handles GET /queries/{id}.
//
// An unknown id is NOT a 404: the client treats "null" as the
// loading/absent state, so we return 200 with a null body.
func (h *QueryHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	query, err := h.queryService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	// query may be nil here; writeJSON encodes that as "null".
	writeJSON(w, http.StatusOK, query)
}

// HandleCreate handles POST /queries.
func (h *QueryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var query model.Query
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON in request body"))
		return
	}

	result, err := h.queryService.Create(r.Context(), &query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleReplace handles PUT /queries/{id}.
//
// The body carries the edited product fields; identity fields in the body
// are ignored — the path parameter decides which record is written.
func (h *QueryHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var query model.Query
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON in request body"))
		return
	}

	result, err := h.queryService.Replace(r.Context(), id, &query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleIncrementRecommendation handles PATCH /queries/{id}.
func (h *QueryHandler) HandleIncrementRecommendation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.queryService.IncrementRecommendationCount(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleDecrementRecommendation handles PATCH /queries/desRecom/{id}.
// ("desRecom" matches the path the deployed client calls.)
func (h *QueryHandler) HandleDecrementRecommendation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.queryService.DecrementRecommendationCount(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleDelete handles DELETE /queries/{id}.
//
// Deleting an id that doesn't exist is not an error — the response simply
// acknowledges zero deletions. Recommendations made against the query are
// left in place.
func (h *QueryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.queryService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
