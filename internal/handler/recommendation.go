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

// RecommendationHandler exposes the recommendation collection over HTTP.
type RecommendationHandler struct {
	recommendationService *service.RecommendationService
	logger                *slog.Logger
}

func NewRecommendationHandler(recommendationService *service.RecommendationService, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		logger:                logger,
	}
}

// HandleCreate handles POST /recommend.
//
// Note the counter on the parent query is NOT touched here — the client
// follows up with PATCH /queries/{id} itself.
func (h *RecommendationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var rec model.Recommendation
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON in request body"))
		return
	}

	result, err := h.recommendationService.Create(r.Context(), &rec)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleListAll handles GET /recommend.
func (h *RecommendationHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recommendationService.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

// HandleListByEndorser handles GET /recommend/myRecommrnd/{email}:
// recommendations the signed-in user has made. Guarded route.
// ("myRecommrnd" matches the path the deployed client calls.)
func (h *RecommendationHandler) HandleListByEndorser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	recs, err := h.recommendationService.ListByEndorser(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

// HandleListByOwner handles GET /recommend/RecommendForMe/{email}:
// recommendations other users made against the signed-in user's queries.
// Guarded route.
func (h *RecommendationHandler) HandleListByOwner(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	recs, err := h.recommendationService.ListByOwner(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

// HandleListByQuery handles GET /recommend/{queriesId}: all
// recommendations attached to one query, for the query detail page.
func (h *RecommendationHandler) HandleListByQuery(w http.ResponseWriter, r *http.Request) {
	queriesID := chi.URLParam(r, "id")

	recs, err := h.recommendationService.ListByQuery(r.Context(), queriesID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

// HandleDelete handles DELETE /recommend/{id}.
//
// Any authenticated client may delete any recommendation; the response
// acknowledges how many records were actually removed (0 or 1).
func (h *RecommendationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.recommendationService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
