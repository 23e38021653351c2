package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mahdirahman356/electro-evo-server/internal/apperror"
	"github.com/mahdirahman356/electro-evo-server/internal/model"
	"github.com/mahdirahman356/electro-evo-server/internal/repository"
)

// RecommendationService handles business logic for recommendations.
//
// Note what it does NOT do: creating a recommendation does not bump the
// parent query's counter, and deleting one does not lower it. The client
// drives both through the query counter endpoints, so the counter and the
// number of live recommendations can drift. That gap is inherited from the
// original system and left in place deliberately — see DESIGN.md.
type RecommendationService struct {
	repo   repository.RecommendationRepository
	logger *slog.Logger
}

// NewRecommendationService creates a RecommendationService.
func NewRecommendationService(repo repository.RecommendationRepository, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{
		repo:   repo,
		logger: logger,
	}
}

// Create saves a new recommendation and returns the insert acknowledgment.
func (s *RecommendationService) Create(ctx context.Context, rec *model.Recommendation) (*model.InsertResult, error) {
	if err := s.repo.CreateRecommendation(ctx, rec); err != nil {
		s.logger.Error("failed to create recommendation",
			slog.String("queriesId", rec.QueriesID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating recommendation: %w", err)
	}

	s.logger.Info("recommendation created",
		slog.String("id", rec.ID),
		slog.String("queriesId", rec.QueriesID),
		slog.String("recommendationEmail", rec.RecommendationEmail),
	)

	return &model.InsertResult{Acknowledged: true, InsertedID: rec.ID}, nil
}

// ListAll returns every recommendation. Public route, no filtering.
func (s *RecommendationService) ListAll(ctx context.Context) ([]model.Recommendation, error) {
	recs, err := s.repo.ListRecommendations(ctx, repository.RecommendationFilter{})
	if err != nil {
		s.logger.Error("failed to list recommendations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	return recs, nil
}

// ListByEndorser returns the recommendations a user has made ("my
// recommendations"). Guarded: the caller's token email equals this email.
func (s *RecommendationService) ListByEndorser(ctx context.Context, email string) ([]model.Recommendation, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperror.ValidationFailed("email", "endorser email is required")
	}

	recs, err := s.repo.ListRecommendations(ctx,
		repository.RecommendationFilter{RecommendationEmail: email})
	if err != nil {
		s.logger.Error("failed to list recommendations by endorser",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing recommendations by endorser: %w", err)
	}
	return recs, nil
}

// ListByOwner returns the recommendations made against a user's queries
// ("recommendations for me"). Guarded like ListByEndorser.
func (s *RecommendationService) ListByOwner(ctx context.Context, email string) ([]model.Recommendation, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperror.ValidationFailed("email", "owner email is required")
	}

	recs, err := s.repo.ListRecommendations(ctx,
		repository.RecommendationFilter{OwnerEmail: email})
	if err != nil {
		s.logger.Error("failed to list recommendations by owner",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing recommendations by owner: %w", err)
	}
	return recs, nil
}

// ListByQuery returns the recommendations under one query. Public.
func (s *RecommendationService) ListByQuery(ctx context.Context, queriesID string) ([]model.Recommendation, error) {
	queriesID = strings.TrimSpace(queriesID)
	if queriesID == "" {
		return nil, apperror.ValidationFailed("queriesId", "query id is required")
	}

	recs, err := s.repo.ListRecommendations(ctx,
		repository.RecommendationFilter{QueriesID: queriesID})
	if err != nil {
		s.logger.Error("failed to list recommendations by query",
			slog.String("queriesId", queriesID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing recommendations by query: %w", err)
	}
	return recs, nil
}

// Delete removes a recommendation by id. No ownership check, no automatic
// counter decrement on the parent query.
func (s *RecommendationService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "recommendation id is required")
	}

	result, err := s.repo.DeleteRecommendation(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete recommendation",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("deleting recommendation: %w", err)
	}

	s.logger.Info("recommendation deleted",
		slog.String("id", id),
		slog.Int64("deletedCount", result.DeletedCount),
	)

	return result, nil
}
