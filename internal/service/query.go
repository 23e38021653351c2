// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces rules, orchestrates
//	Repository (Data layer)  → reads/writes to the database
//
// Services take a repository INTERFACE, not the concrete sqlite type, so
// tests can inject an in-memory mock and main.go decides the real backend.
// Services return domain errors (apperror); handlers translate those to
// HTTP status codes.
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

// QueryService handles business logic for boycott queries.
type QueryService struct {
	repo   repository.QueryRepository
	logger *slog.Logger
}

// NewQueryService creates a QueryService. The caller decides which
// repository implementation to inject (SQLite, or a mock in tests).
func NewQueryService(repo repository.QueryRepository, logger *slog.Logger) *QueryService {
	return &QueryService{
		repo:   repo,
		logger: logger,
	}
}

// Create saves a new query and returns the store's insert acknowledgment.
// The body is inserted as-is — whatever fields the client sent — except
// that the recommendation counter always starts at zero.
func (s *QueryService) Create(ctx context.Context, query *model.Query) (*model.InsertResult, error) {
	query.RecommendationCount = 0

	if err := s.repo.Create(ctx, query); err != nil {
		s.logger.Error("failed to create query",
			slog.String("productName", query.ProductName),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating query: %w", err)
	}

	s.logger.Info("query created",
		slog.String("id", query.ID),
		slog.String("email", query.Email),
	)

	return &model.InsertResult{Acknowledged: true, InsertedID: query.ID}, nil
}

// GetByID retrieves a single query. A nil result with nil error means no
// query has that id — the handler serves that absence as a null body, the
// contract the deployed client expects.
func (s *QueryService) GetByID(ctx context.Context, id string) (*model.Query, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "query id is required")
	}

	return s.repo.GetByID(ctx, id)
}

// List retrieves all queries, or those whose product name contains the
// search term (case-insensitive).
func (s *QueryService) List(ctx context.Context, search string) ([]model.Query, error) {
	queries, err := s.repo.List(ctx, repository.QueryFilter{Search: strings.TrimSpace(search)})
	if err != nil {
		s.logger.Error("failed to list queries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing queries: %w", err)
	}
	return queries, nil
}

// ListByOwner retrieves the queries owned by one user. The authorization
// guard has already proven the caller IS that user before this runs.
func (s *QueryService) ListByOwner(ctx context.Context, email string) ([]model.Query, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperror.ValidationFailed("email", "owner email is required")
	}

	queries, err := s.repo.List(ctx, repository.QueryFilter{Email: email})
	if err != nil {
		s.logger.Error("failed to list queries by owner",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing queries by owner: %w", err)
	}
	return queries, nil
}

// Replace upserts the five product fields of a query under the given id.
func (s *QueryService) Replace(ctx context.Context, id string, query *model.Query) (*model.UpdateResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "query id is required")
	}

	result, err := s.repo.Replace(ctx, id, query)
	if err != nil {
		s.logger.Error("failed to replace query",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("replacing query: %w", err)
	}

	s.logger.Info("query replaced",
		slog.String("id", id),
		slog.Bool("upserted", result.UpsertedID != ""),
	)

	return result, nil
}

// IncrementRecommendationCount bumps a query's counter by one, atomically
// in the store.
func (s *QueryService) IncrementRecommendationCount(ctx context.Context, id string) (*model.UpdateResult, error) {
	return s.adjustCount(ctx, id, 1)
}

// DecrementRecommendationCount lowers a query's counter by one. There is
// no floor — the count may go negative, as it always could.
func (s *QueryService) DecrementRecommendationCount(ctx context.Context, id string) (*model.UpdateResult, error) {
	return s.adjustCount(ctx, id, -1)
}

func (s *QueryService) adjustCount(ctx context.Context, id string, delta int) (*model.UpdateResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "query id is required")
	}

	result, err := s.repo.AdjustRecommendationCount(ctx, id, delta)
	if err != nil {
		s.logger.Error("failed to adjust recommendation count",
			slog.String("id", id),
			slog.Int("delta", delta),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("adjusting recommendation count: %w", err)
	}

	return result, nil
}

// Delete removes a query by id. No ownership check — any caller who can
// reach the route may delete any query (the deployed contract). Deleting a
// missing id acknowledges zero deletions.
func (s *QueryService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "query id is required")
	}

	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete query",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("deleting query: %w", err)
	}

	s.logger.Info("query deleted",
		slog.String("id", id),
		slog.Int64("deletedCount", result.DeletedCount),
	)

	return result, nil
}
