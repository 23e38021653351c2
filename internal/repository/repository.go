package repository

import (
	"context"

	"github.com/mahdirahman356/electro-evo-server/internal/model"
)

// QueryFilter narrows a query listing. Zero value means "everything".
// Search is a case-insensitive substring match on the product name; Email
// filters by owner. The two are never combined by the current routes.
type QueryFilter struct {
	Search string
	Email  string
}

// RecommendationFilter narrows a recommendation listing. At most one field
// is set per call: RecommendationEmail for "my recommendations",
// OwnerEmail for "recommendations made for me", QueriesID for the
// recommendations under one query.
type RecommendationFilter struct {
	RecommendationEmail string
	OwnerEmail          string
	QueriesID           string
}

type QueryRepository interface {
	Create(ctx context.Context, query *model.Query) error
	// GetByID returns (nil, nil) when no query has the given id — absence
	// is not an error on this collection, the handler passes null through.
	GetByID(ctx context.Context, id string) (*model.Query, error)
	List(ctx context.Context, filter QueryFilter) ([]model.Query, error)
	// Replace upserts the five product fields for the given id and reports
	// matched/modified counts plus the upserted id if a row was created.
	Replace(ctx context.Context, id string, query *model.Query) (*model.UpdateResult, error)
	// AdjustRecommendationCount atomically adds delta (may be negative; the
	// count has no floor) and reports how many rows matched.
	AdjustRecommendationCount(ctx context.Context, id string, delta int) (*model.UpdateResult, error)
	// Delete reports the number of rows removed; deleting a missing id
	// yields a zero count, not an error.
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// RecommendationRepository is satisfied by the same store handle as
// QueryRepository, so its method names carry the resource to avoid
// colliding with the query methods.
type RecommendationRepository interface {
	CreateRecommendation(ctx context.Context, rec *model.Recommendation) error
	ListRecommendations(ctx context.Context, filter RecommendationFilter) ([]model.Recommendation, error)
	DeleteRecommendation(ctx context.Context, id string) (*model.DeleteResult, error)
}
