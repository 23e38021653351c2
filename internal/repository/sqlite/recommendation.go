package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/mahdirahman356/electro-evo-server/internal/model"
	"github.com/mahdirahman356/electro-evo-server/internal/repository"
)

var _ repository.RecommendationRepository = (*DB)(nil)

const recommendationColumns = `id, queries_id, query_title, product_name,
	product_image, recommendation_title, recommended_product_name,
	recommended_image, recommendation_reason, recommendation_email, email,
	created_at`

// Create inserts a new recommendation. Creating one does NOT touch the
// parent query's recommendation counter — the client follows up with the
// dedicated increment endpoint, exactly as the original system worked.
func (db *DB) CreateRecommendation(ctx context.Context, rec *model.Recommendation) error {
	rec.ID = xid.New().String()
	rec.CreatedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO recommendations (id, queries_id, query_title,
		 product_name, product_image, recommendation_title,
		 recommended_product_name, recommended_image, recommendation_reason,
		 recommendation_email, email, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.QueriesID,
		rec.QueryTitle,
		rec.ProductName,
		rec.ProductImage,
		rec.RecommendationTitle,
		rec.RecommendedProductName,
		rec.RecommendedImage,
		rec.RecommendationReason,
		rec.RecommendationEmail,
		rec.Email,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating recommendation: %w", err)
	}

	return nil
}

// ListRecommendations retrieves recommendations, filtered by at most one
// of: endorser email, query-owner email, or parent query id.
func (db *DB) ListRecommendations(ctx context.Context, filter repository.RecommendationFilter) ([]model.Recommendation, error) {
	q := `SELECT ` + recommendationColumns + ` FROM recommendations`
	var args []any

	switch {
	case filter.RecommendationEmail != "":
		q += ` WHERE recommendation_email = ?`
		args = append(args, filter.RecommendationEmail)
	case filter.OwnerEmail != "":
		q += ` WHERE email = ?`
		args = append(args, filter.OwnerEmail)
	case filter.QueriesID != "":
		q += ` WHERE queries_id = ?`
		args = append(args, filter.QueriesID)
	}
	q += ` ORDER BY id`

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing recommendations: %w", err)
	}
	defer rows.Close()

	recs := []model.Recommendation{}
	for rows.Next() {
		var r model.Recommendation
		if err := rows.Scan(
			&r.ID, &r.QueriesID, &r.QueryTitle, &r.ProductName,
			&r.ProductImage, &r.RecommendationTitle, &r.RecommendedProductName,
			&r.RecommendedImage, &r.RecommendationReason,
			&r.RecommendationEmail, &r.Email, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning recommendation row: %w", err)
		}
		recs = append(recs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating recommendations: %w", err)
	}

	return recs, nil
}

// DeleteRecommendation removes a recommendation by id. The parent query's
// counter is left alone (the decrement is a separate, client-driven call),
// and a missing id reports zero deleted rows rather than an error.
func (db *DB) DeleteRecommendation(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM recommendations WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: deleting recommendation %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking rows affected: %w", err)
	}

	return &model.DeleteResult{Acknowledged: true, DeletedCount: affected}, nil
}
