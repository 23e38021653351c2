package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/mahdirahman356/electro-evo-server/internal/model"
	"github.com/mahdirahman356/electro-evo-server/internal/repository"
)

// Compile-time check that *DB implements repository.QueryRepository.
// `var _ X = (*Y)(nil)` makes the compiler verify the interface is
// satisfied here, not at some distant call site.
var _ repository.QueryRepository = (*DB)(nil)

const queryColumns = `id, product_name, product_brand, query_title,
	boycotting_details, image_url, email, recommendation_count,
	created_at, updated_at`

// Create inserts a new query.
//
// The id is generated with xid: 20 chars, URL-safe, sortable by creation
// time. The caller's struct is modified in place (pointer receiver) so the
// handler can echo the new id back in the insert acknowledgment.
func (db *DB) Create(ctx context.Context, query *model.Query) error {
	query.ID = xid.New().String()

	now := time.Now()
	query.CreatedAt = now
	query.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO queries (id, product_name, product_brand, query_title,
		 boycotting_details, image_url, email, recommendation_count,
		 created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		query.ID,
		query.ProductName,
		query.ProductBrand,
		query.QueryTitle,
		query.BoycottingDetails,
		query.ImageURL,
		query.Email,
		query.RecommendationCount,
		query.CreatedAt,
		query.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating query: %w", err)
	}

	return nil
}

// GetByID retrieves a single query by its id.
//
// Absence is NOT an error for this collection: the single-item route
// serves whatever the store returns, and the deployed client treats an
// empty body as "no such query". So sql.ErrNoRows maps to (nil, nil)
// rather than a not-found error.
func (db *DB) GetByID(ctx context.Context, id string) (*model.Query, error) {
	var q model.Query

	err := db.conn.QueryRowContext(ctx,
		`SELECT `+queryColumns+` FROM queries WHERE id = ?`,
		id,
	).Scan(
		&q.ID,
		&q.ProductName,
		&q.ProductBrand,
		&q.QueryTitle,
		&q.BoycottingDetails,
		&q.ImageURL,
		&q.Email,
		&q.RecommendationCount,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: getting query %s: %w", id, err)
	}

	return &q, nil
}

// List retrieves queries, optionally filtered.
//
// filter.Search is a case-insensitive substring match on product_name.
// We use instr(lower(...), lower(...)) instead of LIKE so that % and _
// in user input are matched literally, not as wildcards.
//
// filter.Email restricts to one owner (the guarded "my queries" route).
// Order is insertion order (id is time-sortable), matching the store's
// natural order in the original system.
func (db *DB) List(ctx context.Context, filter repository.QueryFilter) ([]model.Query, error) {
	q := `SELECT ` + queryColumns + ` FROM queries`
	var args []any

	switch {
	case filter.Search != "":
		q += ` WHERE instr(lower(product_name), lower(?)) > 0`
		args = append(args, filter.Search)
	case filter.Email != "":
		q += ` WHERE email = ?`
		args = append(args, filter.Email)
	}
	q += ` ORDER BY id`

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing queries: %w", err)
	}
	defer rows.Close()

	queries := []model.Query{}
	for rows.Next() {
		var item model.Query
		if err := rows.Scan(
			&item.ID, &item.ProductName, &item.ProductBrand, &item.QueryTitle,
			&item.BoycottingDetails, &item.ImageURL, &item.Email,
			&item.RecommendationCount, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning query row: %w", err)
		}
		queries = append(queries, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating queries: %w", err)
	}

	return queries, nil
}

// Replace performs a whole-record replacement of the five product fields
// with upsert semantics: if no query has the given id, one is created with
// that id. A fresh upserted row starts with an empty owner email and a
// zero counter — the replacement set never touches those fields.
//
// The result distinguishes the two outcomes the way the original driver
// did: an update reports matchedCount/modifiedCount = 1, an insert reports
// matchedCount = 0 with the upsertedId set.
func (db *DB) Replace(ctx context.Context, id string, query *model.Query) (*model.UpdateResult, error) {
	now := time.Now()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE queries
		 SET product_name = ?, product_brand = ?, query_title = ?,
		     boycotting_details = ?, image_url = ?, updated_at = ?
		 WHERE id = ?`,
		query.ProductName,
		query.ProductBrand,
		query.QueryTitle,
		query.BoycottingDetails,
		query.ImageURL,
		now,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: replacing query %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected > 0 {
		return &model.UpdateResult{
			Acknowledged:  true,
			MatchedCount:  affected,
			ModifiedCount: affected,
		}, nil
	}

	// Nothing matched — upsert a new row under the caller's id.
	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO queries (id, product_name, product_brand, query_title,
		 boycotting_details, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		query.ProductName,
		query.ProductBrand,
		query.QueryTitle,
		query.BoycottingDetails,
		query.ImageURL,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: upserting query %s: %w", id, err)
	}

	return &model.UpdateResult{
		Acknowledged: true,
		UpsertedID:   id,
	}, nil
}

// AdjustRecommendationCount adds delta to a query's recommendation counter
// in a single atomic UPDATE.
//
// The original system read the record, computed count+1 in the handler and
// wrote it back — two round-trips that lose updates under concurrency.
// Pushing the arithmetic into the store makes concurrent adjustments
// always sum. There is deliberately no floor at zero: the client may
// decrement past it and the count goes negative, as it always has.
func (db *DB) AdjustRecommendationCount(ctx context.Context, id string, delta int) (*model.UpdateResult, error) {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE queries
		 SET recommendation_count = recommendation_count + ?, updated_at = ?
		 WHERE id = ?`,
		delta,
		time.Now(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: adjusting recommendation count for %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking rows affected: %w", err)
	}

	return &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  affected,
		ModifiedCount: affected,
	}, nil
}

// Delete removes a query by id. No ownership check happens at any layer —
// that matches the deployed contract. A missing id is not an error, the
// acknowledgment simply reports zero deleted rows.
func (db *DB) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM queries WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: deleting query %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking rows affected: %w", err)
	}

	return &model.DeleteResult{Acknowledged: true, DeletedCount: affected}, nil
}
