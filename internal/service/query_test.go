package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/mahdirahman356/electro-evo-server/internal/apperror"
	"github.com/mahdirahman356/electro-evo-server/internal/model"
	"github.com/mahdirahman356/electro-evo-server/internal/repository"
)

// mockQueryRepo is a hand-written in-memory implementation of
// repository.QueryRepository. The service doesn't know or care which
// implementation it gets — that's the point of the interface.
type mockQueryRepo struct {
	queries map[string]*model.Query
	nextID  int
	// failWith, when set, makes every call return this error — used to
	// test the service's error wrapping.
	failWith error
}

func newMockQueryRepo() *mockQueryRepo {
	return &mockQueryRepo{queries: make(map[string]*model.Query)}
}

func (m *mockQueryRepo) Create(_ context.Context, query *model.Query) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	query.ID = fmt.Sprintf("mock-%d", m.nextID)
	stored := *query
	m.queries[query.ID] = &stored
	return nil
}

func (m *mockQueryRepo) GetByID(_ context.Context, id string) (*model.Query, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	q, ok := m.queries[id]
	if !ok {
		return nil, nil // absence is not an error on this collection
	}
	result := *q
	return &result, nil
}

func (m *mockQueryRepo) List(_ context.Context, filter repository.QueryFilter) ([]model.Query, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := []model.Query{}
	for _, q := range m.queries {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(q.ProductName), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Email != "" && q.Email != filter.Email {
			continue
		}
		result = append(result, *q)
	}
	return result, nil
}

func (m *mockQueryRepo) Replace(_ context.Context, id string, query *model.Query) (*model.UpdateResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if existing, ok := m.queries[id]; ok {
		existing.ProductName = query.ProductName
		existing.ProductBrand = query.ProductBrand
		existing.QueryTitle = query.QueryTitle
		existing.BoycottingDetails = query.BoycottingDetails
		existing.ImageURL = query.ImageURL
		return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	stored := *query
	stored.ID = id
	stored.Email = ""
	stored.RecommendationCount = 0
	m.queries[id] = &stored
	return &model.UpdateResult{Acknowledged: true, UpsertedID: id}, nil
}

func (m *mockQueryRepo) AdjustRecommendationCount(_ context.Context, id string, delta int) (*model.UpdateResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	q, ok := m.queries[id]
	if !ok {
		return &model.UpdateResult{Acknowledged: true}, nil
	}
	q.RecommendationCount += delta
	return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockQueryRepo) Delete(_ context.Context, id string) (*model.DeleteResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if _, ok := m.queries[id]; !ok {
		return &model.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
	}
	delete(m.queries, id)
	return &model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// newTestQueryService wires a QueryService to the mock repository.
func newTestQueryService(t *testing.T) (*QueryService, *mockQueryRepo) {
	t.Helper()
	repo := newMockQueryRepo()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewQueryService(repo, logger)
	return svc, repo
}

// =========================================================================
// CREATE TESTS
// =========================================================================

func TestQueryCreate_ReturnsInsertAck(t *testing.T) {
	svc, _ := newTestQueryService(t)

	result, err := svc.Create(context.Background(), &model.Query{
		ProductName: "Phone X",
		Email:       "a@x.com",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !result.Acknowledged {
		t.Error("insert ack not acknowledged")
	}
	if result.InsertedID == "" {
		t.Error("insert ack has no insertedId")
	}
}

func TestQueryCreate_ZeroesCounter(t *testing.T) {
	svc, repo := newTestQueryService(t)

	// Even if the client sneaks a count into the body, it starts at zero.
	result, err := svc.Create(context.Background(), &model.Query{
		ProductName:         "Phone X",
		RecommendationCount: 99,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stored := repo.queries[result.InsertedID]
	if stored.RecommendationCount != 0 {
		t.Errorf("stored count = %d, want 0", stored.RecommendationCount)
	}
}

func TestQueryCreate_RepoFailure(t *testing.T) {
	svc, repo := newTestQueryService(t)
	repo.failWith = errors.New("store unreachable")

	_, err := svc.Create(context.Background(), &model.Query{ProductName: "Phone X"})
	if err == nil {
		t.Fatal("Create() should propagate repository failure")
	}
}

// =========================================================================
// GET / LIST TESTS
// =========================================================================

func TestQueryGetByID_BlankID(t *testing.T) {
	svc, _ := newTestQueryService(t)

	_, err := svc.GetByID(context.Background(), "   ")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("GetByID(blank) error = %v, want ErrValidation", err)
	}
}

func TestQueryGetByID_AbsentIsNotAnError(t *testing.T) {
	svc, _ := newTestQueryService(t)

	q, err := svc.GetByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("GetByID() error = %v, want nil", err)
	}
	if q != nil {
		t.Errorf("GetByID() = %+v, want nil", q)
	}
}

func TestQueryList_PassesSearchThrough(t *testing.T) {
	svc, _ := newTestQueryService(t)
	ctx := context.Background()

	svc.Create(ctx, &model.Query{ProductName: "Phone X"})
	svc.Create(ctx, &model.Query{ProductName: "Soda Y"})

	queries, err := svc.List(ctx, "phone")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(queries) != 1 {
		t.Errorf("List(search=phone) returned %d, want 1", len(queries))
	}
}

func TestQueryListByOwner_BlankEmail(t *testing.T) {
	svc, _ := newTestQueryService(t)

	_, err := svc.ListByOwner(context.Background(), "")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("ListByOwner(blank) error = %v, want ErrValidation", err)
	}
}

// =========================================================================
// COUNTER TESTS
// =========================================================================

func TestIncrementThenDecrement(t *testing.T) {
	svc, repo := newTestQueryService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, &model.Query{ProductName: "Phone X"})
	id := created.InsertedID

	svc.IncrementRecommendationCount(ctx, id)
	svc.IncrementRecommendationCount(ctx, id)
	svc.DecrementRecommendationCount(ctx, id)

	if got := repo.queries[id].RecommendationCount; got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
}

func TestAdjustCount_BlankID(t *testing.T) {
	svc, _ := newTestQueryService(t)

	_, err := svc.IncrementRecommendationCount(context.Background(), "")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("IncrementRecommendationCount(blank) error = %v, want ErrValidation", err)
	}
}

// =========================================================================
// DELETE TESTS
// =========================================================================

func TestQueryDelete_MissingIDAcksZero(t *testing.T) {
	svc, _ := newTestQueryService(t)

	result, err := svc.Delete(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("Delete() error = %v, want nil", err)
	}
	if result.DeletedCount != 0 {
		t.Errorf("DeletedCount = %d, want 0", result.DeletedCount)
	}
}

func TestQueryDelete_BlankID(t *testing.T) {
	svc, _ := newTestQueryService(t)

	_, err := svc.Delete(context.Background(), "  ")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Delete(blank) error = %v, want ErrValidation", err)
	}
}
