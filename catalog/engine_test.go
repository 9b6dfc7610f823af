package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/RoboMarket/robomarket-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore serves a fixed record list and remembers the clauses it was given,
// so tests can verify the count query and the data query stay in sync.
type fakeStore struct {
	mu      sync.Mutex
	records []models.ProductRecord

	countErr  error
	selectErr error

	countWhere  string
	countArgs   []any
	selectWhere string
	selectOrder string
	selectArgs  []any
}

func (s *fakeStore) Count(_ context.Context, where string, args []any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countErr != nil {
		return 0, s.countErr
	}
	s.countWhere = where
	s.countArgs = args
	return int64(len(s.records)), nil
}

func (s *fakeStore) Select(_ context.Context, where, order string, args []any, limit, offset int) ([]models.ProductRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectErr != nil {
		return nil, s.selectErr
	}
	s.selectWhere = where
	s.selectOrder = order
	s.selectArgs = args

	if offset >= len(s.records) {
		return []models.ProductRecord{}, nil
	}
	end := offset + limit
	if end > len(s.records) {
		end = len(s.records)
	}
	return s.records[offset:end], nil
}

func (s *fakeStore) Get(_ context.Context, id int64) (*models.ProductRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			return &s.records[i], nil
		}
	}
	return nil, ErrProductNotFound
}

func makeRecords(n int) []models.ProductRecord {
	brand := "RoboTech"
	records := make([]models.ProductRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, models.ProductRecord{
			ID:    int64(i),
			Name:  fmt.Sprintf("Robot %d", i),
			Brand: &brand,
		})
	}
	return records
}

// 25 matching products, limit 20: the first page carries 20 records and the
// follow-up page the remaining 5.
func TestQuery_Pagination(t *testing.T) {
	store := &fakeStore{records: makeRecords(25)}
	engine := NewEngine(store)

	spec := FilterSpec{Limit: 20, Offset: 0, SortBy: SortNewest, Brands: []string{"RoboTech"}}
	page, err := engine.Query(context.Background(), spec)
	require.NoError(t, err)

	assert.Len(t, page.Products, 20)
	assert.Equal(t, int64(25), page.TotalMatching)
	assert.True(t, page.HasMore)
	assert.Equal(t, 20, page.NextOffset)

	spec.Offset = page.NextOffset
	page, err = engine.Query(context.Background(), spec)
	require.NoError(t, err)

	assert.Len(t, page.Products, 5)
	assert.Equal(t, int64(25), page.TotalMatching)
	assert.False(t, page.HasMore)
	assert.Equal(t, 40, page.NextOffset)
}

// Concatenating pages until hasMore is false yields every identifier exactly once.
func TestQuery_PaginationCompleteness(t *testing.T) {
	store := &fakeStore{records: makeRecords(47)}
	engine := NewEngine(store)

	seen := map[int64]bool{}
	spec := FilterSpec{Limit: 10, SortBy: SortNewest}
	for {
		page, err := engine.Query(context.Background(), spec)
		require.NoError(t, err)
		require.LessOrEqual(t, len(page.Products), spec.Limit)

		for _, p := range page.Products {
			require.False(t, seen[p.ID], "duplicate id %d", p.ID)
			seen[p.ID] = true
		}

		assert.Equal(t, spec.Offset+spec.Limit, page.NextOffset)
		assert.Equal(t, int64(page.NextOffset) < page.TotalMatching, page.HasMore)

		if !page.HasMore {
			break
		}
		spec.Offset = page.NextOffset
	}

	assert.Len(t, seen, 47)
}

// nextOffset is a cursor for the next request, not a count of records
// returned: it advances past the end of the result set.
func TestQuery_OffsetBeyondTotal(t *testing.T) {
	store := &fakeStore{records: makeRecords(5)}
	engine := NewEngine(store)

	page, err := engine.Query(context.Background(), FilterSpec{Limit: 20, Offset: 100, SortBy: SortNewest})
	require.NoError(t, err)

	assert.Empty(t, page.Products)
	assert.NotNil(t, page.Products)
	assert.Equal(t, int64(5), page.TotalMatching)
	assert.False(t, page.HasMore)
	assert.Equal(t, 120, page.NextOffset)
}

func TestQuery_EmptyStore(t *testing.T) {
	engine := NewEngine(&fakeStore{})

	page, err := engine.Query(context.Background(), FilterSpec{Limit: 20, SortBy: SortNewest})
	require.NoError(t, err)

	assert.NotNil(t, page.Products)
	assert.Empty(t, page.Products)
	assert.Equal(t, int64(0), page.TotalMatching)
	assert.False(t, page.HasMore)
}

// The count query and the data query must be built from the same predicate
// list, or totals and pages disagree.
func TestQuery_CountAndDataShareFilters(t *testing.T) {
	store := &fakeStore{records: makeRecords(3)}
	engine := NewEngine(store)

	max := 500.0
	spec := FilterSpec{
		Limit:     20,
		SortBy:    SortRating,
		Search:    "sweep",
		Brands:    []string{"CleanCo"},
		PriceMin:  100,
		PriceMax:  &max,
		MinRating: 4,
	}
	_, err := engine.Query(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, store.countWhere, store.selectWhere)
	assert.Equal(t, store.countArgs, store.selectArgs)
	assert.Equal(t, "p.rating_average DESC, p.id ASC", store.selectOrder)
}

func TestQuery_CountFailure(t *testing.T) {
	store := &fakeStore{records: makeRecords(3), countErr: errors.New("connection reset")}
	engine := NewEngine(store)

	page, err := engine.Query(context.Background(), FilterSpec{Limit: 20, SortBy: SortNewest})
	require.Error(t, err)
	assert.Nil(t, page, "no partial page on failure")

	var queryErr *StoreQueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "count", queryErr.Op)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestQuery_SelectFailure(t *testing.T) {
	store := &fakeStore{records: makeRecords(3), selectErr: errors.New("relation missing")}
	engine := NewEngine(store)

	page, err := engine.Query(context.Background(), FilterSpec{Limit: 20, SortBy: SortNewest})
	require.Error(t, err)
	assert.Nil(t, page)

	var queryErr *StoreQueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "select", queryErr.Op)
	assert.Contains(t, err.Error(), "relation missing")
}

// Two calls with an identical FilterSpec against an unchanged store return
// identical products and totals.
func TestQuery_Idempotent(t *testing.T) {
	store := &fakeStore{records: makeRecords(30)}
	engine := NewEngine(store)

	spec := FilterSpec{Limit: 10, Offset: 10, SortBy: SortPopularity}
	first, err := engine.Query(context.Background(), spec)
	require.NoError(t, err)
	second, err := engine.Query(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, first.Products, second.Products)
	assert.Equal(t, first.TotalMatching, second.TotalMatching)
}

func TestGetProduct(t *testing.T) {
	store := &fakeStore{records: makeRecords(3)}
	engine := NewEngine(store)

	product, err := engine.GetProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), product.ID)

	_, err = engine.GetProduct(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProduct_StoreFailure(t *testing.T) {
	engine := NewEngine(&failingGetStore{err: errors.New("timeout")})

	_, err := engine.GetProduct(context.Background(), 1)
	var queryErr *StoreQueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "get", queryErr.Op)
}

type failingGetStore struct {
	fakeStore
	err error
}

func (s *failingGetStore) Get(context.Context, int64) (*models.ProductRecord, error) {
	return nil, s.err
}
