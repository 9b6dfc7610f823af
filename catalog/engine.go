package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/RoboMarket/robomarket-backend/models"
)

// Store is the read-side product store the engine queries. Count and Select
// must be given the same where clause and args so totals and pages agree.
type Store interface {
	Count(ctx context.Context, where string, args []any) (int64, error)
	Select(ctx context.Context, where, order string, args []any, limit, offset int) ([]models.ProductRecord, error)
	Get(ctx context.Context, id int64) (*models.ProductRecord, error)
}

// ResultPage is one page of catalog results plus the exact total count and
// the pagination cursor for the next request.
type ResultPage struct {
	Products      []models.ProductRecord `json:"products"`
	HasMore       bool                   `json:"hasMore"`
	TotalMatching int64                  `json:"total"`
	NextOffset    int                    `json:"nextOffset"`
}

// Engine translates a FilterSpec into a bounded, sorted, paginated result set
// and its total count. It holds no mutable state; every call is independent.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Query runs the count query and the data query against one shared predicate
// list and assembles the result page. The two sub-queries run concurrently;
// if either fails the whole call fails and no partial page is returned.
func (e *Engine) Query(ctx context.Context, spec FilterSpec) (*ResultPage, error) {
	conditions, args := buildConditions(spec)
	where := whereClause(conditions)
	order := orderClause(spec.SortBy)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		total    int64
		products []models.ProductRecord
		errs     []error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		count, err := e.store.Count(ctx, where, args)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, &StoreQueryError{Op: "count", Err: err})
		} else {
			total = count
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		records, err := e.store.Select(ctx, where, order, args, spec.Limit, spec.Offset)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, &StoreQueryError{Op: "select", Err: err})
		} else {
			products = records
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}

	if products == nil {
		products = []models.ProductRecord{}
	}

	nextOffset := spec.Offset + spec.Limit
	return &ResultPage{
		Products:      products,
		HasMore:       int64(nextOffset) < total,
		TotalMatching: total,
		NextOffset:    nextOffset,
	}, nil
}

// GetProduct looks up a single record by identifier. Returns
// ErrProductNotFound when no record matches.
func (e *Engine) GetProduct(ctx context.Context, id int64) (*models.ProductRecord, error) {
	record, err := e.store.Get(ctx, id)
	if errors.Is(err, ErrProductNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, &StoreQueryError{Op: "get", Err: err}
	}
	return record, nil
}
