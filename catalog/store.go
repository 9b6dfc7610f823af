package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RoboMarket/robomarket-backend/models"
	"gorm.io/gorm"
)

// gormStore reads the storefront_products materialized view. The view is a
// fixed, denormalized projection; no joins happen here.
type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

type productRow struct {
	ID               int64     `gorm:"column:id"`
	Name             string    `gorm:"column:name"`
	Description      string    `gorm:"column:description"`
	Brand            *string   `gorm:"column:brand"`
	Categories       []byte    `gorm:"column:categories"`
	BestPrice        *float64  `gorm:"column:best_price"`
	RatingAverage    float64   `gorm:"column:rating_average"`
	RatingCount      int       `gorm:"column:rating_count"`
	FeaturedPosition *int      `gorm:"column:featured_position"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

const productColumns = `
	p.id,
	p.name,
	p.description,
	p.brand,
	p.categories,
	p.best_price,
	p.rating_average,
	p.rating_count,
	p.featured_position,
	p.created_at`

func (s *gormStore) Count(ctx context.Context, where string, args []any) (int64, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(p.id)
		FROM storefront_products p
		WHERE %s
	`, where)

	var total int64
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *gormStore) Select(ctx context.Context, where, order string, args []any, limit, offset int) ([]models.ProductRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM storefront_products p
		WHERE %s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, productColumns, where, order)

	dataArgs := append(append([]any{}, args...), limit, offset)

	var rows []productRow
	if err := s.db.WithContext(ctx).Raw(query, dataArgs...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]models.ProductRecord, 0, len(rows))
	for i := range rows {
		record, err := rows[i].toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}

func (s *gormStore) Get(ctx context.Context, id int64) (*models.ProductRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM storefront_products p
		WHERE p.id = ?
	`, productColumns)

	var row productRow
	if err := s.db.WithContext(ctx).Raw(query, id).Scan(&row).Error; err != nil {
		return nil, err
	}

	// Scan leaves the row zeroed when no record matched.
	if row.ID == 0 {
		return nil, ErrProductNotFound
	}
	return row.toRecord()
}

func (r *productRow) toRecord() (*models.ProductRecord, error) {
	categories := []string{}
	if len(r.Categories) > 0 {
		if err := json.Unmarshal(r.Categories, &categories); err != nil {
			return nil, fmt.Errorf("failed to parse product categories: %w", err)
		}
	}

	return &models.ProductRecord{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Brand:       r.Brand,
		Categories:  categories,
		BestPrice:   r.BestPrice,
		Rating: models.Rating{
			Average: r.RatingAverage,
			Count:   r.RatingCount,
		},
		FeaturedPosition: r.FeaturedPosition,
		CreatedAt:        r.CreatedAt,
	}, nil
}
