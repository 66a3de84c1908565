package services

import (
	"errors"
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

// DBFoodService answers lookups against the populated sqlite store. It only
// ever reads, so one instance can serve any number of concurrent callers off
// the shared connection pool.
type DBFoodService struct {
	db    *gorm.DB
	limit int
}

type LookupOption func(*DBFoodService)

// WithSearchLimit caps how many rows FindByName returns.
func WithSearchLimit(n int) LookupOption {
	return func(s *DBFoodService) {
		if n > 0 {
			s.limit = n
		}
	}
}

func NewDBFoodService(db *gorm.DB, opts ...LookupOption) *DBFoodService {
	s := &DBFoodService{db: db, limit: 25}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DBFoodService) FindByName(query string) ([]models.FoodRecord, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var foods []models.Food
	err := s.db.
		Preload("Nutrients").
		Preload("Allergens").
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC, id ASC").
		Limit(s.limit).
		Find(&foods).Error
	if err != nil {
		return nil, fmt.Errorf("name lookup failed: %w", err)
	}

	records := make([]models.FoodRecord, 0, len(foods))
	for i := range foods {
		records = append(records, foods[i].Record())
	}
	return records, nil
}

func (s *DBFoodService) FindByBarcode(code string) (*models.FoodRecord, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	var food models.Food
	err := s.db.
		Preload("Nutrients").
		Preload("Allergens").
		Where("barcode = ?", code).
		Order("id ASC").
		First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("barcode lookup failed: %w", err)
	}

	rec := food.Record()
	return &rec, nil
}
