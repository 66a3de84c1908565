package services

import (
	"fmt"
	"os"
	"time"

	"backend/models"
	"backend/pkg/logger"

	"gorm.io/gorm"
)

const defaultBatchSize = 1000

// ImportService replaces the contents of the foods, nutrients and allergens
// tables from a source JSON corpus. The whole run is one transaction: readers
// see the pre-import or post-import state, never anything in between, and any
// failure rolls back to the prior contents.
type ImportService struct {
	db      *gorm.DB
	log     *logger.Logger
	mapping FieldMapping

	batchSize int
	maxFoods  int
}

type ImportOption func(*ImportService)

// WithMapping overrides the dataset field mapping.
func WithMapping(m FieldMapping) ImportOption {
	return func(s *ImportService) { s.mapping = m }
}

// WithBatchSize tunes how many food rows are inserted per statement batch.
func WithBatchSize(n int) ImportOption {
	return func(s *ImportService) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithMaxFoods caps how many records are imported. Used for test runs
// against the full multi-gigabyte dump.
func WithMaxFoods(n int) ImportOption {
	return func(s *ImportService) { s.maxFoods = n }
}

func NewImportService(db *gorm.DB, log *logger.Logger, opts ...ImportOption) *ImportService {
	s := &ImportService{
		db:        db,
		log:       log,
		mapping:   DefaultFDCMapping(),
		batchSize: defaultBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Import parses the corpus at jsonPath and repopulates the store, returning
// the number of food records imported. A record missing its identifier or
// name is skipped with a warning; a top-level parse failure or any storage
// write failure aborts the run with nothing changed.
func (s *ImportService) Import(jsonPath string) (int, error) {
	start := time.Now()

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read source document: %w", err)
	}

	raws, malformed, err := parseFoodDocument(data)
	if err != nil {
		return 0, err
	}
	if malformed > 0 {
		s.log.Warn("skipping malformed source entries", "count", malformed)
	}
	s.log.Info("loaded source document", "path", jsonPath, "records", len(raws))

	// Duplicate ids inside one file collapse to the last record, keeping the
	// original's replace semantics without tripping the primary key.
	foods := make([]*models.Food, 0, len(raws))
	seen := map[int64]int{}
	skipped := malformed
	for i, raw := range raws {
		if s.maxFoods > 0 && len(foods) >= s.maxFoods {
			break
		}
		food, err := s.mapping.MapRecord(raw)
		if err != nil {
			skipped++
			s.log.Warn("skipping record", "index", i, "error", err)
			continue
		}
		if idx, dup := seen[food.ID]; dup {
			foods[idx] = food
			continue
		}
		seen[food.ID] = len(foods)
		foods = append(foods, food)
	}

	if len(foods) == 0 {
		return 0, fmt.Errorf("no importable records in %s", jsonPath)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Children first so the delete order never violates the FKs.
		for _, table := range []string{"nutrients", "allergens", "foods"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		if err := tx.CreateInBatches(foods, s.batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert foods: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("import complete",
		"imported", len(foods),
		"skipped", skipped,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	return len(foods), nil
}
