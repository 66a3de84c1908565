package services

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"backend/models"
	"backend/pkg/logger"
)

// JSONFoodService is the fallback backend: it scans the raw source document
// in memory instead of the sqlite store. Same contract, same match semantics.
// The corpus is parsed once on first use and shared read-only afterwards, so
// concurrent lookups need no locking.
type JSONFoodService struct {
	path    string
	mapping FieldMapping
	limit   int
	log     *logger.Logger

	once    sync.Once
	foods   []models.FoodRecord
	loadErr error
}

func NewJSONFoodService(path string, limit int, log *logger.Logger) *JSONFoodService {
	if limit <= 0 {
		limit = 25
	}
	return &JSONFoodService{
		path:    path,
		mapping: DefaultFDCMapping(),
		limit:   limit,
		log:     log,
	}
}

func (s *JSONFoodService) load() error {
	s.once.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			s.loadErr = fmt.Errorf("failed to read source document: %w", err)
			return
		}
		raws, malformed, err := parseFoodDocument(data)
		if err != nil {
			s.loadErr = err
			return
		}
		for _, raw := range raws {
			food, err := s.mapping.MapRecord(raw)
			if err != nil {
				malformed++
				continue
			}
			s.foods = append(s.foods, food.Record())
		}
		sort.Slice(s.foods, func(i, j int) bool {
			if s.foods[i].Name != s.foods[j].Name {
				return s.foods[i].Name < s.foods[j].Name
			}
			return s.foods[i].ID < s.foods[j].ID
		})
		s.log.Info("loaded json-scan corpus", "path", s.path, "foods", len(s.foods), "skipped", malformed)
	})
	return s.loadErr
}

func (s *JSONFoodService) FindByName(query string) ([]models.FoodRecord, error) {
	if err := s.load(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]models.FoodRecord, 0)
	for _, food := range s.foods {
		if strings.Contains(strings.ToLower(food.Name), needle) {
			matches = append(matches, food)
			if len(matches) >= s.limit {
				break
			}
		}
	}
	return matches, nil
}

func (s *JSONFoodService) FindByBarcode(code string) (*models.FoodRecord, error) {
	if err := s.load(); err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	var best *models.FoodRecord
	for i := range s.foods {
		food := &s.foods[i]
		if food.Barcode != code {
			continue
		}
		if best == nil || food.ID < best.ID {
			best = food
		}
	}
	if best == nil {
		return nil, nil
	}
	rec := *best
	return &rec, nil
}
