package models

import "sort"

// One row per ingestible item. The ID is the dataset's native identifier
// (fdcId for FDC dumps), not an autoincrement.
type Food struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"index;not null" json:"name"`
	Barcode     string     `gorm:"index" json:"barcode,omitempty"`
	Description string     `json:"description,omitempty"`
	Nutrients   []Nutrient `gorm:"constraint:OnDelete:CASCADE" json:"nutrients"`
	Allergens   []Allergen `gorm:"constraint:OnDelete:CASCADE" json:"allergens"`
}

// One row per (food, nutrient) pair. The composite unique index keeps
// re-imports from ever stacking duplicate entries for the same food.
type Nutrient struct {
	ID     uint    `gorm:"primaryKey" json:"-"`
	FoodID int64   `gorm:"uniqueIndex:idx_nutrient_food_name" json:"-"`
	Name   string  `gorm:"uniqueIndex:idx_nutrient_food_name;not null" json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// One row per (food, allergen) pair, same uniqueness rule as Nutrient.
type Allergen struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	FoodID int64  `gorm:"uniqueIndex:idx_allergen_food_name" json:"-"`
	Name   string `gorm:"uniqueIndex:idx_allergen_food_name;not null" json:"name"`
}

// NutrientFact is the caller-facing view of one nutrient entry.
type NutrientFact struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// AllergenFact is the caller-facing view of one allergen entry.
type AllergenFact struct {
	Name string `json:"name"`
}

// FoodRecord is the shape lookups return: the food plus its fully hydrated
// nutrient and allergen facts.
type FoodRecord struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Barcode     string         `json:"barcode,omitempty"`
	Description string         `json:"description,omitempty"`
	Nutrients   []NutrientFact `json:"nutrients"`
	Allergens   []AllergenFact `json:"allergens"`
}

// Record flattens a Food row into its FoodRecord. Children are sorted by
// name so the output is deterministic regardless of row order.
func (f *Food) Record() FoodRecord {
	rec := FoodRecord{
		ID:          f.ID,
		Name:        f.Name,
		Barcode:     f.Barcode,
		Description: f.Description,
		Nutrients:   make([]NutrientFact, 0, len(f.Nutrients)),
		Allergens:   make([]AllergenFact, 0, len(f.Allergens)),
	}
	for _, n := range f.Nutrients {
		rec.Nutrients = append(rec.Nutrients, NutrientFact{Name: n.Name, Amount: n.Amount, Unit: n.Unit})
	}
	for _, a := range f.Allergens {
		rec.Allergens = append(rec.Allergens, AllergenFact{Name: a.Name})
	}
	sort.Slice(rec.Nutrients, func(i, j int) bool { return rec.Nutrients[i].Name < rec.Nutrients[j].Name })
	sort.Slice(rec.Allergens, func(i, j int) bool { return rec.Allergens[i].Name < rec.Allergens[j].Name })
	return rec
}
