package services

import "backend/models"

// FoodLookup is the read-only capability callers depend on. Two backends
// implement it: the sqlite store (DBFoodService) and the in-memory scan over
// the raw corpus (JSONFoodService). Both are safe for concurrent callers.
//
// FindByName matches case-insensitively on a substring of the food name and
// returns matches ordered by name then id. FindByBarcode matches exactly and
// returns nil (no error) when the code is unknown; when the dataset carries
// duplicate barcodes the food with the lowest id wins.
type FoodLookup interface {
	FindByName(query string) ([]models.FoodRecord, error)
	FindByBarcode(code string) (*models.FoodRecord, error)
}
