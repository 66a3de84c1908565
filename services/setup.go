package services

import (
	"backend/config"
	"backend/models"
	"backend/pkg/logger"
)

// InitializeAndImport creates/verifies the schema at dbPath and populates it
// from the corpus at jsonPath. Returns the number of imported food records.
func InitializeAndImport(jsonPath, dbPath string, log *logger.Logger, opts ...ImportOption) (int, error) {
	db, err := config.ConnectDB(dbPath)
	if err != nil {
		return 0, err
	}
	if err := config.MigrateSchema(db); err != nil {
		return 0, err
	}
	log.Info("schema ready", "db", dbPath)

	count, err := NewImportService(db, log, opts...).Import(jsonPath)
	if err != nil {
		return 0, err
	}

	var foods, nutrients, allergens int64
	db.Model(&models.Food{}).Count(&foods)
	db.Model(&models.Nutrient{}).Count(&nutrients)
	db.Model(&models.Allergen{}).Count(&allergens)
	log.Info("store populated", "foods", foods, "nutrients", nutrients, "allergens", allergens)

	return count, nil
}
