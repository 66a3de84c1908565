package config

import (
	"fmt"
	"os"
	"path/filepath"

	"backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDB opens (creating if needed) the sqlite database at path. Foreign
// keys are switched on in the DSN so the cascade constraints declared on the
// models are actually enforced.
func ConnectDB(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}

// MigrateSchema ensures the foods, nutrients and allergens tables exist with
// their keys and indexes. Safe to invoke repeatedly.
func MigrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Food{},
		&models.Nutrient{},
		&models.Allergen{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// InitDB wires the package-level handle used by the API server.
func InitDB() error {
	db, err := ConnectDB(DBPath())
	if err != nil {
		return err
	}
	if err := MigrateSchema(db); err != nil {
		return err
	}
	DB = db
	return nil
}
