package services

import (
	"path/filepath"
	"testing"

	"backend/config"
	"backend/models"
	"backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAndImport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nutrition.db")
	jsonPath := writeCorpus(t, sampleCorpus)

	count, err := InitializeAndImport(jsonPath, dbPath, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// The populated store answers lookups on a fresh connection.
	db, err := config.ConnectDB(dbPath)
	require.NoError(t, err)

	record, err := NewDBFoodService(db).FindByBarcode("111")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Cheddar Cheese", record.Name)
}

func TestInitializeAndImportMissingSource(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nutrition.db")

	_, err := InitializeAndImport(filepath.Join(t.TempDir(), "missing.json"), dbPath, logger.NewNop())
	require.Error(t, err)

	var foods int64
	db, err2 := config.ConnectDB(dbPath)
	require.NoError(t, err2)
	require.NoError(t, db.Model(&models.Food{}).Count(&foods).Error)
	assert.Zero(t, foods)
}
