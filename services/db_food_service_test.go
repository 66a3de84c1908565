package services

import (
	"sync"
	"testing"

	"backend/models"
	"backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := setupTestDB(t)
	_, err := NewImportService(db, logger.NewNop()).Import(writeCorpus(t, sampleCorpus))
	require.NoError(t, err)
	return db
}

func TestFindByNameIsCaseInsensitive(t *testing.T) {
	svc := NewDBFoodService(seededDB(t))

	lower, err := svc.FindByName("apple")
	require.NoError(t, err)
	upper, err := svc.FindByName("APPLE")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	require.Len(t, lower, 2)
}

func TestFindByNameOrdersByNameThenID(t *testing.T) {
	svc := NewDBFoodService(seededDB(t))

	records, err := svc.FindByName("apple")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Apple", records[0].Name)
	assert.Equal(t, "apple pie", records[1].Name)
}

func TestFindByNameSubstringMatch(t *testing.T) {
	svc := NewDBFoodService(seededDB(t))

	records, err := svc.FindByName("chedda")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Cheddar Cheese", records[0].Name)
}

func TestFindByNameRespectsLimit(t *testing.T) {
	svc := NewDBFoodService(seededDB(t), WithSearchLimit(1))

	records, err := svc.FindByName("apple")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFindByNameNoMatchesIsEmptyNotError(t *testing.T) {
	svc := NewDBFoodService(seededDB(t))

	records, err := svc.FindByName("zucchini")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFindByBarcodeRoundTrip(t *testing.T) {
	svc := NewDBFoodService(seededDB(t))

	record, err := svc.FindByBarcode("111")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, models.FoodRecord{
		ID:          1,
		Name:        "Cheddar Cheese",
		Barcode:     "111",
		Description: "Dairy and Egg Products",
		Nutrients:   []models.NutrientFact{{Name: "protein", Amount: 25, Unit: "g"}},
		Allergens:   []models.AllergenFact{{Name: "milk"}},
	}, *record)
}

func TestFindByBarcodeNotFoundIsNilNotError(t *testing.T) {
	svc := NewDBFoodService(seededDB(t))

	record, err := svc.FindByBarcode("0000000000000")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestFindByBarcodeEmptyCode(t *testing.T) {
	svc := NewDBFoodService(seededDB(t))

	record, err := svc.FindByBarcode("")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestFindByBarcodeDuplicateCodesLowestIDWins(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Food{ID: 20, Name: "Soda Classic", Barcode: "555"}).Error)
	require.NoError(t, db.Create(&models.Food{ID: 7, Name: "Soda Zero", Barcode: "555"}).Error)

	svc := NewDBFoodService(db)
	record, err := svc.FindByBarcode("555")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.EqualValues(t, 7, record.ID)
}

func TestConcurrentLookups(t *testing.T) {
	svc := NewDBFoodService(seededDB(t))

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			records, err := svc.FindByName("apple")
			if err != nil {
				errs <- err
				return
			}
			if len(records) != 2 {
				errs <- assert.AnError
			}
		}()
		go func() {
			defer wg.Done()
			record, err := svc.FindByBarcode("111")
			if err != nil {
				errs <- err
				return
			}
			if record == nil || len(record.Nutrients) != 1 {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent lookup failed: %v", err)
	}
}
