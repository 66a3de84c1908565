package main

import (
	"flag"
	"log"
	"os"

	"backend/config"
	"backend/pkg/logger"
	"backend/services"
)

// setupdb creates the schema and runs a full import:
//
//	setupdb -data data/food_data.json -db data/nutrition.db
func main() {
	config.Load()

	dataPath := flag.String("data", config.DataPath(), "path to the source JSON corpus")
	dbPath := flag.String("db", config.DBPath(), "path to the sqlite database")
	maxFoods := flag.Int("max-foods", 0, "import at most this many foods (0 = all)")
	batchSize := flag.Int("batch-size", 1000, "insert batch size")
	flag.Parse()

	appLog, err := logger.New(config.Getenv("LOG_MODE", "dev"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	opts := []services.ImportOption{services.WithBatchSize(*batchSize)}
	if *maxFoods > 0 {
		opts = append(opts, services.WithMaxFoods(*maxFoods))
	}

	count, err := services.InitializeAndImport(*dataPath, *dbPath, appLog, opts...)
	if err != nil {
		appLog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	appLog.Info("database setup complete", "imported", count)
}
