package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the optional .env file into the environment. Missing files are
// fine; deployments usually set real env vars instead.
func Load() {
	_ = godotenv.Load()
}

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DBPath is where the sqlite database lives.
func DBPath() string {
	return Getenv("DB_PATH", "data/nutrition.db")
}

// DataPath is the source JSON corpus used by the importer and the
// json-scan backend.
func DataPath() string {
	return Getenv("FOOD_DATA_PATH", "data/food_data.json")
}

// Backend selects the lookup implementation: "db" (default) or "json".
func Backend() string {
	return Getenv("NUTRITION_BACKEND", "db")
}

func RecognitionURL() string {
	return Getenv("IMAGE_RECOGNITION_URL", "http://localhost:8001")
}

// SearchLimit caps how many rows a name search returns.
func SearchLimit() int {
	if n, err := strconv.Atoi(os.Getenv("SEARCH_LIMIT")); err == nil && n > 0 {
		return n
	}
	return 25
}
