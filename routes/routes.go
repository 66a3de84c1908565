package routes

import (
	"net/http"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/pkg/logger"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the nutrition endpoints over the configured lookup
// backend: the sqlite store by default, or the json-scan fallback when
// NUTRITION_BACKEND=json.
func SetupRouter(log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log))

	var lookup services.FoodLookup
	switch config.Backend() {
	case "json":
		lookup = services.NewJSONFoodService(config.DataPath(), config.SearchLimit(), log)
		log.Info("using json-scan lookup backend", "path", config.DataPath())
	default:
		lookup = services.NewDBFoodService(config.DB, services.WithSearchLimit(config.SearchLimit()))
		log.Info("using database lookup backend", "path", config.DBPath())
	}

	recognizer := services.NewRecognitionService(config.RecognitionURL())

	nutrition := r.Group("/nutrition")
	{
		nutrition.GET("/search/:name", controllers.SearchFoodByName(lookup))
		nutrition.GET("/barcode/:code", controllers.SearchFoodByBarcode(lookup))
		nutrition.POST("/image", controllers.IdentifyFoodFromImage(recognizer, lookup))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
