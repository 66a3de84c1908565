package controllers

import (
	"fmt"
	"net/http"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// Response shape shared by the nutrition endpoints: the best match plus up
// to four alternatives, and a canonical macronutrient summary for the match.
type searchResult struct {
	Status       string              `json:"status"`
	Message      string              `json:"message,omitempty"`
	Data         *models.FoodRecord  `json:"data,omitempty"`
	Alternatives []models.FoodRecord `json:"alternatives,omitempty"`
	Summary      map[string]float64  `json:"summary,omitempty"`
}

// GET /nutrition/search/:name
func SearchFoodByName(lookup services.FoodLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		records, err := lookup.FindByName(name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, searchResult{Status: "error", Message: err.Error()})
			return
		}
		if len(records) == 0 {
			c.JSON(http.StatusOK, searchResult{
				Status:  "error",
				Message: "no results found for: " + name,
			})
			return
		}

		main := records[0]
		alternatives := records[1:]
		if len(alternatives) > 4 {
			alternatives = alternatives[:4]
		}
		c.JSON(http.StatusOK, searchResult{
			Status:       "success",
			Data:         &main,
			Alternatives: alternatives,
			Summary:      utils.Summarize(main.Nutrients),
		})
	}
}

// GET /nutrition/barcode/:code
func SearchFoodByBarcode(lookup services.FoodLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		record, err := lookup.FindByBarcode(code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, searchResult{Status: "error", Message: err.Error()})
			return
		}
		if record == nil {
			c.JSON(http.StatusNotFound, searchResult{
				Status:  "error",
				Message: "no product found with barcode: " + code,
			})
			return
		}
		c.JSON(http.StatusOK, searchResult{
			Status:  "success",
			Data:    record,
			Summary: utils.Summarize(record.Nutrients),
		})
	}
}

// POST /nutrition/image  (multipart field "file")
func IdentifyFoodFromImage(rec *services.RecognitionService, lookup services.FoodLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, searchResult{Status: "error", Message: "missing image file"})
			return
		}
		defer file.Close()

		foodClass, confidence, err := rec.Recognize(header.Filename, file)
		if err != nil {
			c.JSON(http.StatusBadGateway, searchResult{Status: "error", Message: err.Error()})
			return
		}

		records, err := lookup.FindByName(foodClass)
		if err != nil {
			c.JSON(http.StatusInternalServerError, searchResult{Status: "error", Message: err.Error()})
			return
		}
		if len(records) == 0 {
			c.JSON(http.StatusOK, searchResult{
				Status:  "partial",
				Message: "recognized as '" + foodClass + "' but no nutrition data found",
			})
			return
		}

		main := records[0]
		alternatives := records[1:]
		if len(alternatives) > 4 {
			alternatives = alternatives[:4]
		}
		c.JSON(http.StatusOK, searchResult{
			Status:       "success",
			Message:      fmt.Sprintf("recognized as '%s' (confidence %.2f)", foodClass, confidence),
			Data:         &main,
			Alternatives: alternatives,
			Summary:      utils.Summarize(main.Nutrients),
		})
	}
}
