package utils

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalNutrient(t *testing.T) {
	cases := map[string]string{
		"Protein":                  "proteins",
		"Total lipid (fat)":        "fat",
		"Fatty acids, saturated":   "saturated-fat",
		"Carbohydrate, by diff.":   "carbohydrates",
		"Total Sugars":             "sugars",
		"Fiber, total dietary":     "fiber",
		"Energy":                   "energy",
		"Sodium, Na":               "sodium",
		"Vitamin C, ascorbic acid": "",
	}
	for name, want := range cases {
		assert.Equal(t, want, CanonicalNutrient(name), "name %q", name)
	}
}

func TestSummarizeConvertsUnitsAndDerivesSalt(t *testing.T) {
	summary := Summarize([]models.NutrientFact{
		{Name: "Protein", Amount: 25, Unit: "g"},
		{Name: "Sodium, Na", Amount: 620, Unit: "mg"},
		{Name: "Energy", Amount: 402, Unit: "kcal"},
		{Name: "Vitamin C", Amount: 12, Unit: "mg"},
	})

	assert.Equal(t, 25.0, summary["proteins"])
	assert.InDelta(t, 0.62, summary["sodium"], 1e-9)
	assert.InDelta(t, 1.55, summary["salt"], 1e-9)
	assert.Equal(t, 402.0, summary["energy"])
	assert.NotContains(t, summary, "vitamin-c")
}

func TestSummarizeDerivesSodiumFromSalt(t *testing.T) {
	summary := Summarize([]models.NutrientFact{
		{Name: "Salt", Amount: 2.5, Unit: "g"},
	})

	assert.Equal(t, 2.5, summary["salt"])
	assert.InDelta(t, 1.0, summary["sodium"], 1e-9)
}

func TestSummarizeSkipsZeroAmounts(t *testing.T) {
	summary := Summarize([]models.NutrientFact{
		{Name: "Protein", Amount: 0, Unit: "g"},
	})
	assert.Empty(t, summary)
}
