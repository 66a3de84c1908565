package utils

import (
	"strings"

	"backend/models"
)

// Canonical keys follow the Open Food Facts naming the mobile clients expect.
var nutrientNameMap = map[string][]string{
	"energy":        {"energy", "calorie", "kcal", "kilocal"},
	"fat":           {"total lipid", "total fat", "fat"},
	"saturated-fat": {"saturated"},
	"carbohydrates": {"carbohydrate", "carbs"},
	"sugars":        {"sugar"},
	"fiber":         {"fiber", "fibre"},
	"proteins":      {"protein"},
	"sodium":        {"sodium"},
	"salt":          {"salt", "sodium chloride"},
}

// Order matters: "saturated fat" must hit saturated-fat before fat, and
// "total sugars" must not land on carbohydrates.
var canonicalOrder = []string{
	"saturated-fat", "salt", "sodium", "sugars", "fiber",
	"proteins", "carbohydrates", "energy", "fat",
}

var unitToGrams = map[string]float64{
	"g":    1.0,
	"mg":   0.001,
	"µg":   0.000001,
	"mcg":  0.000001,
	"ug":   0.000001,
	"kcal": 1.0,
	"kj":   0.239, // kilojoules to kilocalories, energy only
}

// CanonicalNutrient maps a dataset nutrient name onto its canonical key, or
// "" when the name is not one of the tracked macronutrients.
func CanonicalNutrient(name string) string {
	name = strings.ToLower(name)
	for _, key := range canonicalOrder {
		for _, alias := range nutrientNameMap[key] {
			if strings.Contains(name, alias) {
				return key
			}
		}
	}
	return ""
}

// Summarize reduces a food's nutrient facts to the canonical macronutrient
// map, amounts converted to grams (kcal for energy). Unrecognized nutrients
// are left out; salt is derived from sodium (and vice versa) when only one of
// the pair is present.
func Summarize(facts []models.NutrientFact) map[string]float64 {
	summary := map[string]float64{}
	for _, fact := range facts {
		key := CanonicalNutrient(fact.Name)
		if key == "" || fact.Amount == 0 {
			continue
		}
		factor, ok := unitToGrams[strings.ToLower(strings.TrimSpace(fact.Unit))]
		if !ok {
			factor = 1.0
		}
		if _, seen := summary[key]; !seen {
			summary[key] = fact.Amount * factor
		}
	}

	// Rough conversion factor used on nutrition labels.
	if sodium, ok := summary["sodium"]; ok {
		if _, hasSalt := summary["salt"]; !hasSalt {
			summary["salt"] = sodium * 2.5
		}
	} else if salt, ok := summary["salt"]; ok {
		summary["sodium"] = salt / 2.5
	}

	return summary
}
