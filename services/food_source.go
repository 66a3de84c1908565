package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"backend/models"
)

// FieldMapping names the document keys a source dataset uses. Each field is a
// list of candidate paths tried in order; a path may descend through nested
// objects with dots ("nutrient.unitName"). This keeps the importer free of
// hard-coded dataset assumptions: swapping corpora is a mapping change.
type FieldMapping struct {
	ID          []string
	Name        []string
	Barcode     []string
	Description []string

	Nutrients      []string
	NutrientName   []string
	NutrientAmount []string
	NutrientUnit   []string

	Allergens    []string
	AllergenName []string
}

// DefaultFDCMapping covers the USDA FoodData Central dumps, both the nested
// Foundation shape ({nutrient:{name,unitName}, amount}) and the flat search
// shape ({nutrientName, unitName, amount}).
func DefaultFDCMapping() FieldMapping {
	return FieldMapping{
		ID:          []string{"fdcId", "id"},
		Name:        []string{"description", "name"},
		Barcode:     []string{"gtinUpc", "barcode", "upc"},
		Description: []string{"foodCategory.description", "foodCategory", "ingredients"},

		Nutrients:      []string{"foodNutrients", "nutrients"},
		NutrientName:   []string{"nutrient.name", "nutrientName", "name"},
		NutrientAmount: []string{"amount", "value"},
		NutrientUnit:   []string{"nutrient.unitName", "unitName", "unit"},

		Allergens:    []string{"allergens"},
		AllergenName: []string{"name", "allergen"},
	}
}

// parseFoodDocument decodes the raw corpus into one map per record. A leading
// '[' means a single JSON array; anything else is treated as JSON lines, one
// object per line, tolerating trailing commas and blank lines (the FDC dumps
// ship in both layouts). A malformed array is fatal; a malformed line is a
// record-level problem reported in the second return value.
func parseFoodDocument(data []byte) ([]map[string]interface{}, int, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, 0, fmt.Errorf("source document is empty")
	}

	if strings.HasPrefix(trimmed, "[") {
		var raw []interface{}
		if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
			return nil, 0, fmt.Errorf("failed to parse source document: %w", err)
		}
		records := make([]map[string]interface{}, 0, len(raw))
		malformed := 0
		for _, item := range raw {
			if m, ok := item.(map[string]interface{}); ok {
				records = append(records, m)
			} else {
				malformed++
			}
		}
		return records, malformed, nil
	}

	var records []map[string]interface{}
	malformed := 0
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ","))
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			malformed++
			continue
		}
		records = append(records, m)
	}
	if len(records) == 0 {
		return nil, malformed, fmt.Errorf("source document contains no parseable records")
	}
	return records, malformed, nil
}

// MapRecord turns one raw document record into a Food row. Records without a
// usable identifier or name are rejected; everything else missing is empty,
// not fatal. Duplicate nutrient or allergen names within one record collapse
// to the last occurrence, matching upsert semantics.
func (m FieldMapping) MapRecord(raw map[string]interface{}) (*models.Food, error) {
	id := lookupInt64(raw, m.ID)
	if id == 0 {
		return nil, fmt.Errorf("record has no identifier")
	}
	name := lookupString(raw, m.Name)
	if name == "" {
		return nil, fmt.Errorf("record %d has no name", id)
	}

	food := &models.Food{
		ID:          id,
		Name:        name,
		Barcode:     lookupString(raw, m.Barcode),
		Description: lookupString(raw, m.Description),
	}

	seenNutrient := map[string]int{}
	for _, item := range lookupList(raw, m.Nutrients) {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		nname := lookupString(entry, m.NutrientName)
		if nname == "" {
			continue
		}
		n := models.Nutrient{
			FoodID: id,
			Name:   nname,
			Amount: lookupFloat(entry, m.NutrientAmount),
			Unit:   lookupString(entry, m.NutrientUnit),
		}
		if idx, dup := seenNutrient[nname]; dup {
			food.Nutrients[idx] = n
			continue
		}
		seenNutrient[nname] = len(food.Nutrients)
		food.Nutrients = append(food.Nutrients, n)
	}

	seenAllergen := map[string]bool{}
	for _, item := range lookupList(raw, m.Allergens) {
		var aname string
		switch v := item.(type) {
		case string:
			aname = v
		case map[string]interface{}:
			aname = lookupString(v, m.AllergenName)
		}
		if aname == "" || seenAllergen[aname] {
			continue
		}
		seenAllergen[aname] = true
		food.Allergens = append(food.Allergens, models.Allergen{FoodID: id, Name: aname})
	}

	return food, nil
}

// lookup resolves the first candidate path that yields a value, descending
// through nested objects at each dot.
func lookup(raw map[string]interface{}, paths []string) interface{} {
	for _, path := range paths {
		current := interface{}(raw)
		found := true
		for _, key := range strings.Split(path, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				found = false
				break
			}
			current, ok = m[key]
			if !ok {
				found = false
				break
			}
		}
		if found && current != nil {
			return current
		}
	}
	return nil
}

func lookupString(raw map[string]interface{}, paths []string) string {
	switch v := lookup(raw, paths).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func lookupFloat(raw map[string]interface{}, paths []string) float64 {
	switch v := lookup(raw, paths).(type) {
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	default:
		return 0
	}
}

func lookupInt64(raw map[string]interface{}, paths []string) int64 {
	switch v := lookup(raw, paths).(type) {
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n
	default:
		return 0
	}
}

func lookupList(raw map[string]interface{}, paths []string) []interface{} {
	if l, ok := lookup(raw, paths).([]interface{}); ok {
		return l
	}
	return nil
}
