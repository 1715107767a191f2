// Package advisor produces rule-based crop-rotation advice. It is stateless:
// the caller supplies the field history, soil type, area and the current
// date, and gets back an ordered list of categorized messages.
package advisor

import (
	"fmt"

	"croplan/entities"
)

const (
	TypeWarning = "warning"
	TypeSuccess = "success"
	TypeInfo    = "info"
)

type Advice struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// rotationWindowYears is how far back a crop counts as "recently grown".
const rotationWindowYears = 3

var soilNotes = map[string]string{
	entities.SoilLoam:      "Well suited for most crops",
	entities.SoilChernozem: "Excellent soil for all crops",
	entities.SoilSandy:     "Needs more irrigation and fertilizer",
	entities.SoilClay:      "Needs drainage improvement",
	entities.SoilPeat:      "Requires liming",
}

// Recommend returns the advisory messages for planting targetCrop on a field
// with the given history. Message order is fixed: repetition check, soil
// note, seasonal note, then an area note when the area is known.
func Recommend(history []entities.CropHistory, targetCrop, soilType string, areaHa float64, month, year int) []Advice {
	out := make([]Advice, 0, 4)

	repeated := false
	for _, h := range history {
		if h.Year >= year-rotationWindowYears && h.Crop == targetCrop {
			repeated = true
			break
		}
	}
	if repeated {
		out = append(out, Advice{
			Type:    TypeWarning,
			Title:   "Repeat planting",
			Message: fmt.Sprintf("Crop %q was already grown on this field within the last %d years. Pick a different crop for the rotation.", targetCrop, rotationWindowYears),
		})
	} else {
		out = append(out, Advice{
			Type:    TypeSuccess,
			Title:   "Good choice",
			Message: fmt.Sprintf("Crop %q is a good rotation fit for this field.", targetCrop),
		})
	}

	if soilType != entities.SoilUnknown {
		note, ok := soilNotes[soilType]
		if !ok {
			note = "Check that the crop matches the soil type"
		}
		out = append(out, Advice{
			Type:    TypeInfo,
			Title:   "Soil type",
			Message: fmt.Sprintf("Soil type: %s. %s.", soilType, note),
		})
	}

	out = append(out, Advice{
		Type:    TypeInfo,
		Title:   "Season",
		Message: seasonNote(month),
	})

	if areaHa > 0 {
		out = append(out, Advice{
			Type:    TypeInfo,
			Title:   "Field area",
			Message: fmt.Sprintf("Area: %.2f ha. %s.", areaHa, areaNote(areaHa)),
		})
	}

	return out
}

func seasonNote(month int) string {
	switch {
	case month >= 3 && month <= 5:
		return "Optimal time for spring planting"
	case month >= 6 && month <= 8:
		return "Consider a summer sowing or start preparing for autumn"
	default:
		return "Suitable time for sowing autumn and winter crops"
	}
}

func areaNote(areaHa float64) string {
	switch {
	case areaHa < 5:
		return "Small area, consider intensive techniques"
	case areaHa < 20:
		return "Medium area, standard techniques apply"
	default:
		return "Large area, mechanized techniques are effective"
	}
}
