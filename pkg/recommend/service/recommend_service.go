package service

import "croplan/pkg/advisor"

type Recommendation struct {
	FieldID        uint             `json:"field_id"`
	FieldName      string           `json:"field_name"`
	TargetCrop     string           `json:"target_crop"`
	Advice         []advisor.Advice `json:"recommendations"`
	Successors     []string         `json:"successors,omitempty"`
	PredictedYield *float64         `json:"predicted_yield,omitempty"`
}

type RecommendService interface {
	// Recommend runs the rotation advisor for planting targetCrop on a field,
	// plus successor suggestions and a yield prediction when rule data exists.
	Recommend(fieldID uint, targetCrop string) (*Recommendation, error)
	// Successors suggests follow-up crops after the field's last planting,
	// excluding crops grown within the rotation window.
	Successors(fieldID uint) ([]string, error)
	// PredictYield scales the crop's yield potential by how far last year's
	// climate samples sat from ideal growing conditions.
	PredictYield(fieldID uint, crop string) (float64, error)
}
