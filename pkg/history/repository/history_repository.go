package repository

import (
	"time"

	"croplan/entities"
)

// HistoryWithField is a history row joined with its owning field's name and
// area, for list pages.
type HistoryWithField struct {
	HistoryID   uint      `json:"history_id"`
	FieldID     uint      `json:"field_id"`
	Year        int       `json:"year"`
	Season      string    `json:"season"`
	Crop        string    `json:"crop"`
	YieldAmount *float64  `json:"yield_amount"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	FieldName   string    `json:"field_name"`
	FieldArea   float64   `json:"field_area"`
}

type YieldStat struct {
	Crop     string  `json:"crop"`
	AvgYield float64 `json:"avg_yield"`
	Count    int     `json:"count"`
}

type HistoryRepository interface {
	Add(h *entities.CropHistory) error
	FindByID(id uint) (*HistoryWithField, error)
	// ListForField orders by year desc, then season rank desc.
	ListForField(fieldID uint) ([]entities.CropHistory, error)
	ListAll() ([]HistoryWithField, error)
	ListByYear(year int) ([]HistoryWithField, error)
	// Delete reports the owning field id of the removed entry.
	Delete(id uint) (uint, error)
	// YieldStats averages recorded yields per crop; fieldID narrows to one field.
	YieldStats(fieldID *uint) ([]YieldStat, error)
	// RotationHistory orders chronologically (year asc, season rank asc).
	RotationHistory(fieldID uint) ([]entities.CropHistory, error)
	LastCrop(fieldID uint) (*entities.CropHistory, error)
}
