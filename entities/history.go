package entities

import "time"

const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
	SeasonOther  = "other"
)

// SeasonRank orders seasons within a year: spring < summer < autumn < other.
func SeasonRank(season string) int {
	switch season {
	case SeasonSpring:
		return 1
	case SeasonSummer:
		return 2
	case SeasonAutumn:
		return 3
	default:
		return 4
	}
}

type CropHistory struct {
	HistoryID   uint     `gorm:"primaryKey" json:"history_id"`
	FieldID     uint     `gorm:"index" json:"field_id"`
	Year        int      `json:"year"`
	Season      string   `json:"season"` // spring|summer|autumn|other
	Crop        string   `json:"crop"`
	YieldAmount *float64 `json:"yield_amount"`
	Notes       string   `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
