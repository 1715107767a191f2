package entities

import "time"

// MarketPrice is an append-only quote per crop per region; "current" price is
// the most recent row by date.
type MarketPrice struct {
	QuoteID uint    `gorm:"primaryKey" json:"quote_id"`
	Crop    string  `gorm:"index" json:"crop"`
	Price   float64 `json:"price"`
	Date    string  `gorm:"index" json:"date"` // YYYY-MM-DD
	Region  string  `json:"region"`
	Source  string  `json:"source"`

	CreatedAt time.Time `json:"created_at"`
}
