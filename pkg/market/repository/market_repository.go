package repository

import "croplan/entities"

type MarketRepository interface {
	Insert(q *entities.MarketPrice) error
	// Latest returns the most recent quote for crop in region, or nil when no
	// quote exists.
	Latest(crop, region string) (*entities.MarketPrice, error)
}
