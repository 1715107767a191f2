package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"croplan/entities"
	"croplan/pkg/market/repository"
)

type marketRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MarketRepository { return &marketRepo{db} }

func (r *marketRepo) Insert(q *entities.MarketPrice) error { return r.db.Create(q).Error }

func (r *marketRepo) Latest(crop, region string) (*entities.MarketPrice, error) {
	var q entities.MarketPrice
	err := r.db.
		Where("crop = ? AND region = ?", crop, region).
		Order("date DESC, quote_id DESC").
		First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}
