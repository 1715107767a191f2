package repositoryImp

import (
	"gorm.io/gorm"

	"croplan/entities"
	"croplan/pkg/climate/repository"
)

type climateRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ClimateRepository { return &climateRepo{db} }

func (r *climateRepo) Save(s *entities.ClimateSample) error { return r.db.Create(s).Error }

func (r *climateRepo) InRange(fieldID uint, from, to string) ([]entities.ClimateSample, error) {
	var out []entities.ClimateSample
	return out, r.db.
		Where("field_id = ? AND date BETWEEN ? AND ?", fieldID, from, to).
		Order("date ASC").
		Find(&out).Error
}
