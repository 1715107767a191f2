package repository

import "croplan/entities"

type ClimateRepository interface {
	Save(s *entities.ClimateSample) error
	// InRange returns samples with from <= date <= to (YYYY-MM-DD), oldest first.
	InRange(fieldID uint, from, to string) ([]entities.ClimateSample, error)
}
