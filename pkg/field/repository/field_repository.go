package repository

import "croplan/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	FindByID(id uint) (*entities.Field, error)
	List() ([]entities.Field, error)
	Update(f *entities.Field) error
	Delete(id uint) error
	Nearby(lat, lng, radiusKM float64) ([]entities.Field, error)
}
