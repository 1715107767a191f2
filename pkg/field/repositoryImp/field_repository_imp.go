package repositoryImp

import (
	"math"

	"gorm.io/gorm"

	"croplan/entities"
	"croplan/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) FindByID(id uint) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) List() ([]entities.Field, error) {
	var out []entities.Field
	return out, r.db.Order("created_at DESC").Find(&out).Error
}

func (r *fieldRepo) Update(f *entities.Field) error { return r.db.Save(f).Error }

// Delete removes the field together with its history entries and climate
// samples. Either all deletes commit or none do.
func (r *fieldRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_id = ?", id).Delete(&entities.CropHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("field_id = ?", id).Delete(&entities.ClimateSample{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entities.Field{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Nearby returns fields whose centroid falls inside a bounding box around the
// point. A prefilter, not a great-circle search.
func (r *fieldRepo) Nearby(lat, lng, radiusKM float64) ([]entities.Field, error) {
	latRange := radiusKM / 111.0 // 1 degree of latitude ~ 111 km
	lngRange := radiusKM / (111.0 * math.Abs(math.Cos(lat*math.Pi/180)))

	var out []entities.Field
	return out, r.db.
		Where("center_lat BETWEEN ? AND ?", lat-latRange, lat+latRange).
		Where("center_lng BETWEEN ? AND ?", lng-lngRange, lng+lngRange).
		Find(&out).Error
}
