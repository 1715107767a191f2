package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"croplan/entities"
	"croplan/pkg/history/repository"
)

// seasonRankSQL orders seasons within a year: spring < summer < autumn < other.
const seasonRankSQL = "CASE season WHEN 'spring' THEN 1 WHEN 'summer' THEN 2 WHEN 'autumn' THEN 3 ELSE 4 END"

const joinedSelect = "crop_histories.history_id, crop_histories.field_id, crop_histories.year, crop_histories.season, " +
	"crop_histories.crop, crop_histories.yield_amount, crop_histories.notes, crop_histories.created_at, " +
	"fields.name AS field_name, fields.area_ha AS field_area"

type historyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HistoryRepository { return &historyRepo{db} }

func (r *historyRepo) Add(h *entities.CropHistory) error {
	if h.Season == "" {
		h.Season = entities.SeasonSpring
	}
	return r.db.Create(h).Error
}

func (r *historyRepo) FindByID(id uint) (*repository.HistoryWithField, error) {
	var out repository.HistoryWithField
	err := r.db.Model(&entities.CropHistory{}).
		Select(joinedSelect).
		Joins("JOIN fields ON fields.field_id = crop_histories.field_id").
		Where("crop_histories.history_id = ?", id).
		Take(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *historyRepo) ListForField(fieldID uint) ([]entities.CropHistory, error) {
	var out []entities.CropHistory
	return out, r.db.
		Where("field_id = ?", fieldID).
		Order("year DESC, " + seasonRankSQL + " DESC").
		Find(&out).Error
}

func (r *historyRepo) ListAll() ([]repository.HistoryWithField, error) {
	var out []repository.HistoryWithField
	return out, r.db.Model(&entities.CropHistory{}).
		Select(joinedSelect).
		Joins("JOIN fields ON fields.field_id = crop_histories.field_id").
		Order("crop_histories.year DESC, " + seasonRankSQL + " DESC, crop_histories.created_at DESC").
		Scan(&out).Error
}

func (r *historyRepo) ListByYear(year int) ([]repository.HistoryWithField, error) {
	var out []repository.HistoryWithField
	return out, r.db.Model(&entities.CropHistory{}).
		Select(joinedSelect).
		Joins("JOIN fields ON fields.field_id = crop_histories.field_id").
		Where("crop_histories.year = ?", year).
		Order(seasonRankSQL + " DESC").
		Scan(&out).Error
}

func (r *historyRepo) Delete(id uint) (uint, error) {
	var h entities.CropHistory
	if err := r.db.First(&h, id).Error; err != nil {
		return 0, err
	}
	if err := r.db.Delete(&entities.CropHistory{}, id).Error; err != nil {
		return 0, err
	}
	return h.FieldID, nil
}

func (r *historyRepo) YieldStats(fieldID *uint) ([]repository.YieldStat, error) {
	q := r.db.Model(&entities.CropHistory{}).
		Select("crop, AVG(yield_amount) AS avg_yield, COUNT(*) AS count").
		Where("yield_amount IS NOT NULL").
		Group("crop")
	if fieldID != nil {
		q = q.Where("field_id = ?", *fieldID)
	}
	var out []repository.YieldStat
	return out, q.Scan(&out).Error
}

func (r *historyRepo) RotationHistory(fieldID uint) ([]entities.CropHistory, error) {
	var out []entities.CropHistory
	return out, r.db.
		Where("field_id = ?", fieldID).
		Order("year ASC, " + seasonRankSQL + " ASC").
		Find(&out).Error
}

func (r *historyRepo) LastCrop(fieldID uint) (*entities.CropHistory, error) {
	var h entities.CropHistory
	err := r.db.
		Where("field_id = ?", fieldID).
		Order("year DESC, " + seasonRankSQL + " DESC").
		First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}
