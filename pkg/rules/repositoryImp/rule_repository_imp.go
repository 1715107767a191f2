package repositoryImp

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"croplan/entities"
	"croplan/pkg/rules/repository"
)

type ruleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RuleRepository { return &ruleRepo{db} }

func (r *ruleRepo) List() ([]entities.CropRule, error) {
	var out []entities.CropRule
	return out, r.db.Order("crop ASC").Find(&out).Error
}

func (r *ruleRepo) FindByCrop(crop string) (*entities.CropRule, error) {
	var rule entities.CropRule
	if err := r.db.Where("crop = ?", crop).First(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *ruleRepo) CropsByFamily(family string) ([]string, error) {
	var crops []string
	return crops, r.db.Model(&entities.CropRule{}).
		Where("family = ?", family).
		Pluck("crop", &crops).Error
}

func (r *ruleRepo) Successors(crop string, exclude []string) ([]string, error) {
	rule, err := r.FindByCrop(crop)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	skip := make(map[string]bool, len(exclude))
	for _, c := range exclude {
		skip[c] = true
	}
	var out []string
	for _, s := range strings.Split(rule.RecommendedSuccessors, ",") {
		s = strings.TrimSpace(s)
		if s != "" && !skip[s] {
			out = append(out, s)
		}
	}
	return out, nil
}
