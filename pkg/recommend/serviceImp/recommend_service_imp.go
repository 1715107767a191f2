package serviceImp

import (
	"math"
	"time"

	"croplan/entities"
	"croplan/pkg/advisor"
	climaterepo "croplan/pkg/climate/repository"
	fieldrepo "croplan/pkg/field/repository"
	histrepo "croplan/pkg/history/repository"
	"croplan/pkg/recommend/service"
	rulerepo "croplan/pkg/rules/repository"
)

// Ideal growing conditions for the yield adjustment (season averages).
const (
	idealSeasonTemp   = 20.0  // degrees C
	idealSeasonPrecip = 500.0 // mm
)

type recommendSvc struct {
	fields  fieldrepo.FieldRepository
	history histrepo.HistoryRepository
	rules   rulerepo.RuleRepository
	climate climaterepo.ClimateRepository
	now     func() time.Time
}

func New(fields fieldrepo.FieldRepository, history histrepo.HistoryRepository,
	rules rulerepo.RuleRepository, climate climaterepo.ClimateRepository) service.RecommendService {
	return &recommendSvc{fields: fields, history: history, rules: rules, climate: climate, now: time.Now}
}

func (s *recommendSvc) Recommend(fieldID uint, targetCrop string) (*service.Recommendation, error) {
	f, err := s.fields.FindByID(fieldID)
	if err != nil {
		return nil, err
	}
	history, err := s.history.ListForField(fieldID)
	if err != nil {
		return nil, err
	}

	soil := f.SoilType
	if soil == "" {
		soil = entities.SoilUnknown
	}
	now := s.now()
	rec := &service.Recommendation{
		FieldID:    f.FieldID,
		FieldName:  f.Name,
		TargetCrop: targetCrop,
		Advice:     advisor.Recommend(history, targetCrop, soil, f.AreaHa, int(now.Month()), now.Year()),
	}

	if successors, err := s.Successors(fieldID); err == nil {
		rec.Successors = successors
	}
	if y, err := s.PredictYield(fieldID, targetCrop); err == nil {
		rec.PredictedYield = &y
	}
	return rec, nil
}

func (s *recommendSvc) Successors(fieldID uint) ([]string, error) {
	last, err := s.history.LastCrop(fieldID)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, nil
	}

	// Don't suggest anything grown within the rotation window.
	history, err := s.history.ListForField(fieldID)
	if err != nil {
		return nil, err
	}
	cutoff := s.now().Year() - 3
	var exclude []string
	for _, h := range history {
		if h.Year >= cutoff {
			exclude = append(exclude, h.Crop)
		}
	}
	return s.rules.Successors(last.Crop, exclude)
}

func (s *recommendSvc) PredictYield(fieldID uint, crop string) (float64, error) {
	rule, err := s.rules.FindByCrop(crop)
	if err != nil {
		return 0, err
	}
	base := rule.YieldPotential

	now := s.now()
	samples, err := s.climate.InRange(fieldID,
		now.AddDate(-1, 0, 0).Format("2006-01-02"),
		now.Format("2006-01-02"))
	if err != nil {
		return 0, err
	}
	if len(samples) == 0 {
		return base, nil
	}

	var sumTemp, totalPrecip float64
	for _, s := range samples {
		sumTemp += s.TemperatureAvg
		totalPrecip += s.Precipitation
	}
	avgTemp := sumTemp / float64(len(samples))

	tempFactor := 1 - math.Abs(avgTemp-idealSeasonTemp)/idealSeasonTemp*0.1
	precipFactor := 1 - math.Abs(totalPrecip-idealSeasonPrecip)/idealSeasonPrecip*0.1

	predicted := base * tempFactor * precipFactor
	return math.Max(predicted, base*0.5), nil
}
