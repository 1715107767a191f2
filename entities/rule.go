package entities

// CropRule is read-only reference data seeded at startup; request handlers
// never mutate it. Predecessor/successor lists are comma-joined crop names.
type CropRule struct {
	RuleID                uint    `gorm:"primaryKey" json:"rule_id"`
	Crop                  string  `gorm:"uniqueIndex" json:"crop"`
	Family                string  `json:"family"`
	GoodPredecessors      string  `json:"good_predecessors"`
	BadPredecessors       string  `json:"bad_predecessors"`
	NitrogenEffect        string  `json:"nitrogen_effect"`
	SoilRequirements      string  `json:"soil_requirements"`
	RecommendedSuccessors string  `json:"recommended_successors"`
	WaterRequirements     string  `json:"water_requirements"`
	TemperatureMin        float64 `json:"temperature_min"`
	TemperatureMax        float64 `json:"temperature_max"`
	GrowingSeasonDays     int     `json:"growing_season_days"`
	PHMin                 float64 `json:"ph_min"`
	PHMax                 float64 `json:"ph_max"`
	FertilizerN           float64 `json:"fertilizer_n"`
	FertilizerP           float64 `json:"fertilizer_p"`
	FertilizerK           float64 `json:"fertilizer_k"`
	MarketPrice           float64 `json:"market_price"`
	YieldPotential        float64 `json:"yield_potential"`
}
