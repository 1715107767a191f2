package database

import (
	"gorm.io/gorm"

	"croplan/entities"
)

// Rotation rules based on standard agronomy references. Read-only after seeding.
var cropRules = []entities.CropRule{
	// Cereals
	{Crop: "winter wheat", Family: "Grasses",
		GoodPredecessors:      "peas,alfalfa,clover,silage corn,early potato",
		BadPredecessors:       "wheat,barley,oats,sunflower,beet",
		NitrogenEffect:        "neutral",
		SoilRequirements:      "chernozem, chestnut, loam",
		RecommendedSuccessors: "corn,sunflower,rapeseed,legumes",
		WaterRequirements:     "medium",
		TemperatureMin:        -15, TemperatureMax: 25, GrowingSeasonDays: 280,
		PHMin: 6.0, PHMax: 7.5, FertilizerN: 120, FertilizerP: 60, FertilizerK: 60,
		MarketPrice: 15000, YieldPotential: 4.5},

	{Crop: "spring wheat", Family: "Grasses",
		GoodPredecessors:      "legumes,corn,potato,perennial grasses",
		BadPredecessors:       "wheat,barley,oats",
		NitrogenEffect:        "neutral",
		SoilRequirements:      "fertile loam",
		RecommendedSuccessors: "legumes,corn,rapeseed",
		WaterRequirements:     "medium",
		TemperatureMin:        5, TemperatureMax: 30, GrowingSeasonDays: 100,
		PHMin: 6.0, PHMax: 7.5, FertilizerN: 100, FertilizerP: 50, FertilizerK: 50,
		MarketPrice: 14000, YieldPotential: 3.5},

	{Crop: "spring barley", Family: "Grasses",
		GoodPredecessors:      "legumes,potato,corn,beet",
		BadPredecessors:       "barley,wheat,oats",
		NitrogenEffect:        "neutral",
		SoilRequirements:      "varied soils",
		RecommendedSuccessors: "legumes,corn,rapeseed",
		WaterRequirements:     "low",
		TemperatureMin:        5, TemperatureMax: 30, GrowingSeasonDays: 85,
		PHMin: 5.5, PHMax: 7.5, FertilizerN: 80, FertilizerP: 40, FertilizerK: 40,
		MarketPrice: 12000, YieldPotential: 3.0},

	{Crop: "oats", Family: "Grasses",
		GoodPredecessors:      "legumes,potato,corn,flax",
		BadPredecessors:       "oats,wheat,barley",
		NitrogenEffect:        "neutral",
		SoilRequirements:      "moisture-loving, loam",
		RecommendedSuccessors: "legumes,potato,flax",
		WaterRequirements:     "high",
		TemperatureMin:        5, TemperatureMax: 25, GrowingSeasonDays: 100,
		PHMin: 5.0, PHMax: 7.0, FertilizerN: 70, FertilizerP: 35, FertilizerK: 35,
		MarketPrice: 11000, YieldPotential: 2.5},

	// Legumes
	{Crop: "peas", Family: "Legumes",
		GoodPredecessors:      "cereals,corn,potato",
		BadPredecessors:       "peas,legumes,sunflower",
		NitrogenEffect:        "enriches nitrogen",
		SoilRequirements:      "neutral loam",
		RecommendedSuccessors: "wheat,barley,corn",
		WaterRequirements:     "medium",
		TemperatureMin:        8, TemperatureMax: 25, GrowingSeasonDays: 90,
		PHMin: 6.0, PHMax: 7.5, FertilizerN: 30, FertilizerP: 60, FertilizerK: 60,
		MarketPrice: 25000, YieldPotential: 2.5},

	{Crop: "soybean", Family: "Legumes",
		GoodPredecessors:      "cereals,corn,perennial grasses",
		BadPredecessors:       "soybean,legumes,sunflower",
		NitrogenEffect:        "enriches nitrogen",
		SoilRequirements:      "fertile loam",
		RecommendedSuccessors: "wheat,corn,barley",
		WaterRequirements:     "medium",
		TemperatureMin:        15, TemperatureMax: 30, GrowingSeasonDays: 120,
		PHMin: 6.0, PHMax: 7.0, FertilizerN: 40, FertilizerP: 80, FertilizerK: 80,
		MarketPrice: 35000, YieldPotential: 2.0},

	{Crop: "alfalfa", Family: "Legumes",
		GoodPredecessors:      "cereals,corn,potato",
		BadPredecessors:       "alfalfa,legumes",
		NitrogenEffect:        "strongly enriches nitrogen",
		SoilRequirements:      "neutral well-drained",
		RecommendedSuccessors: "cereals,corn,sunflower",
		WaterRequirements:     "high",
		TemperatureMin:        5, TemperatureMax: 30, GrowingSeasonDays: 365,
		PHMin: 6.5, PHMax: 7.5, FertilizerN: 0, FertilizerP: 60, FertilizerK: 60,
		MarketPrice: 18000, YieldPotential: 8.0},

	// Industrial crops
	{Crop: "sunflower", Family: "Asteraceae",
		GoodPredecessors:      "winter cereals,legumes,corn",
		BadPredecessors:       "sunflower,beet,rapeseed,flax",
		NitrogenEffect:        "heavy consumer",
		SoilRequirements:      "chernozem, loam",
		RecommendedSuccessors: "winter cereals,legumes,corn",
		WaterRequirements:     "low",
		TemperatureMin:        10, TemperatureMax: 30, GrowingSeasonDays: 120,
		PHMin: 6.0, PHMax: 7.5, FertilizerN: 80, FertilizerP: 60, FertilizerK: 120,
		MarketPrice: 45000, YieldPotential: 2.5},

	{Crop: "spring rapeseed", Family: "Brassicas",
		GoodPredecessors:      "cereals,legumes,potato",
		BadPredecessors:       "rapeseed,cabbage,radish",
		NitrogenEffect:        "neutral",
		SoilRequirements:      "fertile neutral",
		RecommendedSuccessors: "cereals,legumes,corn",
		WaterRequirements:     "medium",
		TemperatureMin:        5, TemperatureMax: 25, GrowingSeasonDays: 110,
		PHMin: 6.0, PHMax: 7.5, FertilizerN: 120, FertilizerP: 60, FertilizerK: 120,
		MarketPrice: 28000, YieldPotential: 2.0},

	{Crop: "flax", Family: "Flaxes",
		GoodPredecessors:      "winter cereals,legumes,potato",
		BadPredecessors:       "flax,sunflower,beet",
		NitrogenEffect:        "neutral",
		SoilRequirements:      "neutral loam",
		RecommendedSuccessors: "winter cereals,legumes,corn",
		WaterRequirements:     "medium",
		TemperatureMin:        10, TemperatureMax: 25, GrowingSeasonDays: 90,
		PHMin: 6.0, PHMax: 7.0, FertilizerN: 60, FertilizerP: 40, FertilizerK: 60,
		MarketPrice: 30000, YieldPotential: 1.5},

	// Root crops
	{Crop: "potato", Family: "Nightshades",
		GoodPredecessors:      "winter cereals,legumes,cabbage,cucumber",
		BadPredecessors:       "potato,sunflower,tomato",
		NitrogenEffect:        "neutral",
		SoilRequirements:      "light loose soils",
		RecommendedSuccessors: "winter cereals,legumes,flax",
		WaterRequirements:     "high",
		TemperatureMin:        10, TemperatureMax: 25, GrowingSeasonDays: 120,
		PHMin: 5.0, PHMax: 6.5, FertilizerN: 100, FertilizerP: 80, FertilizerK: 150,
		MarketPrice: 20000, YieldPotential: 25.0},

	{Crop: "sugar beet", Family: "Amaranths",
		GoodPredecessors:      "winter cereals,legumes,corn",
		BadPredecessors:       "beet,sunflower,rapeseed",
		NitrogenEffect:        "heavy consumer",
		SoilRequirements:      "chernozem, loam",
		RecommendedSuccessors: "winter cereals,legumes,barley",
		WaterRequirements:     "high",
		TemperatureMin:        8, TemperatureMax: 25, GrowingSeasonDays: 160,
		PHMin: 6.5, PHMax: 7.5, FertilizerN: 120, FertilizerP: 80, FertilizerK: 150,
		MarketPrice: 18000, YieldPotential: 45.0},

	{Crop: "grain corn", Family: "Grasses",
		GoodPredecessors:      "legumes,winter cereals,potato",
		BadPredecessors:       "corn,sunflower,beet",
		NitrogenEffect:        "heavy consumer",
		SoilRequirements:      "fertile warm soils",
		RecommendedSuccessors: "legumes,winter cereals,soybean",
		WaterRequirements:     "medium",
		TemperatureMin:        15, TemperatureMax: 35, GrowingSeasonDays: 130,
		PHMin: 6.0, PHMax: 7.5, FertilizerN: 150, FertilizerP: 70, FertilizerK: 90,
		MarketPrice: 12000, YieldPotential: 6.0},

	{Crop: "buckwheat", Family: "Buckwheats",
		GoodPredecessors:      "winter cereals,legumes,potato",
		BadPredecessors:       "buckwheat,sunflower,beet",
		NitrogenEffect:        "improves phosphorus",
		SoilRequirements:      "light warm soils",
		RecommendedSuccessors: "winter cereals,legumes,barley",
		WaterRequirements:     "medium",
		TemperatureMin:        15, TemperatureMax: 25, GrowingSeasonDays: 80,
		PHMin: 5.5, PHMax: 7.0, FertilizerN: 60, FertilizerP: 40, FertilizerK: 60,
		MarketPrice: 32000, YieldPotential: 1.5},
}

const (
	seedPriceDate   = "2024-01-01"
	seedPriceRegion = "Central district"
	seedPriceSource = "Ministry of Agriculture"
)

var seedPrices = map[string]float64{
	"winter wheat":    15000,
	"spring wheat":    14000,
	"spring barley":   12000,
	"oats":            11000,
	"peas":            25000,
	"soybean":         35000,
	"sunflower":       45000,
	"spring rapeseed": 28000,
	"flax":            30000,
	"potato":          20000,
	"sugar beet":      18000,
	"grain corn":      12000,
	"buckwheat":       32000,
	"alfalfa":         18000,
}

// Seed inserts reference data, skipping rows that already exist so restarts
// are idempotent.
func Seed(db *gorm.DB) error {
	for _, rule := range cropRules {
		r := rule
		if err := db.Where("crop = ?", r.Crop).FirstOrCreate(&r).Error; err != nil {
			return err
		}
	}
	for crop, price := range seedPrices {
		q := entities.MarketPrice{Crop: crop, Price: price, Date: seedPriceDate, Region: seedPriceRegion, Source: seedPriceSource}
		if err := db.Where("crop = ? AND date = ? AND region = ?", crop, seedPriceDate, seedPriceRegion).
			FirstOrCreate(&q).Error; err != nil {
			return err
		}
	}
	return nil
}
