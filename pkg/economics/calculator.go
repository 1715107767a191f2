// Package economics is a flat per-hectare cost/income calculator over a
// static price table.
package economics

type CropEconomics struct {
	CostPerHa   float64 `json:"cost_per_ha"`
	IncomePerHa float64 `json:"income_per_ha"`
}

// Flat cost/income constants per hectare. Crops missing from the table fall
// back to defaultEconomics.
var priceTable = map[string]CropEconomics{
	"wheat":     {15000, 30000},
	"potato":    {50000, 80000},
	"sunflower": {25000, 45000},
	"peas":      {18000, 35000},
	"barley":    {14000, 28000},
	"corn":      {30000, 60000},
	"oats":      {13000, 25000},
	"soybean":   {22000, 45000},
	"rye":       {12000, 24000},
	"buckwheat": {16000, 32000},
	"flax":      {20000, 40000},
}

var defaultEconomics = CropEconomics{CostPerHa: 20000, IncomePerHa: 40000}

type Estimate struct {
	Crop          string  `json:"crop"`
	AreaHa        float64 `json:"area_ha"`
	CostPerHa     float64 `json:"cost_per_ha"`
	IncomePerHa   float64 `json:"income_per_ha"`
	TotalCost     float64 `json:"total_cost"`
	TotalIncome   float64 `json:"total_income"`
	Profit        float64 `json:"profit"`
	Profitability float64 `json:"profitability_percent"`
}

// EstimateProfit computes totals and the profitability percentage for growing
// crop on areaHa hectares. No currency rounding is applied; display
// formatting is the caller's concern.
func EstimateProfit(crop string, areaHa float64) Estimate {
	ce, ok := priceTable[crop]
	if !ok {
		ce = defaultEconomics
	}

	e := Estimate{
		Crop:        crop,
		AreaHa:      areaHa,
		CostPerHa:   ce.CostPerHa,
		IncomePerHa: ce.IncomePerHa,
		TotalCost:   ce.CostPerHa * areaHa,
		TotalIncome: ce.IncomePerHa * areaHa,
	}
	e.Profit = e.TotalIncome - e.TotalCost
	if e.TotalCost > 0 {
		e.Profitability = e.Profit / e.TotalCost * 100
	}
	return e
}

// Crops lists the crop names present in the price table.
func Crops() []string {
	out := make([]string, 0, len(priceTable))
	for crop := range priceTable {
		out = append(out, crop)
	}
	return out
}
