package service

type PricePoint struct {
	Date          string  `json:"date"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
}

type ProfitEstimate struct {
	Crop                 string  `json:"crop"`
	AreaHa               float64 `json:"area_ha"`
	ExpectedYield        float64 `json:"expected_yield"`
	MarketPrice          float64 `json:"market_price"`
	RevenuePerHa         float64 `json:"revenue_per_ha"`
	CostsPerHa           float64 `json:"costs_per_ha"`
	ProfitPerHa          float64 `json:"profit_per_ha"`
	ProfitabilityPercent float64 `json:"profitability_percent"`
	TotalRevenue         float64 `json:"total_revenue"`
	TotalProfit          float64 `json:"total_profit"`
}

type MarketService interface {
	// CurrentPrices resolves a price per crop: stored quote first, then the
	// provider, then a flat fallback.
	CurrentPrices(crops []string) (map[string]float64, error)
	// Refresh pulls provider prices and appends them as quotes; reports how
	// many quotes were written.
	Refresh() (int, error)
	Trend(crop string, days int) ([]PricePoint, error)
	// Profitability estimates margins from crop-rule NPK needs and the
	// current market price.
	Profitability(crop string, areaHa, expectedYield float64) (*ProfitEstimate, error)
}
