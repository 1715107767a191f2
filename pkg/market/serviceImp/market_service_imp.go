package serviceImp

import (
	"log"
	"math"
	"time"

	"croplan/entities"
	"croplan/pkg/market"
	"croplan/pkg/market/repository"
	"croplan/pkg/market/service"
	rulerepo "croplan/pkg/rules/repository"
)

// Per-kg nutrient prices used for the cost side of the estimate.
const (
	nitrogenPricePerKg   = 50
	phosphorusPricePerKg = 40
	potassiumPricePerKg  = 30

	// seed, tillage, harvest — everything that is not fertilizer
	otherCostsPerHa = 15000

	fallbackPrice = 10000
)

type marketSvc struct {
	quotes   repository.MarketRepository
	rules    rulerepo.RuleRepository
	provider market.Provider
	region   string
}

func New(quotes repository.MarketRepository, rules rulerepo.RuleRepository, provider market.Provider, region string) service.MarketService {
	return &marketSvc{quotes: quotes, rules: rules, provider: provider, region: region}
}

func (s *marketSvc) CurrentPrices(crops []string) (map[string]float64, error) {
	out := make(map[string]float64, len(crops))
	var providerPrices map[string]float64

	for _, crop := range crops {
		q, err := s.quotes.Latest(crop, s.region)
		if err != nil {
			return nil, err
		}
		if q != nil {
			out[crop] = q.Price
			continue
		}
		if providerPrices == nil {
			providerPrices, err = s.provider.CurrentPrices(s.region)
			if err != nil {
				log.Printf("market provider unavailable: %v", err)
				providerPrices = map[string]float64{}
			}
		}
		if p, ok := providerPrices[crop]; ok {
			out[crop] = p
		} else {
			out[crop] = fallbackPrice
		}
	}
	return out, nil
}

func (s *marketSvc) Refresh() (int, error) {
	prices, err := s.provider.CurrentPrices(s.region)
	if err != nil {
		return 0, err
	}
	today := time.Now().Format("2006-01-02")
	n := 0
	for crop, price := range prices {
		q := &entities.MarketPrice{Crop: crop, Price: price, Date: today, Region: s.region, Source: s.provider.Source()}
		if err := s.quotes.Insert(q); err != nil {
			return n, err
		}
		n++
	}
	log.Printf("market prices refreshed for %d crops", n)
	return n, nil
}

// Trend synthesizes a daily series around the current price; there is no
// historical quote feed to draw from.
func (s *marketSvc) Trend(crop string, days int) ([]service.PricePoint, error) {
	prices, err := s.CurrentPrices([]string{crop})
	if err != nil {
		return nil, err
	}
	base := prices[crop]

	out := make([]service.PricePoint, 0, days)
	for i := days; i >= 1; i-- {
		fluctuation := float64(i%7-3) * 0.01
		out = append(out, service.PricePoint{
			Date:          time.Now().AddDate(0, 0, -i).Format("2006-01-02"),
			Price:         round2(base * (1 + fluctuation)),
			ChangePercent: round1(fluctuation * 100),
		})
	}
	return out, nil
}

func (s *marketSvc) Profitability(crop string, areaHa, expectedYield float64) (*service.ProfitEstimate, error) {
	rule, err := s.rules.FindByCrop(crop)
	if err != nil {
		return nil, err
	}
	prices, err := s.CurrentPrices([]string{crop})
	if err != nil {
		return nil, err
	}
	price := prices[crop]

	fertilizerCost := rule.FertilizerN*nitrogenPricePerKg +
		rule.FertilizerP*phosphorusPricePerKg +
		rule.FertilizerK*potassiumPricePerKg
	costsPerHa := fertilizerCost + otherCostsPerHa

	revenuePerHa := expectedYield * price
	profitPerHa := revenuePerHa - costsPerHa
	profitability := 0.0
	if costsPerHa > 0 {
		profitability = profitPerHa / costsPerHa * 100
	}

	return &service.ProfitEstimate{
		Crop:                 crop,
		AreaHa:               areaHa,
		ExpectedYield:        expectedYield,
		MarketPrice:          price,
		RevenuePerHa:         round2(revenuePerHa),
		CostsPerHa:           round2(costsPerHa),
		ProfitPerHa:          round2(profitPerHa),
		ProfitabilityPercent: round1(profitability),
		TotalRevenue:         round2(revenuePerHa * areaHa),
		TotalProfit:          round2(profitPerHa * areaHa),
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
