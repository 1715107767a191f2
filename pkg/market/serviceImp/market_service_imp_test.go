package serviceImp

import (
	"errors"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"croplan/entities"
	marketRepoImp "croplan/pkg/market/repositoryImp"
	ruleRepoImp "croplan/pkg/rules/repositoryImp"
)

const testRegion = "Central district"

type stubProvider struct {
	prices map[string]float64
	err    error
}

func (p *stubProvider) Source() string { return "stub" }

func (p *stubProvider) CurrentPrices(region string) (map[string]float64, error) {
	return p.prices, p.err
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.MarketPrice{}, &entities.CropRule{}))
	return db
}

func TestCurrentPricesPrefersStoredQuote(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&entities.MarketPrice{
		Crop: "winter wheat", Price: 14000, Date: "2024-01-01", Region: testRegion, Source: "seed",
	}).Error)

	svc := New(marketRepoImp.New(db), ruleRepoImp.New(db),
		&stubProvider{prices: map[string]float64{"winter wheat": 99999}}, testRegion)

	prices, err := svc.CurrentPrices([]string{"winter wheat"})
	require.NoError(t, err)
	assert.Equal(t, 14000.0, prices["winter wheat"])
}

func TestCurrentPricesFallsBackToProviderThenDefault(t *testing.T) {
	db := openTestDB(t)
	svc := New(marketRepoImp.New(db), ruleRepoImp.New(db),
		&stubProvider{prices: map[string]float64{"oats": 11500}}, testRegion)

	prices, err := svc.CurrentPrices([]string{"oats", "quinoa"})
	require.NoError(t, err)
	assert.Equal(t, 11500.0, prices["oats"])
	assert.Equal(t, float64(fallbackPrice), prices["quinoa"])
}

func TestRefreshStoresDatedQuotes(t *testing.T) {
	db := openTestDB(t)
	repo := marketRepoImp.New(db)
	svc := New(repo, ruleRepoImp.New(db),
		&stubProvider{prices: map[string]float64{"oats": 11500, "peas": 25500}}, testRegion)

	n, err := svc.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	q, err := repo.Latest("oats", testRegion)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 11500.0, q.Price)
	assert.Equal(t, time.Now().Format("2006-01-02"), q.Date)
	assert.Equal(t, "stub", q.Source)
}

func TestRefreshProviderDown(t *testing.T) {
	db := openTestDB(t)
	svc := New(marketRepoImp.New(db), ruleRepoImp.New(db),
		&stubProvider{err: errors.New("unreachable")}, testRegion)

	_, err := svc.Refresh()
	assert.Error(t, err)
}

func TestTrendLengthAndAnchor(t *testing.T) {
	db := openTestDB(t)
	svc := New(marketRepoImp.New(db), ruleRepoImp.New(db),
		&stubProvider{prices: map[string]float64{"oats": 10000}}, testRegion)

	trend, err := svc.Trend("oats", 14)
	require.NoError(t, err)
	require.Len(t, trend, 14)
	for _, p := range trend {
		// Fluctuation stays within a few percent of the anchor price.
		assert.InDelta(t, 10000, p.Price, 10000*0.04)
	}
}

func TestProfitability(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&entities.CropRule{
		Crop: "oats", FertilizerN: 60, FertilizerP: 40, FertilizerK: 40, YieldPotential: 2.5,
	}).Error)
	require.NoError(t, db.Create(&entities.MarketPrice{
		Crop: "oats", Price: 11500, Date: "2024-01-01", Region: testRegion, Source: "seed",
	}).Error)

	svc := New(marketRepoImp.New(db), ruleRepoImp.New(db), &stubProvider{}, testRegion)

	est, err := svc.Profitability("oats", 10, 2.5)
	require.NoError(t, err)

	// costs: 60*50 + 40*40 + 40*30 + 15000 = 20800; revenue: 2.5*11500 = 28750
	assert.Equal(t, 20800.0, est.CostsPerHa)
	assert.Equal(t, 28750.0, est.RevenuePerHa)
	assert.Equal(t, 7950.0, est.ProfitPerHa)
	assert.Equal(t, 79500.0, est.TotalProfit)
	assert.InDelta(t, 38.2, est.ProfitabilityPercent, 0.1)
}

func TestProfitabilityUnknownCrop(t *testing.T) {
	db := openTestDB(t)
	svc := New(marketRepoImp.New(db), ruleRepoImp.New(db), &stubProvider{}, testRegion)

	_, err := svc.Profitability("quinoa", 10, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
