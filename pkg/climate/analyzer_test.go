package climate

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"croplan/entities"
	climateRepoImp "croplan/pkg/climate/repositoryImp"
	"croplan/pkg/weather"
)

func newAnalyzer(t *testing.T) (*Analyzer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.ClimateSample{}))
	return NewAnalyzer(climateRepoImp.New(db), weather.NewMock()), db
}

func TestAnalyzeFieldRecordsSample(t *testing.T) {
	a, db := newAnalyzer(t)
	lat, lng := 55.0, 37.0
	f := &entities.Field{FieldID: 7, Latitude: &lat, Longitude: &lng}

	report, err := a.AnalyzeField(f)
	require.NoError(t, err)
	require.NotNil(t, report.Current)
	assert.Equal(t, 15.5, report.Current.Temperature)

	// Mock current temperature (15.5) sits at or above the 15 degree cutoff.
	assert.Equal(t, ZoneSouth, report.ClimateZone)

	require.NotNil(t, report.ForecastSummary)
	assert.Equal(t, 7, report.ForecastSummary.ForecastDays)
	assert.Greater(t, report.ForecastSummary.TotalPrecipitation, 0.0)

	var samples []entities.ClimateSample
	require.NoError(t, db.Where("field_id = ?", f.FieldID).Find(&samples).Error)
	require.Len(t, samples, 1)
	assert.Equal(t, 15.5, samples[0].TemperatureAvg)
}

func TestClassifyZone(t *testing.T) {
	assert.Equal(t, ZoneNorth, classifyZone(&weather.Observation{Temperature: 2}))
	assert.Equal(t, ZoneTemperate, classifyZone(&weather.Observation{Temperature: 5}))
	assert.Equal(t, ZoneTemperate, classifyZone(&weather.Observation{Temperature: 10}))
	assert.Equal(t, ZoneSouth, classifyZone(&weather.Observation{Temperature: 15}))
	assert.Equal(t, ZoneSouth, classifyZone(&weather.Observation{Temperature: 22}))
}

func TestGrowingSeasonByZone(t *testing.T) {
	assert.Equal(t, 120, growingSeason(ZoneNorth).Days)
	assert.Equal(t, 150, growingSeason(ZoneTemperate).Days)
	assert.Equal(t, 150, growingSeason("").Days)
	assert.Equal(t, 180, growingSeason(ZoneSouth).Days)
}
