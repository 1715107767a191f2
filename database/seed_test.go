package database

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"croplan/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.CropRule{}, &entities.MarketPrice{}))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))

	var rules, prices int64
	require.NoError(t, db.Model(&entities.CropRule{}).Count(&rules).Error)
	require.NoError(t, db.Model(&entities.MarketPrice{}).Count(&prices).Error)
	assert.EqualValues(t, len(cropRules), rules)
	assert.EqualValues(t, len(seedPrices), prices)

	// Seeding again must not duplicate reference data.
	require.NoError(t, Seed(db))
	var rulesAgain int64
	require.NoError(t, db.Model(&entities.CropRule{}).Count(&rulesAgain).Error)
	assert.Equal(t, rules, rulesAgain)
}

func TestSeedRuleContent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))

	var rule entities.CropRule
	require.NoError(t, db.Where("crop = ?", "winter wheat").First(&rule).Error)
	assert.Equal(t, "Grasses", rule.Family)
	assert.Contains(t, rule.GoodPredecessors, "peas")
	assert.Equal(t, 4.5, rule.YieldPotential)
}
