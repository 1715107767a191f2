package repositoryImp

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
	require.NoError(t, db.AutoMigrate(&entities.Field{}, &entities.CropHistory{}))
	return db
}

func seedField(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	f := entities.Field{Name: name, AreaHa: 10}
	require.NoError(t, db.Create(&f).Error)
	return f.FieldID
}

func ptr(v float64) *float64 { return &v }

func TestAddDefaultsSeason(t *testing.T) {
	db := openTestDB(t)
	repo := New(db)
	fieldID := seedField(t, db, "plot")

	h := &entities.CropHistory{FieldID: fieldID, Year: 2023, Crop: "wheat"}
	require.NoError(t, repo.Add(h))
	assert.Equal(t, entities.SeasonSpring, h.Season)
}

func TestListForFieldOrdering(t *testing.T) {
	db := openTestDB(t)
	repo := New(db)
	fieldID := seedField(t, db, "plot")

	entries := []entities.CropHistory{
		{FieldID: fieldID, Year: 2022, Season: entities.SeasonAutumn, Crop: "rye"},
		{FieldID: fieldID, Year: 2023, Season: entities.SeasonSpring, Crop: "wheat"},
		{FieldID: fieldID, Year: 2023, Season: entities.SeasonAutumn, Crop: "barley"},
		{FieldID: fieldID, Year: 2021, Season: entities.SeasonSummer, Crop: "peas"},
	}
	for i := range entries {
		require.NoError(t, repo.Add(&entries[i]))
	}

	got, err := repo.ListForField(fieldID)
	require.NoError(t, err)
	require.Len(t, got, 4)

	// Newest year first, later season first within a year.
	crops := []string{got[0].Crop, got[1].Crop, got[2].Crop, got[3].Crop}
	assert.Equal(t, []string{"barley", "wheat", "rye", "peas"}, crops)
}

func TestRotationHistoryIsChronological(t *testing.T) {
	db := openTestDB(t)
	repo := New(db)
	fieldID := seedField(t, db, "plot")

	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldID, Year: 2023, Season: entities.SeasonSpring, Crop: "wheat"}))
	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldID, Year: 2021, Season: entities.SeasonAutumn, Crop: "rye"}))

	got, err := repo.RotationHistory(fieldID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rye", got[0].Crop)
	assert.Equal(t, "wheat", got[1].Crop)
}

func TestListAllJoinsFieldData(t *testing.T) {
	db := openTestDB(t)
	repo := New(db)
	fieldID := seedField(t, db, "river plot")

	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldID, Year: 2023, Crop: "wheat", YieldAmount: ptr(3.2)}))

	got, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "river plot", got[0].FieldName)
	assert.Equal(t, 10.0, got[0].FieldArea)
	require.NotNil(t, got[0].YieldAmount)
	assert.Equal(t, 3.2, *got[0].YieldAmount)
}

func TestListByYear(t *testing.T) {
	db := openTestDB(t)
	repo := New(db)
	fieldID := seedField(t, db, "plot")

	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldID, Year: 2022, Crop: "rye"}))
	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldID, Year: 2023, Crop: "wheat"}))

	got, err := repo.ListByYear(2023)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "wheat", got[0].Crop)
}

func TestDeleteReportsFieldID(t *testing.T) {
	db := openTestDB(t)
	repo := New(db)
	fieldID := seedField(t, db, "plot")

	h := entities.CropHistory{FieldID: fieldID, Year: 2023, Crop: "wheat"}
	require.NoError(t, repo.Add(&h))

	gotFieldID, err := repo.Delete(h.HistoryID)
	require.NoError(t, err)
	assert.Equal(t, fieldID, gotFieldID)

	_, err = repo.Delete(h.HistoryID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestYieldStats(t *testing.T) {
	db := openTestDB(t)
	repo := New(db)
	fieldA := seedField(t, db, "a")
	fieldB := seedField(t, db, "b")

	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldA, Year: 2021, Crop: "wheat", YieldAmount: ptr(3.0)}))
	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldA, Year: 2022, Crop: "wheat", YieldAmount: ptr(5.0)}))
	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldB, Year: 2022, Crop: "rye", YieldAmount: ptr(2.0)}))
	// No recorded yield: must not count.
	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldA, Year: 2023, Crop: "wheat"}))

	stats, err := repo.YieldStats(nil)
	require.NoError(t, err)
	byCrop := map[string]float64{}
	for _, s := range stats {
		byCrop[s.Crop] = s.AvgYield
	}
	assert.Equal(t, 4.0, byCrop["wheat"])
	assert.Equal(t, 2.0, byCrop["rye"])

	stats, err = repo.YieldStats(&fieldB)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "rye", stats[0].Crop)
	assert.Equal(t, 1, stats[0].Count)
}

func TestLastCrop(t *testing.T) {
	db := openTestDB(t)
	repo := New(db)
	fieldID := seedField(t, db, "plot")

	last, err := repo.LastCrop(fieldID)
	require.NoError(t, err)
	assert.Nil(t, last)

	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldID, Year: 2022, Season: entities.SeasonAutumn, Crop: "rye"}))
	require.NoError(t, repo.Add(&entities.CropHistory{FieldID: fieldID, Year: 2023, Season: entities.SeasonSpring, Crop: "wheat"}))

	last, err = repo.LastCrop(fieldID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "wheat", last.Crop)
}
