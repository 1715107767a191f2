package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"croplan/entities"
	fieldRepoImp "croplan/pkg/field/repositoryImp"
	histRepoImp "croplan/pkg/history/repositoryImp"
	"croplan/pkg/session"
)

func newCtrl(t *testing.T) (*FieldCtrl, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Field{}, &entities.CropHistory{}, &entities.ClimateSample{}))
	return New(fieldRepoImp.New(db), histRepoImp.New(db), session.NewManager(time.Hour)), db
}

func postJSON(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/fields", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateDerivesGeometry(t *testing.T) {
	ctrl, _ := newCtrl(t)
	c, rec := postJSON(t, `{"name":"Square","polygon_coords":"[[0,0],[0,2],[2,2],[2,0]]"}`)

	require.NoError(t, ctrl.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var f entities.Field
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	require.NotNil(t, f.CenterLat)
	assert.Equal(t, 1.0, *f.CenterLat)
	assert.Equal(t, 1.0, *f.CenterLng)
	assert.Equal(t, 44400.0, f.AreaHa)
	assert.Contains(t, f.BoundingBox, `"max_lat":2`)
	assert.Equal(t, entities.SoilLoam, f.SoilType)
}

func TestCreateKeepsExplicitArea(t *testing.T) {
	ctrl, _ := newCtrl(t)
	c, rec := postJSON(t, `{"name":"Manual","area_ha":7.5,"polygon_coords":"[[0,0],[0,2],[2,2],[2,0]]"}`)

	require.NoError(t, ctrl.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var f entities.Field
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Equal(t, 7.5, f.AreaHa)
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"area_ha":5}`},
		{"long name", `{"name":"` + strings.Repeat("x", 101) + `"}`},
		{"bad latitude", `{"name":"a","latitude":95}`},
		{"negative area", `{"name":"a","area_ha":-1}`},
		{"unknown soil", `{"name":"a","soil_type":"volcanic"}`},
		{"two-point polygon", `{"name":"a","polygon_coords":"[[0,0],[1,1]]"}`},
		{"coordinate out of range", `{"name":"a","polygon_coords":"[[0,0],[0,200],[1,1]]"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, _ := newCtrl(t)
			c, rec := postJSON(t, tc.body)
			require.NoError(t, ctrl.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestOverviewIncludesLastCrop(t *testing.T) {
	ctrl, db := newCtrl(t)
	f := entities.Field{Name: "plot", AreaHa: 5}
	require.NoError(t, db.Create(&f).Error)
	require.NoError(t, db.Create(&entities.CropHistory{FieldID: f.FieldID, Year: 2022, Season: entities.SeasonSpring, Crop: "rye"}).Error)
	require.NoError(t, db.Create(&entities.CropHistory{FieldID: f.FieldID, Year: 2023, Season: entities.SeasonSpring, Crop: "wheat"}).Error)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.Overview(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Fields []struct {
			Name         string `json:"name"`
			HistoryCount int    `json:"history_count"`
			LastCrop     string `json:"last_crop"`
			LastYear     int    `json:"last_year"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Fields, 1)
	assert.Equal(t, 2, out.Fields[0].HistoryCount)
	assert.Equal(t, "wheat", out.Fields[0].LastCrop)
	assert.Equal(t, 2023, out.Fields[0].LastYear)
}

func TestGetMissingField(t *testing.T) {
	ctrl, _ := newCtrl(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, ctrl.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeoJSONWrapsPolygon(t *testing.T) {
	ctrl, db := newCtrl(t)
	f := entities.Field{Name: "Square", PolygonCoords: "[[0,0],[0,2],[2,2],[2,0]]"}
	require.NoError(t, db.Create(&f).Error)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, ctrl.GeoJSON(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string        `json:"type"`
				Coordinates [][][]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	require.Len(t, fc.Features[0].Geometry.Coordinates, 1)
	assert.Len(t, fc.Features[0].Geometry.Coordinates[0], 4)
}
