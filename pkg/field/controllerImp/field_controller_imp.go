package controllerImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"croplan/entities"
	"croplan/pkg/field/repository"
	"croplan/pkg/geometry"
	histrepo "croplan/pkg/history/repository"
	"croplan/pkg/session"
)

const maxNameLength = 100

var allowedSoils = map[string]bool{
	entities.SoilLoam:      true,
	entities.SoilChernozem: true,
	entities.SoilSandy:     true,
	entities.SoilClay:      true,
	entities.SoilPeat:      true,
	entities.SoilUnknown:   true,
}

type FieldCtrl struct {
	fields   repository.FieldRepository
	history  histrepo.HistoryRepository
	sessions *session.Manager
}

func New(fields repository.FieldRepository, history histrepo.HistoryRepository, sessions *session.Manager) *FieldCtrl {
	return &FieldCtrl{fields: fields, history: history, sessions: sessions}
}

type fieldRequest struct {
	Name          string   `json:"name" form:"name"`
	AreaHa        *float64 `json:"area_ha" form:"area_ha"`
	Latitude      *float64 `json:"latitude" form:"latitude"`
	Longitude     *float64 `json:"longitude" form:"longitude"`
	PolygonCoords string   `json:"polygon_coords" form:"polygon_coords"`
	SoilType      string   `json:"soil_type" form:"soil_type"`
}

// apply validates the request and writes it onto f, deriving centroid,
// bounding box and area from the polygon when one is present.
func (r *fieldRequest) apply(f *entities.Field) error {
	if r.Name == "" {
		return errors.New("field name is required")
	}
	if len(r.Name) > maxNameLength {
		return fmt.Errorf("field name is longer than %d characters", maxNameLength)
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		return errors.New("latitude must be between -90 and 90")
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		return errors.New("longitude must be between -180 and 180")
	}
	if r.AreaHa != nil && *r.AreaHa <= 0 {
		return errors.New("area must be positive")
	}
	soil := r.SoilType
	if soil == "" {
		soil = entities.SoilLoam
	}
	if !allowedSoils[soil] {
		return fmt.Errorf("unknown soil type %q", soil)
	}

	f.Name = r.Name
	f.Latitude = r.Latitude
	f.Longitude = r.Longitude
	f.SoilType = soil
	if r.AreaHa != nil {
		f.AreaHa = *r.AreaHa
	}

	if r.PolygonCoords == "" {
		f.PolygonCoords = ""
		f.CenterLat, f.CenterLng = nil, nil
		f.BoundingBox = ""
		return nil
	}

	poly, err := geometry.ParsePolygon(r.PolygonCoords)
	if err != nil {
		return err
	}
	center, bounds, err := geometry.DeriveCentroidAndBounds(poly)
	if err != nil {
		return err
	}
	bboxJSON, err := json.Marshal(bounds)
	if err != nil {
		return err
	}
	f.PolygonCoords = r.PolygonCoords
	f.CenterLat, f.CenterLng = &center.Lat, &center.Lng
	f.BoundingBox = string(bboxJSON)
	if r.AreaHa == nil {
		f.AreaHa = geometry.EstimateAreaHectares(poly)
	}
	return nil
}

// Create handles POST /api/fields.
func (h *FieldCtrl) Create(c echo.Context) error {
	var req fieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request body"})
	}
	var f entities.Field
	if err := req.apply(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.fields.Create(&f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.sessions.SetMessage(c, fmt.Sprintf("Field %q added", f.Name))
	return c.JSON(http.StatusCreated, f)
}

// List handles GET /api/fields.
func (h *FieldCtrl) List(c echo.Context) error {
	fields, err := h.fields.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"fields": fields, "count": len(fields)})
}

// Overview handles GET /api/fields/overview: each field with its planting
// count and latest crop, for the dashboard list.
func (h *FieldCtrl) Overview(c echo.Context) error {
	fields, err := h.fields.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	type fieldOverview struct {
		entities.Field
		HistoryCount int    `json:"history_count"`
		LastCrop     string `json:"last_crop,omitempty"`
		LastYear     int    `json:"last_year,omitempty"`
	}
	out := make([]fieldOverview, 0, len(fields))
	for _, f := range fields {
		ov := fieldOverview{Field: f}
		entries, err := h.history.ListForField(f.FieldID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		ov.HistoryCount = len(entries)
		if len(entries) > 0 {
			ov.LastCrop = entries[0].Crop
			ov.LastYear = entries[0].Year
		}
		out = append(out, ov)
	}
	return c.JSON(http.StatusOK, echo.Map{"fields": out, "count": len(out)})
}

// Get handles GET /api/fields/:id.
func (h *FieldCtrl) Get(c echo.Context) error {
	f, ok := h.lookup(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, f)
}

// Update handles PUT /api/fields/:id. Derived geometry is recomputed from the
// submitted polygon, or cleared when the polygon was removed.
func (h *FieldCtrl) Update(c echo.Context) error {
	f, ok := h.lookup(c)
	if !ok {
		return nil
	}
	var req fieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request body"})
	}
	if err := req.apply(f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.fields.Update(f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.sessions.SetMessage(c, fmt.Sprintf("Field %q updated", f.Name))
	return c.JSON(http.StatusOK, f)
}

// Delete handles DELETE /api/fields/:id. History and climate samples go with
// the field.
func (h *FieldCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid field id"})
	}
	if err := h.fields.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "field not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.sessions.SetMessage(c, "Field deleted")
	return c.JSON(http.StatusOK, echo.Map{"deleted": id})
}

// DeleteRedirect handles GET /fields/delete/:id for plain anchor links; it
// flashes the outcome and sends the browser back to the field list.
func (h *FieldCtrl) DeleteRedirect(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.sessions.SetError(c, "Invalid field id")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := h.fields.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.sessions.SetError(c, "Field not found")
		} else {
			h.sessions.SetError(c, "Could not delete field")
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
	h.sessions.SetMessage(c, "Field deleted")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Nearby handles GET /api/fields/nearby?lat=&lng=&radius_km=.
func (h *FieldCtrl) Nearby(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lat and lng are required"})
	}
	radius := 10.0
	if v := c.QueryParam("radius_km"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			radius = r
		}
	}
	fields, err := h.fields.Nearby(lat, lng, radius)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"fields": fields, "count": len(fields)})
}

// GeoJSON handles GET /api/fields/:id/geojson, rendering the field polygon as
// a FeatureCollection for map widgets.
func (h *FieldCtrl) GeoJSON(c echo.Context) error {
	f, ok := h.lookup(c)
	if !ok {
		return nil
	}
	features := []echo.Map{}
	if f.PolygonCoords != "" {
		var pairs [][]float64
		if err := json.Unmarshal([]byte(f.PolygonCoords), &pairs); err == nil {
			features = append(features, echo.Map{
				"type": "Feature",
				"geometry": echo.Map{
					"type":        "Polygon",
					"coordinates": [][][]float64{pairs},
				},
				"properties": echo.Map{
					"id":         f.FieldID,
					"name":       f.Name,
					"area":       f.AreaHa,
					"soil_type":  f.SoilType,
					"created_at": f.CreatedAt,
				},
			})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"type":     "FeatureCollection",
		"features": features,
	})
}

func (h *FieldCtrl) lookup(c echo.Context) (*entities.Field, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid field id"})
		return nil, false
	}
	f, err := h.fields.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "field not found"})
		return nil, false
	}
	if err != nil {
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		return nil, false
	}
	return f, true
}
