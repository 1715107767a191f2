package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"croplan/pkg/climate"
	fieldrepo "croplan/pkg/field/repository"
)

type ClimateCtrl struct {
	fields   fieldrepo.FieldRepository
	analyzer *climate.Analyzer
}

func New(fields fieldrepo.FieldRepository, analyzer *climate.Analyzer) *ClimateCtrl {
	return &ClimateCtrl{fields: fields, analyzer: analyzer}
}

// Weather handles GET /api/fields/:id/weather.
func (h *ClimateCtrl) Weather(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid field id"})
	}
	f, err := h.fields.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "field not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	report, err := h.analyzer.AnalyzeField(f)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}
