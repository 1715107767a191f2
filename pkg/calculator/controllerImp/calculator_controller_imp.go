package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"croplan/pkg/economics"
)

type CalculatorCtrl struct{}

func New() *CalculatorCtrl {
	return &CalculatorCtrl{}
}

// Estimate handles POST /api/calculator with a flat price/cost model; crops
// outside the table fall back to generic numbers.
func (h *CalculatorCtrl) Estimate(c echo.Context) error {
	var req struct {
		Crop   string  `json:"crop" form:"crop"`
		AreaHa float64 `json:"area_ha" form:"area_ha"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request body"})
	}
	if req.Crop == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "crop is required"})
	}
	if req.AreaHa < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "area must not be negative"})
	}
	return c.JSON(http.StatusOK, economics.EstimateProfit(req.Crop, req.AreaHa))
}

// Crops handles GET /api/calculator/crops, listing crops with table-backed
// economics.
func (h *CalculatorCtrl) Crops(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"crops": economics.Crops()})
}
