package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"croplan/pkg/market/service"
	rulerepo "croplan/pkg/rules/repository"
)

type MarketCtrl struct {
	svc   service.MarketService
	rules rulerepo.RuleRepository
}

func New(svc service.MarketService, rules rulerepo.RuleRepository) *MarketCtrl {
	return &MarketCtrl{svc: svc, rules: rules}
}

func (h *MarketCtrl) Register(e *echo.Echo) {
	g := e.Group("/api/market")
	g.GET("/prices", h.prices)
	g.POST("/refresh", h.refresh)
	g.GET("/trend", h.trend)
	g.POST("/profitability", h.profitability)
}

func (h *MarketCtrl) prices(c echo.Context) error {
	var crops []string
	if raw := c.QueryParam("crops"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				crops = append(crops, s)
			}
		}
	} else {
		rules, err := h.rules.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		for _, r := range rules {
			crops = append(crops, r.Crop)
		}
	}

	prices, err := h.svc.CurrentPrices(crops)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"prices": prices})
}

func (h *MarketCtrl) refresh(c echo.Context) error {
	n, err := h.svc.Refresh()
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": n})
}

func (h *MarketCtrl) trend(c echo.Context) error {
	crop := c.QueryParam("crop")
	if crop == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "crop is required"})
	}
	days := 30
	if v := c.QueryParam("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	trend, err := h.svc.Trend(crop, days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"crop": crop, "trend": trend})
}

func (h *MarketCtrl) profitability(c echo.Context) error {
	var req struct {
		Crop          string  `json:"crop" form:"crop"`
		AreaHa        float64 `json:"area_ha" form:"area_ha"`
		ExpectedYield float64 `json:"expected_yield" form:"expected_yield"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request body"})
	}
	if req.Crop == "" || req.AreaHa <= 0 || req.ExpectedYield <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "crop, area_ha and expected_yield are required"})
	}

	est, err := h.svc.Profitability(req.Crop, req.AreaHa, req.ExpectedYield)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no rule data for crop"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, est)
}
