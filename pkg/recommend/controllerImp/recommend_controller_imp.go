package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"croplan/pkg/recommend/service"
	rulerepo "croplan/pkg/rules/repository"
)

type RecommendCtrl struct {
	svc   service.RecommendService
	rules rulerepo.RuleRepository
}

func New(svc service.RecommendService, rules rulerepo.RuleRepository) *RecommendCtrl {
	return &RecommendCtrl{svc: svc, rules: rules}
}

// Recommend handles POST /api/recommendations.
func (h *RecommendCtrl) Recommend(c echo.Context) error {
	var req struct {
		FieldID    uint   `json:"field_id" form:"field_id"`
		TargetCrop string `json:"target_crop" form:"target_crop"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request body"})
	}
	if req.FieldID == 0 || req.TargetCrop == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "field_id and target_crop are required"})
	}

	rec, err := h.svc.Recommend(req.FieldID, req.TargetCrop)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "field not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// Successors handles GET /api/fields/:id/successors.
func (h *RecommendCtrl) Successors(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid field id"})
	}
	successors, err := h.svc.Successors(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"successors": successors})
}

// Rules handles GET /api/crop-rules.
func (h *RecommendCtrl) Rules(c echo.Context) error {
	rules, err := h.rules.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rules)
}

// Rule handles GET /api/crop-rules/:crop.
func (h *RecommendCtrl) Rule(c echo.Context) error {
	rule, err := h.rules.FindByCrop(c.Param("crop"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown crop"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rule)
}
