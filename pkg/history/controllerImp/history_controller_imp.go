package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"croplan/entities"
	fieldrepo "croplan/pkg/field/repository"
	"croplan/pkg/history/repository"
	"croplan/pkg/session"
)

var validSeasons = map[string]bool{
	entities.SeasonSpring: true,
	entities.SeasonSummer: true,
	entities.SeasonAutumn: true,
	entities.SeasonOther:  true,
}

type HistoryCtrl struct {
	history  repository.HistoryRepository
	fields   fieldrepo.FieldRepository
	sessions *session.Manager
}

func New(history repository.HistoryRepository, fields fieldrepo.FieldRepository, sessions *session.Manager) *HistoryCtrl {
	return &HistoryCtrl{history: history, fields: fields, sessions: sessions}
}

type historyRequest struct {
	FieldID     uint     `json:"field_id" form:"field_id"`
	Year        int      `json:"year" form:"year"`
	Season      string   `json:"season" form:"season"`
	Crop        string   `json:"crop" form:"crop"`
	YieldAmount *float64 `json:"yield_amount" form:"yield_amount"`
	Notes       string   `json:"notes" form:"notes"`
}

func (r *historyRequest) validate() error {
	if r.Crop == "" {
		return errors.New("crop is required")
	}
	maxYear := time.Now().Year() + 1
	if r.Year < 1900 || r.Year > maxYear {
		return fmt.Errorf("year must be between 1900 and %d", maxYear)
	}
	if r.Season != "" && !validSeasons[r.Season] {
		return fmt.Errorf("unknown season %q", r.Season)
	}
	if r.YieldAmount != nil && *r.YieldAmount < 0 {
		return errors.New("yield must not be negative")
	}
	return nil
}

// Add handles POST /api/history and POST /api/fields/:id/history. The path
// param, when present, overrides the body's field_id.
func (h *HistoryCtrl) Add(c echo.Context) error {
	var req historyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request body"})
	}
	if p := c.Param("id"); p != "" {
		id, err := strconv.Atoi(p)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid field id"})
		}
		req.FieldID = uint(id)
	}
	if req.FieldID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "field_id is required"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if _, err := h.fields.FindByID(req.FieldID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "field not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	entry := entities.CropHistory{
		FieldID:     req.FieldID,
		Year:        req.Year,
		Season:      req.Season,
		Crop:        req.Crop,
		YieldAmount: req.YieldAmount,
		Notes:       req.Notes,
	}
	if err := h.history.Add(&entry); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.sessions.SetMessage(c, fmt.Sprintf("Planting of %s recorded", entry.Crop))
	return c.JSON(http.StatusCreated, entry)
}

// List handles GET /api/history with an optional ?year= filter.
func (h *HistoryCtrl) List(c echo.Context) error {
	if v := c.QueryParam("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
		}
		entries, err := h.history.ListByYear(year)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"history": entries, "count": len(entries)})
	}
	entries, err := h.history.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"history": entries, "count": len(entries)})
}

// ListForField handles GET /api/fields/:id/history.
func (h *HistoryCtrl) ListForField(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid field id"})
	}
	if _, err := h.fields.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "field not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	entries, err := h.history.ListForField(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"history": entries, "count": len(entries)})
}

// Get handles GET /api/history/:id.
func (h *HistoryCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid history id"})
	}
	entry, err := h.history.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "history entry not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entry)
}

// Edit handles PUT /api/history/:id. Entries are immutable records of past
// seasons; the handler only confirms the entry exists so stale bookmarks get
// a clean answer.
func (h *HistoryCtrl) Edit(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid history id"})
	}
	entry, err := h.history.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "history entry not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.sessions.SetMessage(c, "History entries cannot be edited; delete and re-add instead")
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /api/history/:id and reports the owning field.
func (h *HistoryCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid history id"})
	}
	fieldID, err := h.history.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "history entry not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.sessions.SetMessage(c, "History entry deleted")
	return c.JSON(http.StatusOK, echo.Map{"deleted": id, "field_id": fieldID})
}

// DeleteRedirect handles GET /history/delete/:id for plain anchor links,
// bouncing back to the owning field's page.
func (h *HistoryCtrl) DeleteRedirect(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.sessions.SetError(c, "Invalid history id")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	fieldID, err := h.history.Delete(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.sessions.SetError(c, "History entry not found")
		} else {
			h.sessions.SetError(c, "Could not delete history entry")
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
	h.sessions.SetMessage(c, "History entry deleted")
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/?field=%d", fieldID))
}

// YieldStats handles GET /api/yield-stats with an optional ?field_id= filter.
// The parallel arrays feed the frontend chart directly.
func (h *HistoryCtrl) YieldStats(c echo.Context) error {
	var fieldID *uint
	if v := c.QueryParam("field_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid field id"})
		}
		u := uint(id)
		fieldID = &u
	}
	stats, err := h.history.YieldStats(fieldID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	crops := make([]string, 0, len(stats))
	yields := make([]float64, 0, len(stats))
	counts := make([]int, 0, len(stats))
	for _, s := range stats {
		crops = append(crops, s.Crop)
		yields = append(yields, s.AvgYield)
		counts = append(counts, s.Count)
	}
	return c.JSON(http.StatusOK, echo.Map{"crops": crops, "yields": yields, "counts": counts})
}

// Rotation handles GET /api/fields/:id/rotation, the chronological planting
// sequence used by the rotation timeline view.
func (h *HistoryCtrl) Rotation(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid field id"})
	}
	if _, err := h.fields.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "field not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	entries, err := h.history.RotationHistory(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"rotation": entries, "count": len(entries)})
}
