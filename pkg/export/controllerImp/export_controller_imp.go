package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"croplan/pkg/export"
	"croplan/pkg/history/repository"
)

type ExportCtrl struct {
	history repository.HistoryRepository
}

func New(history repository.HistoryRepository) *ExportCtrl {
	return &ExportCtrl{history: history}
}

func (h *ExportCtrl) Register(e *echo.Echo) {
	e.GET("/api/export/history.xlsx", h.historyXLSX)
}

func (h *ExportCtrl) historyXLSX(c echo.Context) error {
	entries, err := h.history.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	stats, err := h.history.YieldStats(nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	wb, err := export.HistoryWorkbook(entries, stats)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	filename := "crop-history-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return wb.Write(c.Response())
}
