package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthCtrl struct {
	db      *gorm.DB
	started time.Time
}

func New(db *gorm.DB) *HealthCtrl {
	return &HealthCtrl{db: db, started: time.Now()}
}

// Health handles GET /health, pinging the database so load balancers see
// storage trouble, not just a live process.
func (h *HealthCtrl) Health(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	uptime := time.Since(h.started).Round(time.Second).String()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded", "uptime": uptime, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "uptime": uptime})
}
