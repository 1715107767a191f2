package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"croplan/pkg/session"
)

type FlashCtrl struct {
	sessions *session.Manager
}

func New(sessions *session.Manager) *FlashCtrl {
	return &FlashCtrl{sessions: sessions}
}

func (h *FlashCtrl) Register(e *echo.Echo) {
	e.GET("/api/flash", h.flash)
}

// flash drains the caller's pending flash messages.
func (h *FlashCtrl) flash(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": h.sessions.PopMessage(c),
		"error":   h.sessions.PopError(c),
	})
}
