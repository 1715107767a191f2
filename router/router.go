package router

import (
	"github.com/labstack/echo/v4"

	"croplan/pkg/session"
)

func New(
	e *echo.Echo,
	sessions *session.Manager,
	fieldCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Overview(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		DeleteRedirect(echo.Context) error
		Nearby(echo.Context) error
		GeoJSON(echo.Context) error
	},
	histCtrl interface {
		Add(echo.Context) error
		List(echo.Context) error
		ListForField(echo.Context) error
		Get(echo.Context) error
		Edit(echo.Context) error
		Delete(echo.Context) error
		DeleteRedirect(echo.Context) error
		YieldStats(echo.Context) error
		Rotation(echo.Context) error
	},
	recCtrl interface {
		Recommend(echo.Context) error
		Successors(echo.Context) error
		Rules(echo.Context) error
		Rule(echo.Context) error
	},
	calcCtrl interface {
		Estimate(echo.Context) error
		Crops(echo.Context) error
	},
	climateCtrl interface{ Weather(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(sessions.Middleware())
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")

	api.POST("/fields", fieldCtrl.Create)
	api.GET("/fields", fieldCtrl.List)
	api.GET("/fields/overview", fieldCtrl.Overview)
	api.GET("/fields/nearby", fieldCtrl.Nearby)
	api.GET("/fields/:id", fieldCtrl.Get)
	api.PUT("/fields/:id", fieldCtrl.Update)
	api.DELETE("/fields/:id", fieldCtrl.Delete)
	api.GET("/fields/:id/geojson", fieldCtrl.GeoJSON)

	api.POST("/fields/:id/history", histCtrl.Add)
	api.GET("/fields/:id/history", histCtrl.ListForField)
	api.GET("/fields/:id/rotation", histCtrl.Rotation)
	api.GET("/fields/:id/weather", climateCtrl.Weather)
	api.GET("/fields/:id/successors", recCtrl.Successors)

	api.POST("/history", histCtrl.Add)
	api.GET("/history", histCtrl.List)
	api.GET("/history/:id", histCtrl.Get)
	api.PUT("/history/:id", histCtrl.Edit)
	api.DELETE("/history/:id", histCtrl.Delete)
	api.GET("/yield-stats", histCtrl.YieldStats)

	api.POST("/recommendations", recCtrl.Recommend)
	api.GET("/crop-rules", recCtrl.Rules)
	api.GET("/crop-rules/:crop", recCtrl.Rule)

	api.POST("/calculator", calcCtrl.Estimate)
	api.GET("/calculator/crops", calcCtrl.Crops)

	// Plain anchor-tag deletes used by the list pages.
	e.GET("/fields/delete/:id", fieldCtrl.DeleteRedirect)
	e.GET("/history/delete/:id", histCtrl.DeleteRedirect)

	return e
}
