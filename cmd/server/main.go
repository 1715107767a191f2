package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"croplan/config"
	"croplan/database"
	"croplan/router"

	// Field
	fieldCtrlImp "croplan/pkg/field/controllerImp"
	fieldRepoImp "croplan/pkg/field/repositoryImp"

	// History
	histCtrlImp "croplan/pkg/history/controllerImp"
	histRepoImp "croplan/pkg/history/repositoryImp"

	// Rules + recommendations
	recCtrlImp "croplan/pkg/recommend/controllerImp"
	recSvcImp "croplan/pkg/recommend/serviceImp"
	ruleRepoImp "croplan/pkg/rules/repositoryImp"

	// Climate/weather
	"croplan/pkg/climate"
	climateCtrlImp "croplan/pkg/climate/controllerImp"
	climateRepoImp "croplan/pkg/climate/repositoryImp"
	"croplan/pkg/weather"

	// Market
	"croplan/pkg/market"
	marketCtrlImp "croplan/pkg/market/controllerImp"
	marketRepoImp "croplan/pkg/market/repositoryImp"
	marketSvcImp "croplan/pkg/market/serviceImp"

	// Calculator
	calcCtrlImp "croplan/pkg/calculator/controllerImp"

	// Export
	exportCtrlImp "croplan/pkg/export/controllerImp"

	// Sessions
	"croplan/pkg/session"
	sessionCtrlImp "croplan/pkg/session/controllerImp"

	// Health
	healthCtrlImp "croplan/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + seed
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Sessions (flash messages)
	sessions := session.NewManager(cfg.SessionTTL)
	sessions.StartJanitor(time.Hour, make(chan struct{}))

	// 4) External providers (mock fallback)
	var weatherProvider weather.Provider
	if cfg.OpenWeatherAPIKey != "" {
		weatherProvider = weather.NewOpenWeather(cfg.OpenWeatherAPIKey)
	} else {
		weatherProvider = weather.NewMock()
	}
	var marketProvider market.Provider
	if cfg.MarketPriceURL != "" {
		marketProvider = market.NewHTMLProvider(cfg.MarketPriceURL)
	} else {
		marketProvider = market.NewMock()
	}

	// 5) Repos
	fRepo := fieldRepoImp.New(db)
	hRepo := histRepoImp.New(db)
	rRepo := ruleRepoImp.New(db)
	cRepo := climateRepoImp.New(db)
	mRepo := marketRepoImp.New(db)

	// 6) Services
	analyzer := climate.NewAnalyzer(cRepo, weatherProvider)
	recSvc := recSvcImp.New(fRepo, hRepo, rRepo, cRepo)
	mktSvc := marketSvcImp.New(mRepo, rRepo, marketProvider, cfg.MarketRegion)

	// 7) Controllers
	fCtrl := fieldCtrlImp.New(fRepo, hRepo, sessions)
	hCtrl := histCtrlImp.New(hRepo, fRepo, sessions)
	recCtrl := recCtrlImp.New(recSvc, rRepo)
	calcCtrl := calcCtrlImp.New()
	clCtrl := climateCtrlImp.New(fRepo, analyzer)
	healthCtrl := healthCtrlImp.New(db)

	// 8) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	marketCtrlImp.New(mktSvc, rRepo).Register(e)
	exportCtrlImp.New(hRepo).Register(e)
	sessionCtrlImp.New(sessions).Register(e)

	// Static frontend
	e.Static("/static", cfg.StaticDir)
	index := filepath.Join(cfg.StaticDir, "index.html")
	e.File("/", index)
	if _, err := os.Stat(index); err != nil {
		log.Printf("WARN: %s not found: %v", index, err)
	}

	// 9) Router
	r := router.New(e, sessions, fCtrl, hCtrl, recCtrl, calcCtrl, clCtrl, healthCtrl)

	// 10) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
