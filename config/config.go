package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port              string
	DBPath            string
	StaticDir         string
	OpenWeatherAPIKey string
	MarketPriceURL    string
	MarketRegion      string
	SessionTTL        time.Duration
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	ttlHours, err := strconv.Atoi(get("SESSION_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}
	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		DBPath:            get("DB_PATH", "croplan.db"),
		StaticDir:         get("STATIC_DIR", "static"),
		OpenWeatherAPIKey: get("OPENWEATHER_API_KEY", ""),
		MarketPriceURL:    get("MARKET_PRICE_URL", ""),
		MarketRegion:      get("MARKET_REGION", "Central district"),
		SessionTTL:        time.Duration(ttlHours) * time.Hour,
	}
	log.Printf("[cfg] port=%s db=%s region=%s session_ttl=%s", cfg.Port, cfg.DBPath, cfg.MarketRegion, cfg.SessionTTL)
	return cfg
}
