package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/i474232898/sloc-weather/internal/weather"
)

var validate = validator.New()

type AppConfig struct {
	Port     string    `validate:"required,numeric"`
	LogLevel log.Level `validate:"-"`

	// Measurements is the site-wide unit setting providers default to.
	Measurements weather.Units

	APIKey    string
	StationID string
	// Latitude and Longitude are kept raw; providers validate them.
	Latitude  string
	Longitude string

	CacheKey string        `validate:"required"`
	CacheTTL time.Duration `validate:"gte=0"`

	Style      string
	IconSprite string `validate:"required"`
	Language   string `validate:"omitempty,bcp47_language_tag"`

	// RefreshInterval controls how often cached conditions are refreshed.
	RefreshInterval time.Duration `validate:"gte=0"`

	Manual ManualConfig
}

// ManualConfig seeds the conditions of the manual provider.
type ManualConfig struct {
	Icon        string
	Summary     string
	Temperature string `validate:"omitempty,numeric"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.WithFields(log.Fields{"err": err}).Info("No .env file found or error loading it")
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	level, err := log.ParseLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	cfg.Measurements = weather.Units(getenvDefault("SLOC_MEASUREMENTS", string(weather.UnitsMetric)))
	cfg.APIKey = os.Getenv("WEATHER_API_KEY")
	cfg.StationID = os.Getenv("WEATHER_STATION_ID")
	cfg.Latitude = os.Getenv("WEATHER_LATITUDE")
	cfg.Longitude = os.Getenv("WEATHER_LONGITUDE")

	cfg.CacheKey = getenvDefault("WEATHER_CACHE_KEY", weather.DefaultCacheKey)
	cfg.CacheTTL = time.Duration(getenvInt("WEATHER_CACHE_TIME", int(weather.DefaultCacheTTL/time.Second))) * time.Second

	cfg.Style = os.Getenv("WEATHER_STYLE")
	cfg.IconSprite = getenvDefault("WEATHER_ICON_SPRITE", weather.DefaultIconSprite)
	cfg.Language = getenvDefault("WEATHER_LANGUAGE", "en")

	// Refresh interval: defaults to the cache TTL.
	intervalStr := getenvDefault("WEATHER_REFRESH_INTERVAL", cfg.CacheTTL.String())
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.Manual = ManualConfig{
		Icon:        getenvDefault("WEATHER_MANUAL_ICON", weather.NoIcon),
		Summary:     os.Getenv("WEATHER_MANUAL_SUMMARY"),
		Temperature: os.Getenv("WEATHER_MANUAL_TEMPERATURE"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// WeatherOptions translates the configuration into provider options. The
// location is applied separately through Base.SetLocation.
func (c *AppConfig) WeatherOptions() []weather.Option {
	return []weather.Option{
		weather.WithAPIKey(c.APIKey),
		weather.WithStation(c.StationID),
		weather.WithCacheKey(c.CacheKey),
		weather.WithCacheTTL(c.CacheTTL),
		weather.WithUnits(c.Measurements),
		weather.WithStyle(c.Style),
		weather.WithIconSprite(c.IconSprite),
		weather.WithLabels(weather.NewLabels(c.LanguageTag(), nil)),
	}
}

// LanguageTag returns the configured label language, English when unset.
func (c *AppConfig) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// ManualConditions returns the seed conditions of the manual provider.
func (c *AppConfig) ManualConditions() weather.Conditions {
	cond := weather.Conditions{Icon: c.Manual.Icon, Summary: c.Manual.Summary}
	if v, err := strconv.ParseFloat(c.Manual.Temperature, 64); err == nil {
		cond.Temperature = &v
	}
	return cond
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
