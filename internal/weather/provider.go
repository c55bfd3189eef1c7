package weather

import (
	"context"
	"time"
)

// Provider abstracts a weather data source. Implementations embed *Base for
// configuration and rendering and supply Conditions themselves.
type Provider interface {
	Name() string
	Conditions(ctx context.Context) (Conditions, error)

	CacheKey() string
	CacheTTL() time.Duration
	Location() (Location, bool)
	SetLocation(lat, lng string) bool
	ConditionMarkup(c Conditions) string
	TemperatureText(c Conditions) string
}

// Store is the contract the conditions cache must satisfy.
type Store interface {
	Save(key string, c Conditions, ttl time.Duration)
	Get(key string) (Conditions, error)
	Delete(key string)
}

// CurrentConditionMarkup fetches the current conditions of p and renders them.
func CurrentConditionMarkup(ctx context.Context, p Provider) (string, error) {
	c, err := p.Conditions(ctx)
	if err != nil {
		return "", err
	}
	return p.ConditionMarkup(c), nil
}

// CurrentTemperatureText fetches the current conditions of p and returns the
// temperature with its unit symbol.
func CurrentTemperatureText(ctx context.Context, p Provider) (string, error) {
	c, err := p.Conditions(ctx)
	if err != nil {
		return "", err
	}
	return p.TemperatureText(c), nil
}
