package weather

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/i474232898/sloc-weather/internal/common"
)

const (
	DefaultCacheKey   = "slocw"
	DefaultCacheTTL   = 600 * time.Second
	DefaultIconSprite = "/static/weather-icons.svg"
)

// ErrInvalidLocation is returned when a coordinate pair is rejected.
var ErrInvalidLocation = errors.New("invalid location")

// Settings configures a provider. Start from DefaultSettings and override
// fields with Options.
type Settings struct {
	API        string
	Latitude   *float64
	Longitude  *float64
	StationID  string
	CacheKey   string
	CacheTTL   time.Duration
	Units      Units
	Style      string
	IconSprite string
	Labels     *Labels
}

// DefaultSettings returns the settings every provider starts from.
func DefaultSettings() Settings {
	return Settings{
		CacheKey:   DefaultCacheKey,
		CacheTTL:   DefaultCacheTTL,
		Units:      UnitsMetric,
		IconSprite: DefaultIconSprite,
		Labels:     DefaultLabels(),
	}
}

// Option overrides a default setting.
type Option func(*Settings)

func WithAPIKey(key string) Option {
	return func(s *Settings) { s.API = key }
}

// WithLocation sets both coordinates. An invalid pair is dropped when the
// provider is built.
func WithLocation(lat, lng float64) Option {
	return func(s *Settings) {
		s.Latitude = &lat
		s.Longitude = &lng
	}
}

func WithStation(id string) Option {
	return func(s *Settings) { s.StationID = id }
}

func WithCacheKey(key string) Option {
	return func(s *Settings) { s.CacheKey = key }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Settings) { s.CacheTTL = ttl }
}

func WithUnits(u Units) Option {
	return func(s *Settings) { s.Units = u }
}

func WithStyle(style string) Option {
	return func(s *Settings) { s.Style = style }
}

func WithIconSprite(url string) Option {
	return func(s *Settings) { s.IconSprite = url }
}

func WithLabels(l *Labels) Option {
	return func(s *Settings) { s.Labels = l }
}

// Base carries the configuration and presentation helpers shared by every
// provider. Concrete providers embed *Base and implement Conditions.
type Base struct {
	mu       sync.RWMutex
	settings Settings
	location *Location
}

// NewBase builds a Base from the defaults overridden by opts.
func NewBase(opts ...Option) *Base {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.Labels == nil {
		s.Labels = DefaultLabels()
	}

	b := &Base{settings: s}
	if s.Latitude != nil && s.Longitude != nil {
		if err := b.SetCoordinates(*s.Latitude, *s.Longitude); err != nil {
			log.WithFields(log.Fields{"err": err}).Warn("Ignoring configured location")
		}
	}
	return b
}

// SetLocation parses and stores a coordinate pair. It reports false and
// leaves the current location untouched when either value is not numeric.
func (b *Base) SetLocation(lat, lng string) bool {
	la, ok := common.ParseNumeric(lat)
	if !ok {
		return false
	}
	ln, ok := common.ParseNumeric(lng)
	if !ok {
		return false
	}
	return b.SetCoordinates(la, ln) == nil
}

// SetCoordinates stores a coordinate pair. Both values must be finite; range
// is left to the provider that consumes them.
func (b *Base) SetCoordinates(lat, lng float64) error {
	if !finite(lat) || !finite(lng) {
		return fmt.Errorf("%w: %v,%v", ErrInvalidLocation, lat, lng)
	}
	loc := Location{Latitude: lat, Longitude: lng}

	b.mu.Lock()
	b.location = &loc
	b.mu.Unlock()
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Location returns the configured coordinates, or false when none are set.
func (b *Base) Location() (Location, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.location == nil {
		return Location{}, false
	}
	return *b.location, true
}

func (b *Base) APIKey() string          { return b.settings.API }
func (b *Base) Station() string         { return b.settings.StationID }
func (b *Base) CacheKey() string        { return b.settings.CacheKey }
func (b *Base) CacheTTL() time.Duration { return b.settings.CacheTTL }
func (b *Base) Units() Units            { return b.settings.Units }
func (b *Base) Style() string           { return b.settings.Style }
func (b *Base) IconSprite() string      { return b.settings.IconSprite }
func (b *Base) Labels() *Labels         { return b.settings.Labels }

// TemperatureUnitSymbol returns "F" for imperial units and "C" otherwise.
func (b *Base) TemperatureUnitSymbol() string {
	return b.settings.Units.Symbol()
}
