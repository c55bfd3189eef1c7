package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/sloc-weather/internal/weather"
)

// ManualName is the name the manual provider registers under.
const ManualName = "manual"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil function.
	_ = v.RegisterValidation("weathericon", func(fl validator.FieldLevel) bool {
		icon := fl.Field().String()
		return icon == weather.NoIcon || weather.KnownIcon(icon)
	})
	return v
}

// manualInput mirrors weather.Conditions with validation rules. Temperature
// is checked in Celsius.
type manualInput struct {
	Icon    string   `validate:"omitempty,weathericon"`
	Summary string   `validate:"max=200"`
	Celsius *float64 `validate:"omitempty,gte=-100,lte=100"`
}

// Manual reports conditions entered by the operator rather than fetched from
// a weather API.
type Manual struct {
	*weather.Base

	mu         sync.RWMutex
	conditions weather.Conditions
}

// NewManual creates a Manual provider with no conditions set.
func NewManual(opts ...weather.Option) *Manual {
	return &Manual{Base: weather.NewBase(opts...)}
}

func (m *Manual) Name() string {
	return ManualName
}

// Conditions returns the last conditions passed to Set.
func (m *Manual) Conditions(_ context.Context) (weather.Conditions, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneConditions(m.conditions), nil
}

// Set replaces the reported conditions. The temperature is expressed in the
// provider's configured units.
func (m *Manual) Set(c weather.Conditions) error {
	in := manualInput{Icon: c.Icon, Summary: c.Summary}
	if c.Temperature != nil {
		celsius := weather.UnitsMetric.Convert(*c.Temperature, m.Units())
		in.Celsius = &celsius
	}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid manual conditions: %w", err)
	}

	m.mu.Lock()
	m.conditions = cloneConditions(c)
	m.mu.Unlock()
	return nil
}

func cloneConditions(c weather.Conditions) weather.Conditions {
	if c.Temperature != nil {
		c.Temperature = weather.Temp(*c.Temperature)
	}
	return c
}
