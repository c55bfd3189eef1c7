package weather

// Units is the measurement system used when presenting temperatures.
type Units string

const (
	UnitsImperial Units = "imperial"
	UnitsMetric   Units = "metric"
)

// NoIcon is the sentinel icon key meaning "render no icon".
const NoIcon = "none"

// Location is a coordinate pair. Latitude and longitude are always set together.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Conditions is a snapshot of current weather as reported by a provider.
// Every field is optional: an empty string or nil pointer means absent.
type Conditions struct {
	Icon        string   `json:"icon,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// HasIcon reports whether the conditions carry a renderable icon.
func (c Conditions) HasIcon() bool {
	return c.Icon != "" && c.Icon != NoIcon
}

// Temp returns a pointer to v, for filling Conditions.Temperature.
func Temp(v float64) *float64 {
	return &v
}
