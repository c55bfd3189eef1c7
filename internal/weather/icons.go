package weather

import (
	"fmt"
	"io"
	"strings"
)

// IconGroup classifies icons for presentation.
type IconGroup string

const (
	IconGroupNeutral IconGroup = "neutral"
	IconGroupDay     IconGroup = "day"
	IconGroupNight   IconGroup = "night"
	IconGroupMisc    IconGroup = "misc"
	IconGroupMoon    IconGroup = "moon"
)

// Icon is one entry of the icon sprite.
type Icon struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Group IconGroup `json:"group"`
}

// iconTable lists every icon of the sprite in display order. Labels are the
// English source strings handed to Labels for translation.
var iconTable = [...]struct {
	key   string
	label string
	group IconGroup
}{
	// Conditions without a time of day.
	{"wi-cloud", "Cloud", IconGroupNeutral},
	{"wi-cloudy", "Cloudy", IconGroupNeutral},
	{"wi-cloudy-gusts", "Cloudy with Gusts", IconGroupNeutral},
	{"wi-cloudy-windy", "Cloudy with Wind", IconGroupNeutral},
	{"wi-showers", "Showers", IconGroupNeutral},
	{"wi-rain-mix", "Rain-Mix", IconGroupNeutral},
	{"wi-rain", "Rain", IconGroupNeutral},
	{"wi-rain-wind", "Rain and Windy", IconGroupNeutral},
	{"wi-snow", "Snow", IconGroupNeutral},
	{"wi-snow-wind", "Snow and Wind", IconGroupNeutral},
	{"wi-fog", "Fog", IconGroupNeutral},
	{"wi-hot", "Hot", IconGroupNeutral},
	{"wi-lightning", "Lightning", IconGroupNeutral},
	{"wi-sandstorm", "Sandstorm", IconGroupNeutral},
	{"wi-sleet", "Sleet", IconGroupNeutral},
	{"wi-smog", "Smog", IconGroupNeutral},
	{"wi-smoke", "Smoke", IconGroupNeutral},
	{"wi-snowflake-cold", "Snowflake-Cold", IconGroupNeutral},
	{"wi-solar-eclipse", "Solar Eclipse", IconGroupNeutral},
	{"wi-sprinkle", "Sprinkles", IconGroupNeutral},
	{"wi-stars", "Stars", IconGroupNeutral},
	{"wi-storm-showers", "Storm Showers", IconGroupNeutral},
	{"wi-storm-warning", "Storm Warning", IconGroupNeutral},
	{"wi-strong-wind", "Strong Winds", IconGroupNeutral},
	{"wi-thunderstorm", "Thunderstorm", IconGroupNeutral},
	{"wi-windy", "Windy", IconGroupNeutral},
	{"wi-gale-warning", "Gale Warning", IconGroupNeutral},
	{"wi-hail", "Hail", IconGroupNeutral},
	{"wi-hurricane", "Hurricane", IconGroupNeutral},
	{"wi-hurricane-warning", "Hurricane Warning", IconGroupNeutral},
	{"wi-dust", "Dust", IconGroupNeutral},
	{"wi-earthquake", "Earthquake", IconGroupNeutral},
	{"wi-fire", "Fire", IconGroupNeutral},
	{"wi-flood", "Flood", IconGroupNeutral},

	{"wi-day-sunny", "Sunny", IconGroupDay},
	{"wi-day-sunny-overcast", "Sunny and Overcast", IconGroupDay},
	{"wi-day-cloudy", "Cloudy - Daytime", IconGroupDay},
	{"wi-day-cloudy-gusts", "Cloudy with Gusts - Daytime", IconGroupDay},
	{"wi-day-cloudy-high", "Cloudy High Winds - Daytime", IconGroupDay},
	{"wi-day-cloudy-windy", "Cloudy and Windy - Daytime", IconGroupDay},
	{"wi-day-fog", "Fog - Daytime", IconGroupDay},
	{"wi-day-hail", "Hail - Daytime", IconGroupDay},
	{"wi-day-haze", "Haze - Daytime", IconGroupDay},
	{"wi-day-lightning", "Lightning - Daytime", IconGroupDay},
	{"wi-day-light-wind", "Lighting and Wind - Daytime", IconGroupDay},
	{"wi-day-rain-mix", "Rainy Mix - Daytime", IconGroupDay},
	{"wi-day-rain", "Rain - Daytime", IconGroupDay},
	{"wi-day-rain-wind", "Rain and Wind - Daytime", IconGroupDay},
	{"wi-day-showers", "Showers - Day", IconGroupDay},
	{"wi-day-sleet-storm", "Sleet Storm - Day", IconGroupDay},
	{"wi-day-sleet", "Sleet - Day", IconGroupDay},
	{"wi-day-snow", "Snow - Day", IconGroupDay},
	{"wi-day-snow-thunderstorm", "Snow and Thunderstorms - Day", IconGroupDay},
	{"wi-day-snow-wind", "Snow and Wind - Day", IconGroupDay},
	{"wi-day-sprinkle", "Sprinkles - Day", IconGroupDay},
	{"wi-day-storm-showers", "Storm Showers - Day", IconGroupDay},
	{"wi-day-thunderstorm", "Thunderstorm - Day", IconGroupDay},
	{"wi-day-windy", "Windy - Day", IconGroupDay},

	{"wi-night-clear", "Clear Night", IconGroupNight},
	{"wi-night-cloudy", "Cloudy - Night", IconGroupNight},
	{"wi-night-cloudy-gusts", "Cloudy with Gusts - Night", IconGroupNight},
	{"wi-night-cloudy-high", "Cloudy with High Winds - Night", IconGroupNight},
	{"wi-night-cloudy-windy", "Cloudy and Windy - Night", IconGroupNight},
	{"wi-night-fog", "Fog - Night", IconGroupNight},
	{"wi-night-hail", "Hail - Night", IconGroupNight},
	{"wi-night-lightning", "Lightning - Night", IconGroupNight},
	{"wi-night-partly-cloudy", "Partly Cloudy - Night", IconGroupNight},
	{"wi-night-rain-mix", "Rainy Mix - Night", IconGroupNight},
	{"wi-night-rain", "Rain - Night", IconGroupNight},
	{"wi-night-rain-wind", "Rain and Wind - Night", IconGroupNight},
	{"wi-night-showers", "Showers - Night", IconGroupNight},
	{"wi-night-sleet-storm", "Sleet Storm - Night", IconGroupNight},
	{"wi-night-sleet", "Sleet - Night", IconGroupNight},
	{"wi-night-snow", "Snow - Night", IconGroupNight},
	{"wi-night-snow-thunderstorm", "Snow and Thunderstorm - Night", IconGroupNight},
	{"wi-night-snow-wind", "Snow and Wind - Night", IconGroupNight},
	{"wi-night-sprinkle", "Sprinkles - Night", IconGroupNight},
	{"wi-night-storm-showers", "Storm Showers - Night", IconGroupNight},
	{"wi-night-thunderstorm", "Thunderstorms - Night", IconGroupNight},
	{"wi-lunar-eclipse", "Lunar Eclipse", IconGroupNight},

	// Instruments and miscellaneous phenomena.
	{"wi-barometer", "Barometer", IconGroupMisc},
	{"wi-thermometer", "Thermometer", IconGroupMisc},
	{"wi-thermometer-exterior", "Thermometer - Exterior", IconGroupMisc},
	{"wi-thermometer-internal", "Thermometer - Internal", IconGroupMisc},
	{"wi-celsius", "Celsius", IconGroupMisc},
	{"wi-fahrenheit", "Fahrenheit", IconGroupMisc},
	{"wi-humidity", "Humidity", IconGroupMisc},
	{"wi-degrees", "Degrees", IconGroupMisc},
	{"wi-raindrops", "Raindrops", IconGroupMisc},
	{"wi-raindrop", "Raindrop", IconGroupMisc},
	{"wi-horizon", "Horizon", IconGroupMisc},
	{"wi-na", "N/A", IconGroupMisc},
	{"wi-sunrise", "Sunrise", IconGroupMisc},
	{"wi-sunset", "Sunset", IconGroupMisc},
	{"wi-umbrella", "Umbrella", IconGroupMisc},
	{"wi-meteor", "Meteor", IconGroupMisc},
	{"wi-tornado", "Tornado", IconGroupMisc},
	{"wi-tsunami", "Tsunami", IconGroupMisc},
	{"wi-volcano", "Volcano", IconGroupMisc},

	{"wi-moon-first-quarter", "First Quarter Moon", IconGroupMoon},
	{"wi-moon-full", "Full Moon", IconGroupMoon},
	{"wi-moon-new", "New Moon", IconGroupMoon},
	{"wi-moonrise", "Moonrise", IconGroupMoon},
	{"wi-moonset", "Moonset", IconGroupMoon},
	{"wi-moon-third-quarter", "Third Quarter Moon", IconGroupMoon},
	{"wi-moon-waning-crescent-1", "Waning Crescent 1", IconGroupMoon},
	{"wi-moon-waning-crescent-2", "Waning Crescent 2", IconGroupMoon},
	{"wi-moon-waning-crescent-3", "Waning Crescent 3", IconGroupMoon},
	{"wi-moon-waning-crescent-4", "Waning Crescent 4", IconGroupMoon},
	{"wi-moon-waning-crescent-5", "Waning Crescent 5", IconGroupMoon},
	{"wi-moon-waning-crescent-6", "Waning Crescent 6", IconGroupMoon},
	{"wi-moon-waning-gibbous-1", "Waning Gibbous 1", IconGroupMoon},
	{"wi-moon-waning-gibbous-2", "Waning Gibbous 2", IconGroupMoon},
	{"wi-moon-waning-gibbous-3", "Waning Gibbous 3", IconGroupMoon},
	{"wi-moon-waning-gibbous-4", "Waning Gibbous 4", IconGroupMoon},
	{"wi-moon-waning-gibbous-5", "Waning Gibbous 5", IconGroupMoon},
	{"wi-moon-waning-gibbous-6", "Waning Gibbous 6", IconGroupMoon},
	{"wi-moon-waxing-crescent-1", "Waxing Crescent 1", IconGroupMoon},
	{"wi-moon-waxing-crescent-2", "Waxing Crescent 2", IconGroupMoon},
	{"wi-moon-waxing-crescent-3", "Waxing Crescent 3", IconGroupMoon},
	{"wi-moon-waxing-crescent-4", "Waxing Crescent 4", IconGroupMoon},
	{"wi-moon-waxing-crescent-5", "Waxing Crescent 5", IconGroupMoon},
	{"wi-moon-waxing-crescent-6", "Waxing Crescent 6", IconGroupMoon},
	{"wi-moon-waxing-gibbous-1", "Waxing Gibbous 1", IconGroupMoon},
	{"wi-moon-waxing-gibbous-2", "Waxing Gibbous 2", IconGroupMoon},
	{"wi-moon-waxing-gibbous-3", "Waxing Gibbous 3", IconGroupMoon},
	{"wi-moon-waxing-gibbous-4", "Waxing Gibbous 4", IconGroupMoon},
	{"wi-moon-waxing-gibbous-5", "Waxing Gibbous 5", IconGroupMoon},
	{"wi-moon-waxing-gibbous-6", "Waxing Gibbous 6", IconGroupMoon},
}

var iconIndex = func() map[string]int {
	idx := make(map[string]int, len(iconTable))
	for i, ic := range iconTable {
		idx[ic.key] = i
	}
	return idx
}()

// KnownIcon reports whether key names an icon of the sprite.
func KnownIcon(key string) bool {
	_, ok := iconIndex[key]
	return ok
}

// Icons returns the icon table in display order with labels translated by l.
// A nil l yields the English labels.
func Icons(l *Labels) []Icon {
	icons := make([]Icon, 0, len(iconTable))
	for _, ic := range iconTable {
		icons = append(icons, Icon{Key: ic.key, Label: l.Label(ic.label), Group: ic.group})
	}
	return icons
}

// IconList returns the full icon key to label table.
func IconList(l *Labels) map[string]string {
	list := make(map[string]string, len(iconTable))
	for _, ic := range iconTable {
		list[ic.key] = l.Label(ic.label)
	}
	return list
}

// IconLabel returns the translated label of key, or key itself when unknown.
func IconLabel(l *Labels, key string) string {
	i, ok := iconIndex[key]
	if !ok {
		return key
	}
	return l.Label(iconTable[i].label)
}

// IconSelectOptions renders the "none" entry followed by the icon table as
// <option> elements, marking selected. An empty selection selects "none".
func IconSelectOptions(l *Labels, selected string) string {
	var b strings.Builder
	// strings.Builder never fails to write.
	_ = WriteIconSelectOptions(&b, l, selected)
	return b.String()
}

// WriteIconSelectOptions writes the output of IconSelectOptions to w.
func WriteIconSelectOptions(w io.Writer, l *Labels, selected string) error {
	if selected == "" {
		selected = NoIcon
	}
	if err := writeOption(w, NoIcon, l.Label("None"), selected == NoIcon); err != nil {
		return err
	}
	for _, ic := range iconTable {
		if err := writeOption(w, ic.key, l.Label(ic.label), selected == ic.key); err != nil {
			return err
		}
	}
	return nil
}

func writeOption(w io.Writer, value, label string, selected bool) error {
	if err := optionTemplate.Execute(w, option{Value: value, Label: label, Selected: selected}); err != nil {
		return fmt.Errorf("render option %q: %w", value, err)
	}
	return nil
}
