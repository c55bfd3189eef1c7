package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconMarkup(t *testing.T) {
	tests := []struct {
		name  string
		icon  string
		label string
		want  string
	}{
		{
			name: "sentinel none",
			icon: "none",
			want: "",
		},
		{
			name: "empty icon",
			icon: "",
			want: "",
		},
		{
			name: "label defaults to icon key",
			icon: "wi-rain",
			want: `<span aria-label="wi-rain" title="wi-rain" ><svg class="svg-icon svg-wi-rain" aria-hidden="true"><use xlink:href="/static/weather-icons.svg#wi-rain"></use></svg></span>`,
		},
		{
			name:  "explicit label",
			icon:  "wi-fog",
			label: "Foggy morning",
			want:  `<span aria-label="Foggy morning" title="Foggy morning" ><svg class="svg-icon svg-wi-fog" aria-hidden="true"><use xlink:href="/static/weather-icons.svg#wi-fog"></use></svg></span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IconMarkup(DefaultIconSprite, tt.icon, tt.label))
		})
	}
}

func TestIconMarkupEscapesLabel(t *testing.T) {
	got := IconMarkup(DefaultIconSprite, "wi-hot", `<b>"hot"</b>`)
	assert.NotContains(t, got, "<b>")
	assert.Contains(t, got, `aria-label="&lt;b&gt;&#34;hot&#34;&lt;/b&gt;"`)
}

func TestBaseIconMarkupUsesSprite(t *testing.T) {
	b := NewBase(WithIconSprite("https://example.com/sprite.svg"))
	assert.Contains(t, b.IconMarkup("wi-snow", "Snow"), `xlink:href="https://example.com/sprite.svg#wi-snow"`)
}

func TestConditionMarkup(t *testing.T) {
	b := NewBase(WithUnits(UnitsMetric))

	got := b.ConditionMarkup(Conditions{Temperature: Temp(21.6), Icon: "wi-day-sunny"})
	want := `<span class="sloc-weather">` +
		`<span aria-label="wi-day-sunny" title="wi-day-sunny" ><svg class="svg-icon svg-wi-day-sunny" aria-hidden="true"><use xlink:href="/static/weather-icons.svg#wi-day-sunny"></use></svg></span>` +
		`22°C</span>`
	assert.Equal(t, want, got)
}

func TestConditionMarkupVariants(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		cond Conditions
		want string
	}{
		{
			name: "no icon and no temperature",
			cond: Conditions{},
			want: `<span class="sloc-weather"></span>`,
		},
		{
			name: "none icon is skipped",
			cond: Conditions{Icon: "none", Temperature: Temp(3)},
			want: `<span class="sloc-weather">3°C</span>`,
		},
		{
			name: "imperial symbol",
			opts: []Option{WithUnits(UnitsImperial)},
			cond: Conditions{Temperature: Temp(71.5)},
			want: `<span class="sloc-weather">72°F</span>`,
		},
		{
			name: "negative zero",
			cond: Conditions{Temperature: Temp(-0.4)},
			want: `<span class="sloc-weather">0°C</span>`,
		},
		{
			name: "half rounds away from zero",
			cond: Conditions{Temperature: Temp(-2.5)},
			want: `<span class="sloc-weather">-3°C</span>`,
		},
		{
			name: "style class",
			opts: []Option{WithStyle("compact")},
			cond: Conditions{Temperature: Temp(10)},
			want: `<span class="sloc-weather compact">10°C</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBase(tt.opts...).ConditionMarkup(tt.cond))
		})
	}
}

func TestConditionMarkupUsesSummaryAsLabel(t *testing.T) {
	got := NewBase().ConditionMarkup(Conditions{Icon: "wi-rain", Summary: "Light rain"})
	assert.Contains(t, got, `aria-label="Light rain"`)
	assert.Contains(t, got, `#wi-rain"`)
}

func TestTemperatureText(t *testing.T) {
	b := NewBase()
	assert.Equal(t, "21.6°C", b.TemperatureText(Conditions{Temperature: Temp(21.6)}))
	assert.Equal(t, "", b.TemperatureText(Conditions{Icon: "wi-rain"}))

	imperial := NewBase(WithUnits(UnitsImperial))
	assert.Equal(t, "70°F", imperial.TemperatureText(Conditions{Temperature: Temp(70)}))
}

func TestConditionsHasIcon(t *testing.T) {
	assert.True(t, Conditions{Icon: "wi-rain"}.HasIcon())
	assert.False(t, Conditions{Icon: NoIcon}.HasIcon())
	assert.False(t, Conditions{}.HasIcon())
}
