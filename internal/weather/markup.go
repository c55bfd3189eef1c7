package weather

import (
	"html/template"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	iconTemplate = template.Must(template.New("icon").Parse(
		`<span aria-label="{{.Label}}" title="{{.Label}}" ><svg class="svg-icon svg-{{.Icon}}" aria-hidden="true"><use xlink:href="{{.Sprite}}#{{.Icon}}"></use></svg></span>`))

	conditionTemplate = template.Must(template.New("condition").Parse(
		`<span class="sloc-weather{{if .Style}} {{.Style}}{{end}}">{{.Icon}}{{if .HasTemp}}{{.Temp}}°{{.Unit}}{{end}}</span>`))

	optionTemplate = template.Must(template.New("option").Parse(
		`<option value="{{.Value}}" {{if .Selected}} selected='selected'{{end}}>{{.Label}}</option>`))
)

type option struct {
	Value    string
	Label    string
	Selected bool
}

// IconMarkup renders icon as a reference into the sprite at spriteURL. The
// sentinel "none" and an empty icon render nothing. label defaults to the
// icon key.
func IconMarkup(spriteURL, icon, label string) string {
	if !(Conditions{Icon: icon}).HasIcon() {
		return ""
	}
	if label == "" {
		label = icon
	}
	return render(iconTemplate, struct{ Icon, Label, Sprite string }{icon, label, spriteURL})
}

// IconMarkup renders icon against the configured sprite.
func (b *Base) IconMarkup(icon, label string) string {
	return IconMarkup(b.settings.IconSprite, icon, label)
}

// ConditionMarkup renders c as an icon followed by the rounded temperature.
func (b *Base) ConditionMarkup(c Conditions) string {
	data := struct {
		Style   string
		Icon    template.HTML
		HasTemp bool
		Temp    string
		Unit    string
	}{
		Style: b.settings.Style,
		Unit:  b.TemperatureUnitSymbol(),
	}
	if c.HasIcon() {
		// Rendered by iconTemplate, which escapes its inputs.
		data.Icon = template.HTML(b.IconMarkup(c.Icon, c.Summary))
	}
	if c.Temperature != nil {
		data.HasTemp = true
		data.Temp = formatRounded(*c.Temperature)
	}
	return render(conditionTemplate, data)
}

// TemperatureText returns the temperature of c followed by the unit symbol,
// or "" when c has no temperature.
func (b *Base) TemperatureText(c Conditions) string {
	if c.Temperature == nil {
		return ""
	}
	return strconv.FormatFloat(*c.Temperature, 'f', -1, 64) + "°" + b.TemperatureUnitSymbol()
}

// formatRounded rounds half away from zero and never prints "-0".
func formatRounded(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

func render(t *template.Template, data any) string {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		log.WithFields(log.Fields{"template": t.Name(), "err": err}).Error("Rendering markup")
		return ""
	}
	return sb.String()
}
