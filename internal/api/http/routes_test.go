package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/sloc-weather/internal/store"
	"github.com/i474232898/sloc-weather/internal/weather"
	"github.com/i474232898/sloc-weather/internal/weather/providers"
)

func newTestApp(t *testing.T) (*fiber.App, *providers.Manual) {
	t.Helper()

	manual := providers.NewManual()
	require.NoError(t, manual.Set(weather.Conditions{Icon: "wi-day-sunny", Temperature: weather.Temp(21.6)}))

	svc := weather.NewService(store.NewMemoryStore(), []weather.Provider{
		providers.NewResilient(manual, providers.DefaultBackoff),
	})

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, svc, weather.DefaultLabels())
	return app, manual
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, string) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestCurrentConditions(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/weather/manual/current", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Provider    string             `json:"provider"`
		Conditions  weather.Conditions `json:"conditions"`
		Markup      string             `json:"markup"`
		Temperature string             `json:"temperature"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, "manual", payload.Provider)
	assert.Equal(t, "wi-day-sunny", payload.Conditions.Icon)
	assert.Contains(t, payload.Markup, "22°C</span>")
	assert.Equal(t, "21.6°C", payload.Temperature)
}

func TestCurrentConditionsHTML(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/weather/manual/current.html", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.True(t, strings.HasPrefix(body, `<span class="sloc-weather">`))
	assert.Contains(t, body, "#wi-day-sunny")
}

func TestUnknownProvider(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/weather/nope/current", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLocationEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/weather/manual/location", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPut, "/api/v1/weather/manual/location?latitude=abc&longitude=def", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPut, "/api/v1/weather/manual/location?latitude=10&longitude=20", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/weather/manual/location", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loc weather.Location
	require.NoError(t, json.Unmarshal([]byte(body), &loc))
	assert.Equal(t, weather.Location{Latitude: 10, Longitude: 20}, loc)
}

func TestSetManualConditions(t *testing.T) {
	app, _ := newTestApp(t)

	// Prime the cache so the update must invalidate it.
	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/weather/manual/current", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPut, "/api/v1/weather/manual/conditions", `{"icon":"wi-banana"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPut, "/api/v1/weather/manual/conditions", `{"icon":"wi-snow","summary":"Snow","temperature":-2.5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := doRequest(t, app, http.MethodGet, "/api/v1/weather/manual/current.html", "")
	assert.Contains(t, body, `aria-label="Snow"`)
	assert.Contains(t, body, "-3°C</span>")
}

func TestIconEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/icons", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var icons []weather.Icon
	require.NoError(t, json.Unmarshal([]byte(body), &icons))
	assert.Len(t, icons, 129)

	resp, body = doRequest(t, app, http.MethodGet, "/api/v1/icons/options?selected=wi-rain", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<option value="wi-rain"  selected='selected'>Rain</option>`)
	assert.Contains(t, body, `<option value="none" >None</option>`)
}

func TestConvert(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/convert?value=100&to=imperial", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Value  float64 `json:"value"`
		Symbol string  `json:"symbol"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, 212.0, payload.Value)
	assert.Equal(t, "F", payload.Symbol)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/convert?value=100&to=kelvin", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/convert?to=metric", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
