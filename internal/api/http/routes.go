package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/sloc-weather/internal/weather"
	"github.com/i474232898/sloc-weather/internal/weather/providers"
)

var validate = validator.New()

// ConditionsSetter is implemented by providers that accept operator input.
type ConditionsSetter interface {
	Set(c weather.Conditions) error
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. labels render
// the icon endpoints.
func RegisterRoutes(app *fiber.App, service *weather.Service, labels *weather.Labels) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"providers": service.Providers()})
	})

	v1.Get("/weather/:provider/current", func(c *fiber.Ctx) error {
		p, cond, err := current(c, service)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"provider":    p.Name(),
			"conditions":  cond,
			"markup":      p.ConditionMarkup(cond),
			"temperature": p.TemperatureText(cond),
		})
	})

	v1.Get("/weather/:provider/current.html", func(c *fiber.Ctx) error {
		p, cond, err := current(c, service)
		if err != nil {
			return err
		}
		c.Type("html", "utf-8")
		return c.SendString(p.ConditionMarkup(cond))
	})

	v1.Get("/weather/:provider/location", func(c *fiber.Ctx) error {
		p, err := lookup(c, service)
		if err != nil {
			return err
		}
		loc, ok := p.Location()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "location not available")
		}
		return c.JSON(loc)
	})

	v1.Put("/weather/:provider/location", func(c *fiber.Ctx) error {
		p, err := lookup(c, service)
		if err != nil {
			return err
		}
		if !p.SetLocation(c.Query("latitude"), c.Query("longitude")) {
			return fiber.NewError(fiber.StatusBadRequest, "latitude and longitude must be valid coordinates")
		}
		if err := service.Invalidate(p.Name()); err != nil {
			return err
		}
		loc, _ := p.Location()
		return c.JSON(loc)
	})

	v1.Put("/weather/:provider/conditions", func(c *fiber.Ctx) error {
		p, err := lookup(c, service)
		if err != nil {
			return err
		}
		setter, ok := unwrap(p).(ConditionsSetter)
		if !ok {
			return fiber.NewError(fiber.StatusMethodNotAllowed, "provider does not accept conditions")
		}

		var cond weather.Conditions
		if err := c.BodyParser(&cond); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := setter.Set(cond); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := service.Invalidate(p.Name()); err != nil {
			return err
		}
		return c.JSON(cond)
	})

	v1.Get("/icons", func(c *fiber.Ctx) error {
		return c.JSON(weather.Icons(labels))
	})

	v1.Get("/icons/options", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return weather.WriteIconSelectOptions(c, labels, c.Query("selected"))
	})

	v1.Get("/convert", func(c *fiber.Ctx) error {
		var req convertQuery
		if err := c.QueryParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		to := weather.Units(req.To)
		from := weather.UnitsMetric
		if to == weather.UnitsMetric {
			from = weather.UnitsImperial
		}
		return c.JSON(fiber.Map{
			"value":  to.Convert(*req.Value, from),
			"units":  to,
			"symbol": to.Symbol(),
		})
	})
}

// convertQuery holds query parameters for the convert endpoint.
type convertQuery struct {
	Value *float64 `query:"value" validate:"required"`
	To    string   `query:"to" validate:"required,oneof=imperial metric"`
}

// unwrap returns the provider beneath decorators such as providers.Resilient.
func unwrap(p weather.Provider) weather.Provider {
	for {
		u, ok := p.(interface{ Unwrap() weather.Provider })
		if !ok {
			return p
		}
		p = u.Unwrap()
	}
}

func lookup(c *fiber.Ctx, service *weather.Service) (weather.Provider, error) {
	p, err := service.Provider(c.Params("provider"))
	if err != nil {
		if errors.Is(err, weather.ErrUnknownProvider) {
			return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return nil, err
	}
	return p, nil
}

func current(c *fiber.Ctx, service *weather.Service) (weather.Provider, weather.Conditions, error) {
	p, err := lookup(c, service)
	if err != nil {
		return nil, weather.Conditions{}, err
	}
	cond, err := service.Current(c.UserContext(), p.Name())
	if err != nil {
		if errors.Is(err, providers.ErrCircuitOpen) {
			return nil, weather.Conditions{}, fiber.NewError(fiber.StatusServiceUnavailable, "weather provider unavailable")
		}
		return nil, weather.Conditions{}, fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather conditions")
	}
	return p, cond, nil
}

// ErrorHandler renders errors as a JSON body with the matching status code.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}
