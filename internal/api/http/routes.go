package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/monthly-forecast/internal/forecast"
	"github.com/i474232898/monthly-forecast/internal/forecast/providers"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *forecast.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/forecast/monthly", func(c *fiber.Ctx) error {
		var req monthlyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := service.MonthlyReport(c.UserContext(), req.Location, req.Year, req.Month)
		if err != nil {
			if errors.Is(err, providers.ErrRequestFailed) || errors.Is(err, providers.ErrBadShape) {
				return fiber.NewError(fiber.StatusBadGateway, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build monthly report")
		}

		return c.JSON(report)
	})
}

// monthlyQuery holds query parameters for the monthly report endpoint.
type monthlyQuery struct {
	Location string `validate:"required"`
	Year     int    `validate:"required"`
	Month    int    `validate:"required,gte=1,lte=12"`
}

func (q *monthlyQuery) bind(c *fiber.Ctx) error {
	q.Location = c.Query("location")

	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		return errors.New("year and month query parameters are required")
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return errors.New("year must be an integer")
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return errors.New("month must be an integer")
	}

	q.Year = year
	q.Month = month
	return nil
}
