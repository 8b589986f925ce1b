package validate

import (
	"studio_booking/constants"
	"studio_booking/model"
	"studio_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// CreateBooking accepts JSON or form-encoded submissions.
func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return validationError(c, err)
		}

		var request model.BookingRequest
		if err := copier.CopyWithOption(&request, &input, dateOption); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("createInput", request)
		return c.Next()
	}
}

func AvailableTimes() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := new(model.AvailableTimesQuery)
		if err := c.QueryParser(query); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		c.Locals("query", *query)
		return c.Next()
	}
}

func BookingFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := new(model.BookingFilter)
		if err := c.QueryParser(filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(filter); err != nil {
			return validationError(c, err)
		}
		c.Locals("filter", *filter)
		return c.Next()
	}
}

func Calendar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := new(model.CalendarQuery)
		if err := c.QueryParser(query); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(query); err != nil {
			return validationError(c, err)
		}
		c.Locals("query", *query)
		return c.Next()
	}
}

func Day() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := new(model.DayQuery)
		if err := c.QueryParser(query); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(query); err != nil {
			return validationError(c, err)
		}
		c.Locals("query", *query)
		return c.Next()
	}
}
