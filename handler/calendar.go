package handler

import (
	"time"

	"studio_booking/config"
	"studio_booking/constants"
	"studio_booking/helper"
	"studio_booking/model"
	"studio_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCalendar returns the month view; year and month default to the current
// month in the studio's time zone.
func GetCalendar(c *fiber.Ctx) error {
	query := c.Locals("query").(model.CalendarQuery)

	today := helper.Today(helper.StudioLocation())
	year, month := today.Year(), today.Month()
	if query.Year != 0 {
		year = query.Year
	}
	if query.Month != 0 {
		month = time.Month(query.Month)
	}

	first, last := helper.MonthBounds(year, month)
	bookings, err := helper.FindBookingsInRange(db(c), first, last)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.BuildMonthView(config.Studio(), year, month, bookings))
}

// GetDay returns one coach's grid for a day, defaulting to today and the
// first coach.
func GetDay(c *fiber.Ctx) error {
	query := c.Locals("query").(model.DayQuery)
	roster := config.Studio()

	day := helper.Today(helper.StudioLocation())
	if query.Date != "" {
		d, err := utils.ParseDate(query.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		day = d
	}

	coach := query.Coach
	if coach == "" {
		coach = roster.CoachNames()[0]
	}
	if _, ok := roster.CoachByName(coach); !ok {
		return respondError(c, helper.ErrUnknownCoach)
	}

	bookings, err := helper.FindBookings(db(c), coach, day)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.BuildDayView(roster, day, coach, bookings))
}
