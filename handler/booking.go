package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"studio_booking/config"
	"studio_booking/constants"
	"studio_booking/helper"
	"studio_booking/model"
	"studio_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

const qrSize = 256

// GetAvailableTimes answers with a bare JSON array so the booking form can
// fill its time picker directly.
func GetAvailableTimes(c *fiber.Ctx) error {
	query := c.Locals("query").(model.AvailableTimesQuery)

	times, err := helper.AvailableTimes(db(c), config.Studio(), query.CoachId, query.Date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(times)
}

func CreateBooking(c *fiber.Ctx) error {
	request := c.Locals("createInput").(model.BookingRequest)

	booking, err := helper.CreateBooking(db(c), config.Studio(), request)
	if err != nil {
		return respondError(c, err)
	}

	utils.Logger.Info().
		Uint("bookingId", booking.ID).
		Str("coach", booking.Coach).
		Str("date", booking.Date.String()).
		Str("time", booking.Time).
		Msg("booking created")

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": constants.BOOKING_CREATED,
		"booking": booking,
		"summary": helper.Summary(booking),
	})
}

// GetBookingQR renders the confirmation as a QR code the client can show at
// the front desk.
func GetBookingQR(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	booking, err := helper.GetBooking(db(c), id)
	if err != nil {
		return respondError(c, err)
	}

	content := fmt.Sprintf("BOOKING:%d|%s|%s %s|%s", booking.ID, booking.Coach, booking.Date, booking.Time, booking.ClientName)
	png, err := utils.GenerateQRCode(content, qrSize)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func GetBookings(c *fiber.Ctx) error {
	filter := c.Locals("filter").(model.BookingFilter)

	bookings, err := helper.FindBookingsByFilters(db(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":        bookings,
		"totalCount":  len(bookings),
		"coaches":     config.Studio().CoachNames(),
		"courseTypes": config.Studio().CourseTypes(),
	})
}

var exportHeader = []string{
	"id", "coach", "date", "time", "client_name", "phone", "email",
	"gender", "birthday", "line_id", "course_type", "note",
}

// ExportBookings writes the filtered admin list as CSV.
func ExportBookings(c *fiber.Ctx) error {
	filter := c.Locals("filter").(model.BookingFilter)

	bookings, err := helper.FindBookingsByFilters(db(c), filter)
	if err != nil {
		return respondError(c, err)
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	if err := w.Write(exportHeader); err != nil {
		return respondError(c, err)
	}
	for _, b := range bookings {
		record := []string{
			strconv.FormatUint(uint64(b.ID), 10),
			b.Coach,
			b.Date.String(),
			b.Time,
			b.ClientName,
			b.Phone,
			b.Email,
			b.Gender,
			b.Birthday.String(),
			b.LineId,
			b.CourseType,
			b.Note,
		}
		if err := w.Write(record); err != nil {
			return respondError(c, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.csv"`, exportName(filter)))
	return c.Send(buf.Bytes())
}

func exportName(filter model.BookingFilter) string {
	parts := []string{"bookings"}
	for _, v := range []string{filter.Coach, filter.CourseType, filter.Date} {
		if v != "" && v != constants.FILTER_ALL {
			parts = append(parts, v)
		}
	}
	if len(parts) == 1 {
		parts = append(parts, time.Now().Format(constants.DATE_LAYOUT))
	}
	return slug.Make(strings.Join(parts, " "))
}

func DeleteBooking(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	booking, err := helper.DeleteBooking(db(c), id)
	if err != nil {
		return respondError(c, err)
	}

	utils.Logger.Info().
		Uint("bookingId", booking.ID).
		Str("coach", booking.Coach).
		Str("date", booking.Date.String()).
		Msg("booking deleted")

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.BOOKING_DELETED,
		"booking": booking,
	})
}
