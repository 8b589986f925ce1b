package router

import (
	"studio_booking/handler"
	"studio_booking/middleware"
	"studio_booking/validate"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api")
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", handler.Logout)

	v1.Get("/coaches", handler.GetCoaches)
	v1.Get("/course-types", handler.GetCourseTypes)
	v1.Get("/available-times", validate.AvailableTimes(), handler.GetAvailableTimes)

	booking := v1.Group("/bookings")
	booking.Post("/", validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/:bookingId/qr", validate.GetById("bookingId"), handler.GetBookingQR)

	history := v1.Group("/history")
	history.Post("/", validate.HistoryLookup(), handler.LookupHistory)
	history.Put("/", validate.HistoryUpdate(), handler.UpdateHistory)

	admin := v1.Group("/admin", middleware.Protected())
	admin.Get("/bookings", validate.BookingFilter(), handler.GetBookings)
	admin.Get("/bookings/export", validate.BookingFilter(), handler.ExportBookings)
	admin.Delete("/bookings/:bookingId", validate.GetById("bookingId"), handler.DeleteBooking)
	admin.Get("/calendar", validate.Calendar(), handler.GetCalendar)
	admin.Get("/day", validate.Day(), handler.GetDay)
	admin.Get("/members", handler.GetMembers)
	admin.Get("/members/:memberId", validate.GetById("memberId"), handler.GetMemberById)
	admin.Put("/members/:memberId", validate.GetById("memberId"), validate.EditMember(), handler.EditMember)
}
