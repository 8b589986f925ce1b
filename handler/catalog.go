package handler

import (
	"studio_booking/config"
	"studio_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCoaches(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, config.Studio().Coaches())
}

func GetCourseTypes(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, config.Studio().CourseTypes())
}
