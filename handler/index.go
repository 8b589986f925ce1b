package handler

import (
	"errors"

	"studio_booking/constants"
	"studio_booking/database"
	"studio_booking/helper"
	"studio_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// db binds the shared connection to the request context.
func db(c *fiber.Ctx) *gorm.DB {
	return database.DB.WithContext(c.UserContext())
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, helper.ErrMissingRequiredField):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELD, err)
	case errors.Is(err, helper.ErrUnknownCoach):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UNKNOWN_COACH, err)
	case errors.Is(err, helper.ErrInvalidSlot):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SLOT, err)
	case errors.Is(err, helper.ErrSlotConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SLOT_CONFLICT, err)
	case errors.Is(err, helper.ErrIdentityConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.IDENTITY_CONFLICT, err)
	case errors.Is(err, helper.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	utils.Logger.Error().Err(err).
		Str("requestId", requestID(c)).
		Str("path", c.Path()).
		Msg("request failed")
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

// respondMemberError is respondError with member wording for the errors
// member edits share with bookings.
func respondMemberError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, helper.ErrMissingRequiredField):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_MEMBER_FIELD, err)
	case errors.Is(err, helper.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MEMBER_NOT_FOUND, err)
	}
	return respondError(c, err)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestId").(string); ok {
		return id
	}
	return ""
}
