package validate

import (
	"strings"

	"studio_booking/constants"
	"studio_booking/model"
	"studio_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// EditMember parses the admin member form. Name and birthday are checked by
// helper.EditMember so a blank identity is refused in one place.
func EditMember() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditMemberInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return validationError(c, err)
		}

		var profile model.MemberProfile
		if err := copier.CopyWithOption(&profile, &input, dateOption); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("editInput", profile)
		return c.Next()
	}
}

func HistoryLookup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.HistoryLookupInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return validationError(c, err)
		}

		birthday, err := utils.ParseDate(input.Birthday)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("lookupInput", model.MemberProfile{Name: strings.TrimSpace(input.Name), Birthday: birthday})
		return c.Next()
	}
}

// HistoryUpdate parses a client's self-service edit, addressed by the
// identity the client currently has.
func HistoryUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.HistoryUpdateInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return validationError(c, err)
		}

		var profile model.MemberProfile
		if err := copier.CopyWithOption(&profile, &input.EditMemberInput, dateOption); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		var oldBirthday utils.CustomDate
		if input.OldBirthday != "" {
			d, err := utils.ParseDate(input.OldBirthday)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
			}
			oldBirthday = d
		}

		c.Locals("oldIdentity", model.MemberProfile{Name: input.OldName, Birthday: oldBirthday})
		c.Locals("editInput", profile)
		return c.Next()
	}
}
