package handler

import (
	"studio_booking/constants"
	"studio_booking/helper"
	"studio_booking/model"
	"studio_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// LookupHistory finds a client's member record and bookings by name and
// birthday. An unknown identity yields a null member and no records.
func LookupHistory(c *fiber.Ctx) error {
	identity := c.Locals("lookupInput").(model.MemberProfile)
	conn := db(c)

	member, err := helper.FindMember(conn, identity.Name, identity.Birthday)
	if err != nil {
		return respondError(c, err)
	}
	records, err := helper.FindBookingsByIdentity(conn, identity.Name, identity.Birthday)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.MemberHistory{
		Name:     identity.Name,
		Birthday: identity.Birthday.String(),
		Member:   member,
		Records:  records,
	})
}

func UpdateHistory(c *fiber.Ctx) error {
	old := c.Locals("oldIdentity").(model.MemberProfile)
	profile := c.Locals("editInput").(model.MemberProfile)

	result, err := helper.EditMemberByIdentity(db(c), old.Name, old.Birthday, profile)
	if err != nil {
		return respondMemberError(c, err)
	}

	logMemberEdit(c, result)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.MEMBER_UPDATED,
		"result":  result,
	})
}

func GetMembers(c *fiber.Ctx) error {
	filter := new(model.MemberFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	members, err := helper.ListMembers(db(c), filter.Keyword)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":       members,
		"totalCount": len(members),
	})
}

func GetMemberById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	conn := db(c)

	member, err := helper.GetMember(conn, id)
	if err != nil {
		return respondMemberError(c, err)
	}
	records, err := helper.FindBookingsByIdentity(conn, member.Name, member.Birthday)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.MemberHistory{
		Name:     member.Name,
		Birthday: member.Birthday.String(),
		Member:   &member,
		Records:  records,
	})
}

func EditMember(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	profile := c.Locals("editInput").(model.MemberProfile)

	result, err := helper.EditMember(db(c), id, profile)
	if err != nil {
		return respondMemberError(c, err)
	}

	logMemberEdit(c, result)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.MEMBER_UPDATED,
		"result":  result,
	})
}

func logMemberEdit(c *fiber.Ctx, result model.MemberEditResult) {
	utils.Logger.Info().
		Str("requestId", requestID(c)).
		Uint("memberId", result.Member.ID).
		Int64("propagated", result.PropagatedBookings).
		Msg("member updated")
}
