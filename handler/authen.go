package handler

import (
	"errors"
	"time"

	"studio_booking/constants"
	"studio_booking/helper"
	"studio_booking/model"
	"studio_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	if !helper.AuthenticateAdmin(input.Username, input.Password) {
		utils.Logger.Warn().Str("username", input.Username).Str("ip", c.IP()).Msg("admin login rejected")
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_LOGIN, errors.New("credentials do not match"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{Username: input.Username})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(60 * time.Minute),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: token})
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token")
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}
