package validate

import (
	"errors"
	"strconv"
	"strings"

	"studio_booking/constants"
	"studio_booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

var validate = validator.New()

// dateOption lets copier turn "YYYY-MM-DD" strings into CustomDate fields.
// Blank strings become the zero date so the helpers can report them as missing.
var dateOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: copier.String,
			DstType: utils.CustomDate{},
			Fn: func(src interface{}) (interface{}, error) {
				s, _ := src.(string)
				if strings.TrimSpace(s) == "" {
					return utils.CustomDate{}, nil
				}
				return utils.ParseDate(s)
			},
		},
	},
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))

		return c.Next()
	}
}

// validationError answers 400, naming missing fields separately from
// malformed ones.
func validationError(c *fiber.Ctx, err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			if fe.Tag() == "required" {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELD, err)
			}
		}
	}
	return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
}
