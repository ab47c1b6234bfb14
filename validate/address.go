package validate

import (
	"errors"
	"strconv"

	"shop_manager/constants"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateAddress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAddressInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputCreateAddress", input)
		return c.Next()
	}
}

func UpdateAddress(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateAddressInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputUpdateAddress", input)
		c.Locals("inputId", valueKey)
		return c.Next()
	}
}
