package validate

import (
	"errors"
	"strconv"

	"shop_manager/constants"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputCreateCategory", input)
		return c.Next()
	}
}

func UpdateCategory(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateCategoryInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputUpdateCategory", input)
		c.Locals("inputId", valueKey)
		return c.Next()
	}
}
