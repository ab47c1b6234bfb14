package validate

import (
	"errors"
	"strconv"

	"shop_manager/constants"
	"shop_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", valueKey)

		// Continue to next handler
		return c.Next()
	}
}

// parseBody gom phần parse + validate lặp lại ở mọi middleware.
// ok=false nghĩa là đã trả response lỗi, handler chỉ cần return resp.
func parseBody(c *fiber.Ctx, input any) (ok bool, resp error) {
	if err := c.BodyParser(input); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	if err := validate.Struct(input); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error(), nil)
	}

	return true, nil
}
