package validate

import (
	"errors"
	"strconv"

	"shop_manager/constants"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReviewInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputCreateReview", input)
		return c.Next()
	}
}

func UpdateReview(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateReviewInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputUpdateReview", input)
		c.Locals("inputId", valueKey)
		return c.Next()
	}
}

func AddWishlist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddWishlistInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputAddWishlist", input)
		return c.Next()
	}
}
