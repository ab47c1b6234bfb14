package validate

import (
	"errors"
	"strconv"

	"shop_manager/constants"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputCreateOrder", input)
		return c.Next()
	}
}

func UpdateOrder(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateOrderInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputUpdateOrder", input)
		c.Locals("inputId", valueKey)
		return c.Next()
	}
}

func AddOrderItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddOrderItemInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputAddOrderItem", input)
		return c.Next()
	}
}

func UpdateOrderItem(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateOrderItemInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputUpdateOrderItem", input)
		c.Locals("inputId", valueKey)
		return c.Next()
	}
}
