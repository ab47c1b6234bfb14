package validate

import (
	"errors"
	"strconv"

	"shop_manager/constants"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputRegister", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputLogin", input)
		return c.Next()
	}
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateUserInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputCreateUser", input)
		return c.Next()
	}
}

func UpdateUser(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateUserInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		// Mật khẩu mới phải có xác nhận trùng khớp
		if input.Password != nil {
			if input.PasswordConfirmation == nil || *input.Password != *input.PasswordConfirmation {
				return utils.ErrorResponseHaveKey(c, fiber.StatusUnprocessableEntity, "Password confirmation does not match", nil, "password_confirmation")
			}
		}

		c.Locals("inputUpdateUser", input)
		c.Locals("inputId", valueKey)
		return c.Next()
	}
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateProfileInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputUpdateProfile", input)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgotPasswordInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputForgotPassword", input)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordInput
		if ok, resp := parseBody(c, &input); !ok {
			return resp
		}

		c.Locals("inputResetPassword", input)
		return c.Next()
	}
}
