package handler

import (
	"errors"
	"strings"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// transformUser trả về user kèm creator; creator chưa gán thì mặc định là chính mình.
func transformUser(u *model.User) fiber.Map {
	phone := ""
	if u.Phone != nil {
		phone = *u.Phone
	}
	avatar := ""
	if u.Avatar != nil {
		avatar = *u.Avatar
	}

	createdBy := u.ID
	creator := fiber.Map{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
	if u.CreatedBy != nil {
		createdBy = *u.CreatedBy
		if u.Creator != nil {
			creator = fiber.Map{
				"id":    u.Creator.ID,
				"name":  u.Creator.Name,
				"email": u.Creator.Email,
			}
		}
	}

	return fiber.Map{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"phone":      phone,
		"role":       u.Role,
		"avatar":     avatar,
		"created_by": createdBy,
		"creator":    creator,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func GetUsers(c *fiber.Ctx) error {
	db := database.DB

	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	filterInput := new(model.FilterUser)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.User{}).Preload("Creator")
	if filterInput.Search != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.Search)+"%")
	}
	if filterInput.Role != nil {
		condition = condition.Where("role = ?", *filterInput.Role)
	}

	switch filterInput.Sort {
	case "name_asc":
		condition = condition.Order("name ASC")
	case "name_desc":
		condition = condition.Order("name DESC")
	case "role":
		condition = condition.Order("role ASC")
	default:
		condition = condition.Order("created_at DESC")
	}

	var users model.Users
	if err := condition.Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := make([]fiber.Map, 0, len(users))
	for i := range users {
		response = append(response, transformUser(&users[i]))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Users retrieved successfully", response)
}

func CreateUser(c *fiber.Ctx) error {
	db := database.DB

	claim, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("inputCreateUser").(model.CreateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "email")
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Email already taken", nil, "email")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	newUser := model.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  hash,
		Phone:     input.Phone,
		Role:      input.Role,
		CreatedBy: &claim.UserId,
	}

	// Avatar upload (tùy chọn, multipart)
	if fileHeader, err := c.FormFile("avatar"); err == nil && fileHeader != nil {
		path, err := helper.UploadImage(fileHeader, "avatars")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Avatar upload failed", err)
		}
		newUser.Avatar = &path
	}

	if err := db.Create(&newUser).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Creator").First(&newUser, newUser.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "User created successfully", transformUser(&newUser))
}

func GetUserById(c *fiber.Ctx) error {
	db := database.DB

	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	userId := c.Locals("inputId").(int)
	var user model.User
	if err := db.Preload("Creator").First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User retrieved successfully", transformUser(&user))
}

func EditUser(c *fiber.Ctx) error {
	db := database.DB

	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	userId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputUpdateUser").(model.UpdateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	// Email đổi sang địa chỉ đã có thì từ chối
	if input.Email != user.Email {
		existing, err := helper.GetUserByEmail(input.Email)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if existing != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Email already taken", nil, "email")
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Phone = input.Phone
	user.Role = input.Role

	if input.Password != nil {
		hash, err := helper.HashPassword(*input.Password)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
		}
		user.Password = hash
	}

	if fileHeader, err := c.FormFile("avatar"); err == nil && fileHeader != nil {
		path, err := helper.UploadImage(fileHeader, "avatars")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Avatar upload failed", err)
		}
		user.Avatar = &path
	}

	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("Creator").First(&user, user.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, "User updated successfully", transformUser(&user))
}

func DeleteUser(c *fiber.Ctx) error {
	db := database.DB

	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	userId := c.Locals("inputId").(int)
	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	if err := db.Delete(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User deleted successfully", nil)
}

// Me trả về hồ sơ của chính người gọi.
func Me(c *fiber.Ctx) error {
	_, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	database.DB.Preload("Creator").First(user, user.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, "Profile retrieved successfully", transformUser(user))
}

func UpdateProfile(c *fiber.Ctx) error {
	db := database.DB

	_, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputUpdateProfile").(model.UpdateProfileInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		existing, err := helper.GetUserByEmail(*input.Email)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if existing != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Email already taken", nil, "email")
		}
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Password != nil {
		hash, err := helper.HashPassword(*input.Password)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
		}
		user.Password = hash
	}

	if fileHeader, err := c.FormFile("avatar"); err == nil && fileHeader != nil {
		path, err := helper.UploadImage(fileHeader, "avatars")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Avatar upload failed", err)
		}
		user.Avatar = &path
	}

	if err := db.Save(user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("Creator").First(user, user.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, "User updated successfully", transformUser(user))
}
