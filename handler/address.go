package handler

import (
	"errors"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAddresses(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var addresses []model.Address
	if err := db.Where("user_id = ?", claim.UserId).Order("created_at DESC").Find(&addresses).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Addresses retrieved successfully", addresses)
}

func CreateAddress(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputCreateAddress").(model.CreateAddressInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	newAddress := model.Address{
		UserId:    claim.UserId,
		FullName:  input.FullName,
		Phone:     input.Phone,
		Province:  input.Province,
		District:  input.District,
		Street:    input.Street,
		IsDefault: input.IsDefault,
		CreatedBy: &claim.UserId,
	}

	// Mỗi user chỉ có một địa chỉ mặc định, gỡ cờ các địa chỉ cũ trong cùng transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		if input.IsDefault {
			// Khóa bản ghi user để hai request set default đồng thời phải xếp hàng
			var owner model.User
			if err := database.LockForUpdate(tx).First(&owner, claim.UserId).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Address{}).
				Where("user_id = ? AND is_default = ?", claim.UserId, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&newAddress).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Address created successfully", newAddress)
}

// GetDefaultAddress trả 404 khi user chưa đặt địa chỉ mặc định.
func GetDefaultAddress(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var address model.Address
	if err := db.Where("user_id = ? AND is_default = ?", claim.UserId, true).First(&address).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No default address found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Default address retrieved successfully", address)
}

func GetAddressById(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	addressId := c.Locals("inputId").(int)
	var address model.Address
	if err := db.Where("id = ? AND user_id = ?", addressId, claim.UserId).First(&address).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Address not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Address retrieved successfully", address)
}

func EditAddress(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	addressId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputUpdateAddress").(model.UpdateAddressInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var address model.Address
	if err := db.Where("id = ? AND user_id = ?", addressId, claim.UserId).First(&address).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Address not found", err)
	}

	address.FullName = input.FullName
	address.Phone = input.Phone
	address.Province = input.Province
	address.District = input.District
	address.Street = input.Street
	address.IsDefault = input.IsDefault

	err := db.Transaction(func(tx *gorm.DB) error {
		if input.IsDefault {
			var owner model.User
			if err := database.LockForUpdate(tx).First(&owner, claim.UserId).Error; err != nil {
				return err
			}
			// Gỡ cờ các địa chỉ khác, trừ chính nó
			if err := tx.Model(&model.Address{}).
				Where("user_id = ? AND is_default = ? AND id <> ?", claim.UserId, true, address.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(&address).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Address updated successfully", address)
}

func DeleteAddress(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	addressId := c.Locals("inputId").(int)
	var address model.Address
	if err := db.Where("id = ? AND user_id = ?", addressId, claim.UserId).First(&address).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Address not found", err)
	}

	if err := db.Delete(&address).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Address deleted successfully", nil)
}
