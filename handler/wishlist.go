package handler

import (
	"errors"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetWishlist(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var entries []model.Wishlist
	err := db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", claim.UserId).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]fiber.Map, 0, len(entries))
	for i := range entries {
		var product fiber.Map
		if entries[i].Product != nil {
			product = transformProduct(entries[i].Product)
		}
		rows = append(rows, fiber.Map{
			"id":         entries[i].ID,
			"product_id": entries[i].ProductId,
			"product":    product,
			"created_at": entries[i].CreatedAt,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Wishlist retrieved successfully", rows)
}

func AddWishlistItem(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputAddWishlist").(model.AddWishlistInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var product model.Product
	if err := db.First(&product, input.ProductId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	var count int64
	db.Model(&model.Wishlist{}).
		Where("user_id = ? AND product_id = ?", claim.UserId, input.ProductId).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Product already in wishlist", nil)
	}

	entry := model.Wishlist{
		UserId:    claim.UserId,
		ProductId: input.ProductId,
		CreatedBy: &claim.UserId,
	}
	if err := db.Create(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Product").First(&entry, entry.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Product added to wishlist", entry)
}

func DeleteWishlistItem(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	entryId := c.Locals("inputId").(int)
	var entry model.Wishlist
	if err := db.Where("id = ? AND user_id = ?", entryId, claim.UserId).First(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Wishlist item not found", err)
	}

	if err := db.Delete(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Wishlist item removed successfully", nil)
}
