package handler

import (
	"errors"
	"strings"
	"time"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func transformCartItem(item *model.CartItem) fiber.Map {
	var product fiber.Map
	lineTotal := 0.0
	if item.Product != nil {
		product = transformProduct(item.Product)
		lineTotal = item.Product.Price * float64(item.Quantity)
	}

	return fiber.Map{
		"id":         item.ID,
		"user_id":    item.UserId,
		"product_id": item.ProductId,
		"product":    product,
		"quantity":   item.Quantity,
		"line_total": lineTotal,
		"created_at": item.CreatedAt,
		"updated_at": item.UpdatedAt,
	}
}

func GetMyCartItems(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	filterInput := new(model.FilterCartItem)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.CartItem{}).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", claim.UserId).
		Preload("Product", func(tx *gorm.DB) *gorm.DB { return tx.Preload("Category") })

	if filterInput.Search != "" {
		condition = condition.Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(filterInput.Search)+"%")
	}

	switch filterInput.Sort {
	case "price_asc":
		condition = condition.Order("products.price ASC")
	case "price_desc":
		condition = condition.Order("products.price DESC")
	case "name_asc":
		condition = condition.Order("products.name ASC")
	case "name_desc":
		condition = condition.Order("products.name DESC")
	default:
		condition = condition.Order("cart_items.created_at DESC")
	}

	var items []model.CartItem
	if err := condition.Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]fiber.Map, 0, len(items))
	for i := range items {
		rows = append(rows, transformCartItem(&items[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Cart items retrieved successfully", rows)
}

// GetAllCartItems cho admin xem giỏ hàng của mọi user.
func GetAllCartItems(c *fiber.Ctx) error {
	db := database.DB

	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	filterInput := new(model.FilterCartItem)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.CartItem{}).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Joins("JOIN users ON users.id = cart_items.user_id").
		Preload("Product").Preload("User")

	// Tìm theo tên sản phẩm hoặc tên người mua
	if filterInput.Search != "" {
		pattern := "%" + strings.ToLower(filterInput.Search) + "%"
		condition = condition.Where("LOWER(products.name) LIKE ? OR LOWER(users.name) LIKE ?", pattern, pattern)
	}

	switch filterInput.Sort {
	case "price_asc":
		condition = condition.Order("products.price ASC")
	case "price_desc":
		condition = condition.Order("products.price DESC")
	case "name_asc":
		condition = condition.Order("products.name ASC")
	case "name_desc":
		condition = condition.Order("products.name DESC")
	default:
		condition = condition.Order("cart_items.created_at DESC")
	}

	var items []model.CartItem
	if err := condition.Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Cart items retrieved successfully", items)
}

func AddCartItem(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputAddCartItem").(model.AddCartItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var product model.Product
	if err := db.First(&product, input.ProductId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	item := model.CartItem{
		UserId:    claim.UserId,
		ProductId: input.ProductId,
		Quantity:  input.Quantity,
		CreatedBy: &claim.UserId,
	}

	// Đã có trong giỏ thì cộng dồn số lượng. Upsert một câu lệnh để hai lần
	// thêm đồng thời không ghi đè nhau và không vỡ unique index.
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + excluded.quantity"),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Product").
		Where("user_id = ? AND product_id = ?", claim.UserId, input.ProductId).
		First(&item)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Item added to cart", transformCartItem(&item))
}

func EditCartItem(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	itemId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputUpdateCartItem").(model.UpdateCartItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var item model.CartItem
	if err := db.Where("id = ? AND user_id = ?", itemId, claim.UserId).First(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cart item not found", err)
	}

	// Update ghi đè số lượng, không cộng dồn như Add
	item.Quantity = input.Quantity
	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("Product").First(&item, item.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, "Cart item updated successfully", transformCartItem(&item))
}

func DeleteCartItem(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	itemId := c.Locals("inputId").(int)
	var item model.CartItem
	if err := db.Where("id = ? AND user_id = ?", itemId, claim.UserId).First(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cart item not found", err)
	}

	if err := db.Delete(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Cart item deleted successfully", nil)
}
