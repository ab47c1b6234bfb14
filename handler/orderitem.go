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

func transformOrderItem(item *model.OrderItem) fiber.Map {
	productName := ""
	if item.Product != nil {
		productName = item.Product.Name
	}

	return fiber.Map{
		"id":           item.ID,
		"order_id":     item.OrderId,
		"product_id":   item.ProductId,
		"product_name": productName,
		"quantity":     item.Quantity,
		"price":        item.Price,
		"subtotal":     item.Price * float64(item.Quantity),
		"created_at":   item.CreatedAt,
		"updated_at":   item.UpdatedAt,
	}
}

// loadOwnedOrder lấy đơn theo id, giới hạn về đơn của caller trừ khi là admin.
func loadOwnedOrder(c *fiber.Ctx, orderId uint) (*model.Order, error) {
	db := database.DB

	claim, user, isAdmin := helper.GetInfoUserFromToken(c)
	if user == nil {
		return nil, errors.New("not logged in")
	}

	condition := db.Model(&model.Order{})
	if !isAdmin {
		condition = condition.Where("user_id = ?", claim.UserId)
	}

	var order model.Order
	if err := condition.First(&order, orderId).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func GetOrderItems(c *fiber.Ctx) error {
	db := database.DB

	orderId := c.Locals("inputId").(int)
	order, err := loadOwnedOrder(c, uint(orderId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	var items []model.OrderItem
	if err := db.Preload("Product").Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]fiber.Map, 0, len(items))
	for i := range items {
		rows = append(rows, transformOrderItem(&items[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Order items retrieved successfully", rows)
}

func AddOrderItem(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputAddOrderItem").(model.AddOrderItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	order, err := loadOwnedOrder(c, input.OrderId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	var product model.Product
	if err := db.First(&product, input.ProductId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	item := model.OrderItem{
		OrderId:   order.ID,
		ProductId: product.ID,
		Quantity:  input.Quantity,
		Price:     product.Price, // chụp giá tại thời điểm thêm vào đơn
		CreatedBy: &claim.UserId,
	}
	if err := db.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Product").First(&item, item.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Order item added successfully", transformOrderItem(&item))
}

func GetOrderItemById(c *fiber.Ctx) error {
	db := database.DB

	itemId := c.Locals("inputId").(int)
	var item model.OrderItem
	if err := db.Preload("Product").First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order item not found", err)
	}

	if _, err := loadOwnedOrder(c, item.OrderId); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order item not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order item retrieved successfully", transformOrderItem(&item))
}

// EditOrderItem chỉ đổi số lượng, giá chụp giữ nguyên.
func EditOrderItem(c *fiber.Ctx) error {
	db := database.DB

	itemId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputUpdateOrderItem").(model.UpdateOrderItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var item model.OrderItem
	if err := db.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order item not found", err)
	}
	if _, err := loadOwnedOrder(c, item.OrderId); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order item not found", err)
	}

	item.Quantity = input.Quantity
	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("Product").First(&item, item.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, "Order item updated successfully", transformOrderItem(&item))
}

func DeleteOrderItem(c *fiber.Ctx) error {
	db := database.DB

	itemId := c.Locals("inputId").(int)
	var item model.OrderItem
	if err := db.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order item not found", err)
	}
	if _, err := loadOwnedOrder(c, item.OrderId); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order item not found", err)
	}

	if err := db.Delete(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order item deleted successfully", nil)
}
