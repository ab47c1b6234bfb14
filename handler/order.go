package handler

import (
	"encoding/base64"
	"errors"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func transformOrder(order *model.Order) fiber.Map {
	var address fiber.Map
	if order.Address != nil {
		address = fiber.Map{
			"id":        order.Address.ID,
			"full_name": order.Address.FullName,
			"phone":     order.Address.Phone,
			"province":  order.Address.Province,
			"district":  order.Address.District,
			"street":    order.Address.Street,
		}
	}

	items := make([]fiber.Map, 0, len(order.Items))
	for i := range order.Items {
		items = append(items, transformOrderItem(&order.Items[i]))
	}

	return fiber.Map{
		"id":          order.ID,
		"public_code": order.PublicCode,
		"user_id":     order.UserId,
		"address":     address,
		"amounts": fiber.Map{
			"subtotal":     order.Subtotal,
			"shipping_fee": order.ShippingFee,
			"discount":     order.Discount,
			"total_amount": order.TotalAmount,
		},
		"status": fiber.Map{
			"order":   order.Status,
			"payment": order.PaymentStatus,
		},
		"items":      items,
		"created_at": order.CreatedAt,
		"updated_at": order.UpdatedAt,
	}
}

func GetMyOrders(c *fiber.Ctx) error {
	db := database.DB

	claim, user, isAdmin := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	condition := db.Model(&model.Order{}).
		Preload("Address").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC")
	// Admin xem tất cả đơn, customer chỉ thấy đơn của mình
	if !isAdmin {
		condition = condition.Where("user_id = ?", claim.UserId)
	}

	var orders model.Orders
	if err := condition.Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]fiber.Map, 0, len(orders))
	for i := range orders {
		rows = append(rows, transformOrder(&orders[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Orders retrieved successfully", rows)
}

func CreateOrder(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	// Địa chỉ phải tồn tại và thuộc về chính người đặt
	var address model.Address
	if err := db.Where("id = ? AND user_id = ?", input.AddressId, claim.UserId).First(&address).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Address not found", err)
	}

	shippingFee := 0.0
	if input.ShippingFee != nil {
		shippingFee = *input.ShippingFee
	}
	discount := 0.0
	if input.Discount != nil {
		discount = *input.Discount
	}

	newOrder := model.Order{
		PublicCode:    helper.GenerateOrderCode(),
		UserId:        claim.UserId,
		AddressId:     address.ID,
		Subtotal:      *input.Subtotal,
		ShippingFee:   shippingFee,
		Discount:      discount,
		TotalAmount:   *input.Subtotal + shippingFee - discount,
		Status:        constants.ORDER_PENDING,
		PaymentStatus: constants.PAYMENT_UNPAID,
		CreatedBy:     &claim.UserId,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newOrder).Error; err != nil {
			return err
		}
		for _, line := range input.Items {
			var product model.Product
			if err := tx.First(&product, line.ProductId).Error; err != nil {
				return err
			}
			item := model.OrderItem{
				OrderId:   newOrder.ID,
				ProductId: product.ID,
				Quantity:  line.Quantity,
				Price:     product.Price, // chụp giá tại thời điểm đặt
				CreatedBy: &claim.UserId,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Address").Preload("Items").Preload("Items.Product").First(&newOrder, newOrder.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Order created successfully", transformOrder(&newOrder))
}

func GetOrderById(c *fiber.Ctx) error {
	db := database.DB

	claim, user, isAdmin := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	orderId := c.Locals("inputId").(int)
	condition := db.Preload("Address").Preload("Items").Preload("Items.Product")
	if !isAdmin {
		condition = condition.Where("user_id = ?", claim.UserId)
	}

	var order model.Order
	if err := condition.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	response := transformOrder(&order)
	// QR mã đơn để quầy nhận hàng quét
	if png, err := utils.GenerateQRCode(order.PublicCode, 256); err == nil {
		response["qr_code"] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order retrieved successfully", response)
}

// EditOrder chỉ cho admin đổi trạng thái đơn và trạng thái thanh toán.
func EditOrder(c *fiber.Ctx) error {
	db := database.DB

	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	orderId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputUpdateOrder").(model.UpdateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var order model.Order
	if err := db.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		order.PaymentStatus = *input.PaymentStatus
	}

	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("Address").Preload("Items").Preload("Items.Product").First(&order, order.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, "Order updated successfully", transformOrder(&order))
}

// DeleteOrder không xoá bản ghi, chỉ chuyển đơn sang cancelled.
func DeleteOrder(c *fiber.Ctx) error {
	db := database.DB

	claim, user, isAdmin := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	orderId := c.Locals("inputId").(int)
	condition := db.Session(&gorm.Session{})
	if !isAdmin {
		condition = condition.Where("user_id = ?", claim.UserId)
	}

	var order model.Order
	if err := condition.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	order.Status = constants.ORDER_CANCELLED
	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order cancelled successfully", nil)
}
