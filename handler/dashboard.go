package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

const dashboardCacheKey = "dashboard:summary"
const dashboardCacheTTL = 60 * time.Second

// GetDashboard tổng hợp số liệu cho trang quản trị, cache redis 60s nếu có.
func GetDashboard(c *fiber.Ctx) error {
	db := database.DB

	_, user, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	currentUser := transformUser(user)

	if database.Redis != nil {
		if cached, err := database.Redis.Get(context.Background(), dashboardCacheKey).Result(); err == nil {
			var summary fiber.Map
			if json.Unmarshal([]byte(cached), &summary) == nil {
				summary["current_user"] = currentUser
				return utils.SuccessResponse(c, fiber.StatusOK, "Dashboard retrieved successfully", summary)
			}
		}
	}

	var totalOrders int64
	db.Model(&model.Order{}).Count(&totalOrders)

	var totalSales float64
	db.Model(&model.Order{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&totalSales)

	var totalCustomers int64
	db.Model(&model.User{}).Where("role = ?", constants.ROLE_CUSTOMER).Count(&totalCustomers)

	var totalProducts int64
	db.Model(&model.Product{}).Count(&totalProducts)

	weeklySales, err := utils.SalesByWeek(db, time.Now())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var lowStock []model.Product
	db.Where("status = ?", constants.PRODUCT_ACTIVE).
		Order("stock_quantity ASC").
		Limit(3).
		Find(&lowStock)

	lowStockRows := make([]fiber.Map, 0, len(lowStock))
	for i := range lowStock {
		lowStockRows = append(lowStockRows, fiber.Map{
			"id":             lowStock[i].ID,
			"name":           lowStock[i].Name,
			"stock_quantity": lowStock[i].StockQuantity,
		})
	}

	var newestUsers model.Users
	db.Preload("Creator").Order("created_at DESC").Limit(3).Find(&newestUsers)

	newestRows := make([]fiber.Map, 0, len(newestUsers))
	for i := range newestUsers {
		newestRows = append(newestRows, transformUser(&newestUsers[i]))
	}

	summary := fiber.Map{
		"totals": fiber.Map{
			"orders":    totalOrders,
			"sales":     totalSales,
			"customers": totalCustomers,
			"products":  totalProducts,
		},
		"weekly_sales": fiber.Map{
			"labels": weeklySales.Labels,
			"values": weeklySales.Values,
		},
		"low_stock_products": lowStockRows,
		"newest_users":       newestRows,
	}

	if database.Redis != nil {
		if payload, err := json.Marshal(summary); err == nil {
			database.Redis.Set(context.Background(), dashboardCacheKey, payload, dashboardCacheTTL)
		}
	}

	summary["current_user"] = currentUser
	return utils.SuccessResponse(c, fiber.StatusOK, "Dashboard retrieved successfully", summary)
}
