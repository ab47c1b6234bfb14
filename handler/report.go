package handler

import (
	"errors"
	"time"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func requireAdmin(c *fiber.Ctx) error {
	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	return nil
}

func productTotalsResponse(c *fiber.Ctx, totals []utils.ProductTotal, err error) error {
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	labels := make([]string, 0, len(totals))
	values := make([]float64, 0, len(totals))
	for _, row := range totals {
		labels = append(labels, row.Name)
		values = append(values, row.Total)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Report retrieved successfully", fiber.Map{
		"labels": labels,
		"values": values,
	})
}

func GetTopSellingProducts(c *fiber.Ctx) error {
	if resp := requireAdmin(c); resp != nil {
		return resp
	}
	totals, err := utils.TopSellingProducts(database.DB, 5, true)
	return productTotalsResponse(c, totals, err)
}

func GetLeastSellingProducts(c *fiber.Ctx) error {
	if resp := requireAdmin(c); resp != nil {
		return resp
	}
	totals, err := utils.TopSellingProducts(database.DB, 5, false)
	return productTotalsResponse(c, totals, err)
}

// GetProductRevenue tính doanh thu theo giá chụp trên order_items.
func GetProductRevenue(c *fiber.Ctx) error {
	if resp := requireAdmin(c); resp != nil {
		return resp
	}
	totals, err := utils.ProductRevenue(database.DB)
	return productTotalsResponse(c, totals, err)
}

func GetStockLevels(c *fiber.Ctx) error {
	if resp := requireAdmin(c); resp != nil {
		return resp
	}
	db := database.DB

	var products []model.Product
	if err := db.Order("stock_quantity ASC").Limit(10).Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	labels := make([]string, 0, len(products))
	values := make([]float64, 0, len(products))
	for i := range products {
		labels = append(labels, products[i].Name)
		values = append(values, float64(products[i].StockQuantity))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Report retrieved successfully", fiber.Map{
		"labels": labels,
		"values": values,
	})
}

// GetProductDistribution đếm sản phẩm theo category. Chỉ trả các nhóm có
// sản phẩm, sản phẩm chưa phân loại gom vào nhóm Uncategorized.
func GetProductDistribution(c *fiber.Ctx) error {
	if resp := requireAdmin(c); resp != nil {
		return resp
	}
	db := database.DB

	var rows []struct {
		Name  string
		Total float64
	}
	err := db.Model(&model.Product{}).
		Select("COALESCE(categories.name, 'Uncategorized') AS name, COUNT(products.id) AS total").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Group("categories.name").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	labels := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Name)
		values = append(values, row.Total)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Report retrieved successfully", fiber.Map{
		"labels": labels,
		"values": values,
	})
}

func GetSalesReport(c *fiber.Ctx) error {
	if resp := requireAdmin(c); resp != nil {
		return resp
	}
	db := database.DB
	now := time.Now()

	var series utils.SalesSeries
	var err error
	switch c.Query("period", "week") {
	case "day":
		series, err = utils.SalesByDay(db, now)
	case "week":
		series, err = utils.SalesByWeek(db, now)
	case "month":
		series, err = utils.SalesByMonth(db, now)
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("period must be day, week or month"))
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Report retrieved successfully", fiber.Map{
		"labels": series.Labels,
		"values": series.Values,
	})
}
