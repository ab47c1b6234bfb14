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

func transformProduct(p *model.Product) fiber.Map {
	description := ""
	if p.Description != nil {
		description = *p.Description
	}
	image := ""
	if p.Image != nil {
		image = *p.Image
	}

	var category fiber.Map
	if p.Category != nil {
		category = fiber.Map{
			"id":   p.Category.ID,
			"name": p.Category.Name,
			"slug": p.Category.Slug,
		}
	}

	return fiber.Map{
		"id":              p.ID,
		"category_id":     p.CategoryId,
		"category":        category,
		"name":            p.Name,
		"description":     description,
		"price":           p.Price,
		"compare_price":   p.ComparePrice,
		"sku":             p.Sku,
		"image":           image,
		"status":          p.Status,
		"stock_quantity":  p.StockQuantity,
		"low_stock_alert": p.LowStockAlert,
		"created_at":      p.CreatedAt,
		"updated_at":      p.UpdatedAt,
	}
}

func GetProducts(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterProduct)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.Product{}).Preload("Category")
	if filterInput.Search != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.Search)+"%")
	}
	if filterInput.CategoryId != nil {
		condition = condition.Where("category_id = ?", *filterInput.CategoryId)
	}

	switch filterInput.Sort {
	case "price_asc":
		condition = condition.Order("price ASC")
	case "price_desc":
		condition = condition.Order("price DESC")
	case "name_asc":
		condition = condition.Order("name ASC")
	case "name_desc":
		condition = condition.Order("name DESC")
	default:
		condition = condition.Order("created_at DESC")
	}

	var totalCount int64
	if err := condition.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var products []model.Product
	if err := condition.Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]fiber.Map, 0, len(products))
	for i := range products {
		rows = append(rows, transformProduct(&products[i]))
	}

	response := model.ResponseCustom{
		Rows:       rows,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Products retrieved successfully", response)
}

// GetAvailableProducts chỉ trả sản phẩm active còn hàng, filter và phân trang
// giống danh sách thường.
func GetAvailableProducts(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterProduct)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.Product{}).Preload("Category").
		Where("status = ? AND stock_quantity > 0", constants.PRODUCT_ACTIVE)
	if filterInput.Search != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.Search)+"%")
	}
	if filterInput.CategoryId != nil {
		condition = condition.Where("category_id = ?", *filterInput.CategoryId)
	}

	switch filterInput.Sort {
	case "price_asc":
		condition = condition.Order("price ASC")
	case "price_desc":
		condition = condition.Order("price DESC")
	case "name_asc":
		condition = condition.Order("name ASC")
	case "name_desc":
		condition = condition.Order("name DESC")
	default:
		condition = condition.Order("created_at DESC")
	}

	var totalCount int64
	if err := condition.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var products []model.Product
	if err := condition.Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]fiber.Map, 0, len(products))
	for i := range products {
		rows = append(rows, transformProduct(&products[i]))
	}

	response := model.ResponseCustom{
		Rows:       rows,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Products retrieved successfully", response)
}

func CreateProduct(c *fiber.Ctx) error {
	db := database.DB

	claim, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("inputCreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	if input.CategoryId != nil {
		var category model.Category
		if err := db.First(&category, *input.CategoryId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
		}
	}

	sku := helper.GenerateSKU()
	if input.Sku != nil && *input.Sku != "" {
		sku = *input.Sku
		var count int64
		db.Model(&model.Product{}).Where("sku = ?", sku).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "SKU already exists", nil, "sku")
		}
	}

	newProduct := model.Product{
		CategoryId:    input.CategoryId,
		Name:          input.Name,
		Description:   input.Description,
		Price:         *input.Price,
		Sku:           sku,
		Status:        input.Status,
		StockQuantity: *input.StockQuantity,
		CreatedBy:     &claim.UserId,
	}
	if input.ComparePrice != nil {
		newProduct.ComparePrice = *input.ComparePrice
	}
	if input.LowStockAlert != nil {
		newProduct.LowStockAlert = *input.LowStockAlert
	}

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		path, err := helper.UploadImage(fileHeader, "products")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
		}
		newProduct.Image = &path
	}

	if err := db.Create(&newProduct).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Category").First(&newProduct, newProduct.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Product created successfully", transformProduct(&newProduct))
}

func GetProductById(c *fiber.Ctx) error {
	db := database.DB

	productId := c.Locals("inputId").(int)
	var product model.Product
	if err := db.Preload("Category").First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Product retrieved successfully", transformProduct(&product))
}

func EditProduct(c *fiber.Ctx) error {
	db := database.DB

	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	productId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputUpdateProduct").(model.UpdateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	if input.CategoryId != nil {
		var category model.Category
		if err := db.First(&category, *input.CategoryId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
		}
		product.CategoryId = input.CategoryId
	}

	product.Name = input.Name
	product.Price = *input.Price
	product.Status = input.Status
	product.StockQuantity = *input.StockQuantity
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.ComparePrice != nil {
		product.ComparePrice = *input.ComparePrice
	}
	if input.LowStockAlert != nil {
		product.LowStockAlert = *input.LowStockAlert
	}

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		path, err := helper.UploadImage(fileHeader, "products")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
		}
		product.Image = &path
	}

	if err := db.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("Category").First(&product, product.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, "Product updated successfully", transformProduct(&product))
}

func DeleteProduct(c *fiber.Ctx) error {
	db := database.DB

	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	productId := c.Locals("inputId").(int)
	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	// Soft delete, đơn cũ vẫn giữ được tham chiếu sản phẩm
	if err := db.Delete(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Product deleted successfully", nil)
}
