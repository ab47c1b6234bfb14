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
	"github.com/gosimple/slug"
)

func GetCategories(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterCategory)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	condition := db.Model(&model.Category{})
	if filterInput.Search != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.Search)+"%")
	}

	switch filterInput.Sort {
	case "name_asc":
		condition = condition.Order("name ASC")
	case "name_desc":
		condition = condition.Order("name DESC")
	default:
		condition = condition.Order("created_at DESC")
	}

	var categories []model.Category
	if err := condition.Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Categories retrieved successfully", categories)
}

func CreateCategory(c *fiber.Ctx) error {
	db := database.DB

	claim, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var count int64
	db.Model(&model.Category{}).Where("LOWER(name) = ?", strings.ToLower(input.Name)).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Category name already exists", nil, "name")
	}

	categorySlug := ""
	if input.Slug != nil && *input.Slug != "" {
		categorySlug = slug.Make(*input.Slug)
		db.Model(&model.Category{}).Where("slug = ?", categorySlug).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Category slug already exists", nil, "slug")
		}
	} else {
		categorySlug = helper.GenerateUniqueCategorySlug(db, input.Name)
	}

	newCategory := model.Category{
		Name:      input.Name,
		Slug:      categorySlug,
		CreatedBy: &claim.UserId,
	}
	if err := db.Create(&newCategory).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Category created successfully", newCategory)
}

func GetCategoryById(c *fiber.Ctx) error {
	db := database.DB

	categoryId := c.Locals("inputId").(int)
	var category model.Category
	if err := db.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category retrieved successfully", category)
}

func EditCategory(c *fiber.Ctx) error {
	db := database.DB

	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	categoryId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputUpdateCategory").(model.UpdateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var category model.Category
	if err := db.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	var count int64
	db.Model(&model.Category{}).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(input.Name), category.ID).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Category name already exists", nil, "name")
	}

	category.Name = input.Name
	if input.Slug != nil && *input.Slug != "" {
		newSlug := slug.Make(*input.Slug)
		db.Model(&model.Category{}).Where("slug = ? AND id <> ?", newSlug, category.ID).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Category slug already exists", nil, "slug")
		}
		category.Slug = newSlug
	}

	if err := db.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category updated successfully", category)
}

func DeleteCategory(c *fiber.Ctx) error {
	db := database.DB

	_, _, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	categoryId := c.Locals("inputId").(int)
	var category model.Category
	if err := db.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	// Sản phẩm thuộc category bị xoá sẽ về NULL nhờ FK SET NULL
	if err := db.Delete(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category deleted successfully", nil)
}
