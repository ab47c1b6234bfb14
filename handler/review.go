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

func transformReview(review *model.Review) fiber.Map {
	comment := ""
	if review.Comment != nil {
		comment = *review.Comment
	}

	var reviewer fiber.Map
	if review.User != nil {
		reviewer = fiber.Map{
			"id":   review.User.ID,
			"name": review.User.Name,
		}
	}

	return fiber.Map{
		"id":         review.ID,
		"user_id":    review.UserId,
		"user":       reviewer,
		"product_id": review.ProductId,
		"rating":     review.Rating,
		"comment":    comment,
		"created_at": review.CreatedAt,
		"updated_at": review.UpdatedAt,
	}
}

func GetReviews(c *fiber.Ctx) error {
	db := database.DB

	condition := db.Model(&model.Review{}).Preload("User").Order("created_at DESC")
	if productId := c.QueryInt("product_id"); productId > 0 {
		condition = condition.Where("product_id = ?", productId)
	}

	var reviews []model.Review
	if err := condition.Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]fiber.Map, 0, len(reviews))
	for i := range reviews {
		rows = append(rows, transformReview(&reviews[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", rows)
}

func CreateReview(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input, ok := c.Locals("inputCreateReview").(model.CreateReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var product model.Product
	if err := db.First(&product, input.ProductId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	// Mỗi user chỉ được đánh giá một sản phẩm một lần
	var count int64
	db.Model(&model.Review{}).
		Where("user_id = ? AND product_id = ?", claim.UserId, input.ProductId).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "You already reviewed this product", nil)
	}

	newReview := model.Review{
		UserId:    claim.UserId,
		ProductId: input.ProductId,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedBy: &claim.UserId,
	}
	if err := db.Create(&newReview).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("User").First(&newReview, newReview.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Review created successfully", transformReview(&newReview))
}

func GetReviewById(c *fiber.Ctx) error {
	db := database.DB

	reviewId := c.Locals("inputId").(int)
	var review model.Review
	if err := db.Preload("User").First(&review, reviewId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Review not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review retrieved successfully", transformReview(&review))
}

func EditReview(c *fiber.Ctx) error {
	db := database.DB

	claim, user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	reviewId := c.Locals("inputId").(int)
	input, ok := c.Locals("inputUpdateReview").(model.UpdateReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var review model.Review
	if err := db.Where("id = ? AND user_id = ?", reviewId, claim.UserId).First(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Review not found", err)
	}

	review.Rating = input.Rating
	if input.Comment != nil {
		review.Comment = input.Comment
	}

	if err := db.Save(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("User").First(&review, review.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, "Review updated successfully", transformReview(&review))
}

func DeleteReview(c *fiber.Ctx) error {
	db := database.DB

	claim, user, isAdmin := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	reviewId := c.Locals("inputId").(int)
	condition := db.Model(&model.Review{})
	// Admin gỡ được mọi review, user chỉ gỡ review của mình
	if !isAdmin {
		condition = condition.Where("user_id = ?", claim.UserId)
	}

	var review model.Review
	if err := condition.First(&review, reviewId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Review not found", err)
	}

	if err := db.Delete(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review deleted successfully", nil)
}
