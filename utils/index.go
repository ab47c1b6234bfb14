package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SuccessResponse trả về envelope chuẩn {success, message, data}.
// data không bao giờ là null — rỗng thì trả về object trống.
func SuccessResponse(c *fiber.Ctx, status int, message string, data any) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    fiber.Map{},
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	if err != nil {
		log.Printf("%s (%s): %v", message, keyError, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"success":  false,
		"message":  message,
		"keyError": keyError,
		"data":     fiber.Map{},
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	// Kiểm tra nếu có limit thì thêm điều kiện Limit
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Ptr[T any](v T) *T {
	return &v
}
