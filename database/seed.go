package database

import (
	"log"

	"shop_manager/constants"
	"shop_manager/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin12345"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{Name: "Administrator", Email: "admin@shop.local", Password: hashPassword, Role: constants.ROLE_ADMIN},
	}

	for _, user := range users {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed data for user:", user.Email, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Điện thoại", Slug: slug.Make("Điện thoại")},
		{Name: "Laptop", Slug: slug.Make("Laptop")},
		{Name: "Phụ kiện", Slug: slug.Make("Phụ kiện")},
	}

	for _, category := range categories {
		if err := db.Where(model.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed data for category:", category.Name, "error:", err)
		}
	}
}
