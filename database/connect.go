package database

import (
	"fmt"
	"strconv"

	"shop_manager/config"
	"shop_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)
	fmt.Println("Database Migrated")

	// khởi tạo dữ liệu
	SeedData(DB)
}

// LockForUpdate thêm SELECT ... FOR UPDATE cho câu truy vấn.
// SQLite không có cú pháp FOR UPDATE và chỉ cho một writer tại một thời điểm,
// nên bỏ qua khi chạy trên sqlite.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Migrate tách riêng để test dùng lại với sqlite
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.User{},
		&model.PasswordResetToken{},
		&model.Category{},
		&model.Product{},
		&model.Address{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
		&model.Wishlist{},
	)
}
