package model

import "gorm.io/gorm"

type Product struct {
	DTO
	CategoryId    *uint          `json:"category_id"`
	Category      *Category      `gorm:"foreignKey:CategoryId;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Name          string         `gorm:"not null" json:"name"`
	Description   *string        `json:"description"`
	Price         float64        `gorm:"type:decimal(12,2);default:0" json:"price"`
	ComparePrice  float64        `gorm:"type:decimal(12,2);default:0" json:"compare_price"`
	Sku           string         `gorm:"uniqueIndex;not null" json:"sku"`
	Image         *string        `json:"image"`
	Status        string         `gorm:"type:varchar(20);default:active" json:"status"` // active | inactive
	StockQuantity int            `gorm:"default:0" json:"stock_quantity"`
	LowStockAlert int            `gorm:"default:0" json:"low_stock_alert"`
	CreatedBy     *uint          `json:"created_by"`
	Creator       *User          `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

type Products []Product

type CreateProductInput struct {
	Name          string   `validate:"required,max=255" json:"name" form:"name"`
	CategoryId    *uint    `json:"category_id" form:"category_id"`
	Description   *string  `json:"description" form:"description"`
	Price         *float64 `validate:"required,gte=0" json:"price" form:"price"`
	ComparePrice  *float64 `validate:"omitempty,gte=0" json:"compare_price" form:"compare_price"`
	Sku           *string  `json:"sku" form:"sku"`
	Status        string   `validate:"required,oneof=active inactive" json:"status" form:"status"`
	StockQuantity *int     `validate:"required,gte=0" json:"stock_quantity" form:"stock_quantity"`
	LowStockAlert *int     `validate:"omitempty,gte=0" json:"low_stock_alert" form:"low_stock_alert"`
}

type UpdateProductInput struct {
	Name          string   `validate:"required,max=255" json:"name" form:"name"`
	CategoryId    *uint    `json:"category_id" form:"category_id"`
	Description   *string  `json:"description" form:"description"`
	Price         *float64 `validate:"required,gte=0" json:"price" form:"price"`
	ComparePrice  *float64 `validate:"omitempty,gte=0" json:"compare_price" form:"compare_price"`
	Status        string   `validate:"required,oneof=active inactive" json:"status" form:"status"`
	StockQuantity *int     `validate:"required,gte=0" json:"stock_quantity" form:"stock_quantity"`
	LowStockAlert *int     `validate:"omitempty,gte=0" json:"low_stock_alert" form:"low_stock_alert"`
}

type FilterProduct struct {
	Pagination
	Search     string `query:"search" json:"search"`
	CategoryId *uint  `query:"category_id" json:"category_id"`
	Sort       string `query:"sort" json:"sort"`
}
