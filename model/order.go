package model

type Order struct {
	DTO
	PublicCode    string      `gorm:"unique;size:20" json:"public_code"` // Mã đơn hàng công khai (ORD-XXXXXXXX)
	UserId        uint        `gorm:"not null;index" json:"user_id"`
	User          *User       `gorm:"foreignKey:UserId" json:"user,omitempty"`
	AddressId     uint        `gorm:"not null" json:"address_id"`
	Address       *Address    `gorm:"foreignKey:AddressId" json:"address,omitempty"`
	Subtotal      float64     `gorm:"type:decimal(12,2);default:0" json:"subtotal"`
	ShippingFee   float64     `gorm:"type:decimal(12,2);default:0" json:"shipping_fee"`
	Discount      float64     `gorm:"type:decimal(12,2);default:0" json:"discount"`
	TotalAmount   float64     `gorm:"type:decimal(12,2);default:0" json:"total_amount"`
	Status        string      `gorm:"type:varchar(20);default:pending" json:"status"`         // pending | paid | shipped | completed | cancelled
	PaymentStatus string      `gorm:"type:varchar(20);default:unpaid" json:"payment_status"` // unpaid | paid | refunded
	Items         []OrderItem `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedBy     *uint       `json:"created_by"`
}

type Orders []Order

// OrderItem.Price là giá chụp tại thời điểm đặt hàng, không bao giờ tính lại.
type OrderItem struct {
	DTO
	OrderId   uint     `gorm:"not null;index" json:"order_id"`
	Order     *Order   `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"-"`
	ProductId uint     `gorm:"not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductId" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Price     float64  `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedBy *uint    `json:"created_by"`
}

type OrderLineInput struct {
	ProductId uint `validate:"required" json:"product_id"`
	Quantity  int  `validate:"required,gte=1" json:"quantity"`
}

type CreateOrderInput struct {
	AddressId   uint             `validate:"required" json:"address_id"`
	Subtotal    *float64         `validate:"required,gte=0" json:"subtotal"`
	ShippingFee *float64         `validate:"omitempty,gte=0" json:"shipping_fee"`
	Discount    *float64         `validate:"omitempty,gte=0" json:"discount"`
	Items       []OrderLineInput `validate:"omitempty,dive" json:"items"`
}

type UpdateOrderInput struct {
	Status        *string `validate:"omitempty,oneof=pending paid shipped completed cancelled" json:"status"`
	PaymentStatus *string `validate:"omitempty,oneof=unpaid paid refunded" json:"payment_status"`
}

type AddOrderItemInput struct {
	OrderId   uint `validate:"required" json:"order_id"`
	ProductId uint `validate:"required" json:"product_id"`
	Quantity  int  `validate:"required,gte=1" json:"quantity"`
}

type UpdateOrderItemInput struct {
	Quantity int `validate:"required,gte=1" json:"quantity"`
}
