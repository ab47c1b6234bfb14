package model

type CartItem struct {
	DTO
	UserId    uint     `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	User      *User    `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	ProductId uint     `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	CreatedBy *uint    `json:"created_by"`
}

type AddCartItemInput struct {
	ProductId uint `validate:"required" json:"product_id"`
	Quantity  int  `validate:"required,gte=1" json:"quantity"`
}

type UpdateCartItemInput struct {
	Quantity int `validate:"required,gte=1" json:"quantity"`
}

type FilterCartItem struct {
	Search string `query:"search" json:"search"`
	Sort   string `query:"sort" json:"sort"` // price_asc | price_desc | name_asc | name_desc
}
