package model

type Wishlist struct {
	DTO
	UserId    uint     `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	User      *User    `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	ProductId uint     `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	CreatedBy *uint    `json:"created_by"`
}

type AddWishlistInput struct {
	ProductId uint `validate:"required" json:"product_id"`
}
