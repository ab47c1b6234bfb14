package model

type Review struct {
	DTO
	UserId    uint     `gorm:"not null;uniqueIndex:idx_review_user_product" json:"user_id"`
	User      *User    `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	ProductId uint     `gorm:"not null;uniqueIndex:idx_review_user_product" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Rating    int      `gorm:"not null" json:"rating"` // 1..5
	Comment   *string  `json:"comment"`
	CreatedBy *uint    `json:"created_by"`
}

type CreateReviewInput struct {
	ProductId uint    `validate:"required" json:"product_id"`
	Rating    int     `validate:"required,gte=1,lte=5" json:"rating"`
	Comment   *string `json:"comment"`
}

type UpdateReviewInput struct {
	Rating  int     `validate:"required,gte=1,lte=5" json:"rating"`
	Comment *string `json:"comment"`
}
