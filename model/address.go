package model

type Address struct {
	DTO
	UserId    uint   `gorm:"not null;index" json:"user_id"`
	User      *User  `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	FullName  string `gorm:"not null" json:"full_name"`
	Phone     string `gorm:"not null" json:"phone"`
	Province  string `gorm:"not null" json:"province"` // Tỉnh
	District  string `gorm:"not null" json:"district"` // Huyện
	Street    string `gorm:"not null" json:"street"`
	IsDefault bool   `gorm:"default:false" json:"is_default"`
	CreatedBy *uint  `json:"created_by"`
	Creator   *User  `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
}

type CreateAddressInput struct {
	FullName  string `validate:"required,max=255" json:"full_name"`
	Phone     string `validate:"required,max=30" json:"phone"`
	Province  string `validate:"required,max=255" json:"province"`
	District  string `validate:"required,max=255" json:"district"`
	Street    string `validate:"required,max=255" json:"street"`
	IsDefault bool   `json:"is_default"`
}

type UpdateAddressInput struct {
	FullName  string `validate:"required,max=255" json:"full_name"`
	Phone     string `validate:"required,max=30" json:"phone"`
	Province  string `validate:"required,max=255" json:"province"`
	District  string `validate:"required,max=255" json:"district"`
	Street    string `validate:"required,max=255" json:"street"`
	IsDefault bool   `json:"is_default"`
}
