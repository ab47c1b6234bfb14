package model

type Category struct {
	DTO
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	CreatedBy *uint  `json:"created_by"`
	Creator   *User  `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
}

type CreateCategoryInput struct {
	Name string  `validate:"required,max=255" json:"name"`
	Slug *string `json:"slug"`
}

type UpdateCategoryInput struct {
	Name string  `validate:"required,max=255" json:"name"`
	Slug *string `json:"slug"`
}

type FilterCategory struct {
	Search string `query:"search" json:"search"`
	Sort   string `query:"sort" json:"sort"`
}
