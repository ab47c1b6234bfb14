package model

import "time"

type User struct {
	DTO
	Name      string  `gorm:"not null" json:"name"`
	Email     string  `gorm:"uniqueIndex;not null" json:"email"`
	Password  string  `gorm:"not null" json:"-"`
	Phone     *string `json:"phone"`
	Role      string  `gorm:"type:varchar(20);default:customer" json:"role"` // customer | admin
	Avatar    *string `json:"avatar"`
	CreatedBy *uint   `json:"created_by"`
	Creator   *User   `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"creator,omitempty"`
}

type Users []User

type RegisterInput struct {
	Name                 string  `validate:"required,max=255" json:"name"`
	Email                string  `validate:"required,email" json:"email"`
	Password             string  `validate:"required,min=8" json:"password"`
	PasswordConfirmation string  `validate:"required,eqfield=Password" json:"password_confirmation"`
	Phone                *string `json:"phone"`
	Role                 string  `validate:"omitempty,oneof=customer admin" json:"role"`
}

type LoginInput struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}

type CreateUserInput struct {
	Name                 string  `validate:"required,max=255" json:"name"`
	Email                string  `validate:"required,email" json:"email"`
	Password             string  `validate:"required,min=8" json:"password"`
	PasswordConfirmation string  `validate:"required,eqfield=Password" json:"password_confirmation"`
	Phone                *string `json:"phone"`
	Role                 string  `validate:"required,oneof=customer admin" json:"role"`
}

type UpdateUserInput struct {
	Name                 string  `validate:"required,max=255" json:"name"`
	Email                string  `validate:"required,email" json:"email"`
	Password             *string `validate:"omitempty,min=8" json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`
	Phone                *string `json:"phone"`
	Role                 string  `validate:"required,oneof=customer admin" json:"role"`
}

type UpdateProfileInput struct {
	Name     *string `validate:"omitempty,max=255" json:"name"`
	Email    *string `validate:"omitempty,email" json:"email"`
	Password *string `validate:"omitempty,min=6" json:"password"`
	Phone    *string `validate:"omitempty,max=20" json:"phone"`
}

type FilterUser struct {
	Pagination
	Search string  `query:"search" json:"search"`
	Role   *string `query:"role" json:"role"`
	Sort   string  `query:"sort" json:"sort"`
}

type ForgotPasswordInput struct {
	Email string `validate:"required,email" json:"email"`
}

type ResetPasswordInput struct {
	Token       string `validate:"required" json:"token"`
	NewPassword string `validate:"required,min=8" json:"newPassword"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	User      User      `gorm:"foreignKey:UserId" json:"user"`
}
