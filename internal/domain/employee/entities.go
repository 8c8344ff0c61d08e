package employee

import (
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

type Employee struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Email        *string   `gorm:"size:190;uniqueIndex:ux_employees_email" json:"email"`
	Phone        *string   `gorm:"size:32" json:"phone"`
	Role         Role      `gorm:"size:16;not null;default:'EMPLOYEE'" json:"role"`
	AvatarURL    *string   `gorm:"size:512" json:"avatar_url"`
	CompanyID    *string   `gorm:"size:36;index" json:"company_id"`
	PasswordHash string    `gorm:"size:128" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Employee) TableName() string { return "employees" }

// ListFilter is conjunctive: every set field narrows the result. NameLike is
// a case-insensitive substring match; Role and IsActive are exact.
type ListFilter struct {
	NameLike string
	Role     Role
	IsActive *bool
}
