package employee

import (
	"time"

	"fleet-admin-backend/internal/domain/employee"
)

type ListInput struct {
	Page       int
	PageSize   int
	SortColumn string
	SortDesc   bool
	Name       string
	Role       string
	Active     *bool
}

type CreateEmployeeInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type UpdateEmployeeInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type UpdateProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type EmployeeDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(e *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Role:      string(e.Role),
		AvatarURL: e.AvatarURL,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
}
