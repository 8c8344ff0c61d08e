package employee

import (
	"context"
	"strings"

	"fleet-admin-backend/internal/domain/employee"
	"fleet-admin-backend/internal/domain/fleeterr"
	"fleet-admin-backend/internal/domain/listing"
	"fleet-admin-backend/pkg/id"

	"golang.org/x/crypto/bcrypt"
)

type Usecase struct{ repo employee.Repository }

func NewUsecase(r employee.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) List(ctx context.Context, in ListInput) ([]EmployeeDTO, int64, error) {
	page := listing.PageRequest{
		Page:       in.Page,
		PageSize:   in.PageSize,
		SortColumn: in.SortColumn,
		SortDesc:   in.SortDesc,
	}
	if page.PageSize == 0 {
		page.PageSize = listing.DefaultPageSize
	}
	filter := employee.ListFilter{
		NameLike: in.Name,
		Role:     employee.Role(in.Role),
		IsActive: in.Active,
	}
	rows, total, err := u.repo.List(ctx, page, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]EmployeeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, total, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateEmployeeInput) (*EmployeeDTO, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, fleeterr.Validationf("name and email are required")
	}
	role := employee.Role(in.Role)
	if role == "" {
		role = employee.RoleEmployee
	}
	if role != employee.RoleAdmin && role != employee.RoleEmployee {
		return nil, fleeterr.Validationf("unknown role %q", in.Role)
	}

	e := &employee.Employee{
		ID:       id.New(),
		Name:     name,
		Email:    &email,
		Phone:    optional(in.Phone),
		Role:     role,
		IsActive: true,
	}
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

func (u *Usecase) Update(ctx context.Context, employeeID string, in UpdateEmployeeInput) (*EmployeeDTO, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, fleeterr.Validationf("name and email are required")
	}

	e, err := u.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	e.Name = name
	e.Email = &email
	e.Phone = optional(in.Phone)
	if err := u.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// ToggleStatus flips is_active to the inverse of the caller-observed state.
func (u *Usecase) ToggleStatus(ctx context.Context, employeeID string, currentStatus bool) error {
	return u.repo.SetActive(ctx, employeeID, !currentStatus)
}

func (u *Usecase) Profile(ctx context.Context, userID string) (*EmployeeDTO, error) {
	e, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

func (u *Usecase) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*EmployeeDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fleeterr.Validationf("name is required")
	}
	e, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	e.Name = name
	e.Phone = optional(in.Phone)
	if err := u.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// Authenticate checks credentials for login. Inactive employees cannot sign
// in.
func (u *Usecase) Authenticate(ctx context.Context, email, password string) (*EmployeeDTO, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fleeterr.Validationf("email and password are required")
	}
	e, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !e.IsActive {
		return nil, fleeterr.ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) != nil {
		return nil, fleeterr.ErrNotFound
	}
	dto := toDTO(e)
	return &dto, nil
}

// EnsureAdmin seeds the bootstrap admin account if it does not exist yet.
func (u *Usecase) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return fleeterr.Validationf("admin email and password are required")
	}
	if _, err := u.repo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !fleeterr.IsNotFound(err) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e := &employee.Employee{
		ID:           id.New(),
		Name:         name,
		Email:        &email,
		Role:         employee.RoleAdmin,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	return u.repo.Create(ctx, e)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
