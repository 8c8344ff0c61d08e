package mysql

import (
	"context"
	"strings"

	employeeDomain "fleet-admin-backend/internal/domain/employee"
	"fleet-admin-backend/internal/domain/listing"

	"gorm.io/gorm"
)

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

// Sortable columns; anything else falls back to created_at desc.
var employeeSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"role":       "role",
	"is_active":  "is_active",
	"created_at": "created_at",
}

func (r *EmployeeRepository) List(ctx context.Context, page listing.PageRequest, filter employeeDomain.ListFilter) ([]employeeDomain.Employee, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Model(&employeeDomain.Employee{})
	if s := strings.TrimSpace(filter.NameLike); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	order := "created_at DESC"
	if col, ok := employeeSortColumns[page.SortColumn]; ok {
		dir := "ASC"
		if page.SortDesc {
			dir = "DESC"
		}
		order = col + " " + dir
	}

	var rows []employeeDomain.Employee
	err := q.Order(order).Offset(page.Offset()).Limit(page.PageSize).Find(&rows).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return rows, total, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	return &out, nil
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	return &out, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *employeeDomain.Employee) error {
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *EmployeeRepository) Update(ctx context.Context, e *employeeDomain.Employee) error {
	return translate(r.db.WithContext(ctx).Save(e).Error)
}

func (r *EmployeeRepository) SetActive(ctx context.Context, id string, active bool) error {
	res := r.db.WithContext(ctx).Model(&employeeDomain.Employee{}).
		Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&employeeDomain.Employee{}).Count(&n).Error
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}
