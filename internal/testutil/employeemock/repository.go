package employeemock

import (
	"context"
	"errors"

	domain "fleet-admin-backend/internal/domain/employee"
	"fleet-admin-backend/internal/domain/listing"
)

// Repo is a function-backed mock that satisfies domain.Repository. Only the
// methods a test needs must be assigned.
type Repo struct {
	ListFn       func(ctx context.Context, page listing.PageRequest, filter domain.ListFilter) ([]domain.Employee, int64, error)
	GetByIDFn    func(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Employee, error)
	CreateFn     func(ctx context.Context, e *domain.Employee) error
	UpdateFn     func(ctx context.Context, e *domain.Employee) error
	SetActiveFn  func(ctx context.Context, id string, active bool) error
	CountFn      func(ctx context.Context) (int64, error)
}

var errNotImplemented = errors.New("not implemented")

func (m *Repo) List(ctx context.Context, page listing.PageRequest, filter domain.ListFilter) ([]domain.Employee, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, filter)
	}
	return nil, 0, errNotImplemented
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errNotImplemented
}

func (m *Repo) Create(ctx context.Context, e *domain.Employee) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) Update(ctx context.Context, e *domain.Employee) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, e)
	}
	return nil
}

func (m *Repo) SetActive(ctx context.Context, id string, active bool) error {
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, id, active)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, errNotImplemented
}
