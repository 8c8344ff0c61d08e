package vehiclemock

import (
	"context"
	"errors"

	domain "fleet-admin-backend/internal/domain/vehicle"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListBatchFn   func(ctx context.Context, q domain.BatchQuery) ([]domain.Vehicle, error)
	GetByIDFn     func(ctx context.Context, id string) (*domain.Vehicle, error)
	CreateFn      func(ctx context.Context, v *domain.Vehicle) error
	UpdateFn      func(ctx context.Context, v *domain.Vehicle) error
	SetImageURLFn func(ctx context.Context, id, url string) error
	SetActiveFn   func(ctx context.Context, id string, active bool) error
	CountActiveFn func(ctx context.Context) (int64, error)
}

var errNotImplemented = errors.New("not implemented")

func (m *Repo) ListBatch(ctx context.Context, q domain.BatchQuery) ([]domain.Vehicle, error) {
	if m.ListBatchFn != nil {
		return m.ListBatchFn(ctx, q)
	}
	return nil, errNotImplemented
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *Repo) Create(ctx context.Context, v *domain.Vehicle) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *Repo) Update(ctx context.Context, v *domain.Vehicle) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, v)
	}
	return nil
}

func (m *Repo) SetImageURL(ctx context.Context, id, url string) error {
	if m.SetImageURLFn != nil {
		return m.SetImageURLFn(ctx, id, url)
	}
	return nil
}

func (m *Repo) SetActive(ctx context.Context, id string, active bool) error {
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, id, active)
	}
	return nil
}

func (m *Repo) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFn != nil {
		return m.CountActiveFn(ctx)
	}
	return 0, errNotImplemented
}
