package tripmock

import (
	"context"
	"errors"

	domain "fleet-admin-backend/internal/domain/trip"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListDetailsFn   func(ctx context.Context, q domain.ListQuery) ([]domain.Detail, error)
	RecentFn        func(ctx context.Context, limit int) ([]domain.Detail, error)
	CountByStatusFn func(ctx context.Context, status domain.Status) (int64, error)
}

var errNotImplemented = errors.New("not implemented")

func (m *Repo) ListDetails(ctx context.Context, q domain.ListQuery) ([]domain.Detail, error) {
	if m.ListDetailsFn != nil {
		return m.ListDetailsFn(ctx, q)
	}
	return nil, errNotImplemented
}

func (m *Repo) Recent(ctx context.Context, limit int) ([]domain.Detail, error) {
	if m.RecentFn != nil {
		return m.RecentFn(ctx, limit)
	}
	return nil, errNotImplemented
}

func (m *Repo) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, status)
	}
	return 0, errNotImplemented
}
