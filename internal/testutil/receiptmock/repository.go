package receiptmock

import (
	"context"
	"errors"

	domain "fleet-admin-backend/internal/domain/receipt"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListDetailsFn func(ctx context.Context, search string) ([]domain.Detail, error)
	CountFn       func(ctx context.Context) (int64, error)
	TotalAmountFn func(ctx context.Context) (float64, error)
}

var errNotImplemented = errors.New("not implemented")

func (m *Repo) ListDetails(ctx context.Context, search string) ([]domain.Detail, error) {
	if m.ListDetailsFn != nil {
		return m.ListDetailsFn(ctx, search)
	}
	return nil, errNotImplemented
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, errNotImplemented
}

func (m *Repo) TotalAmount(ctx context.Context) (float64, error) {
	if m.TotalAmountFn != nil {
		return m.TotalAmountFn(ctx)
	}
	return 0, errNotImplemented
}
