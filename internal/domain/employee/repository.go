package employee

import (
	"context"

	"fleet-admin-backend/internal/domain/listing"
)

type Repository interface {
	List(ctx context.Context, page listing.PageRequest, filter ListFilter) ([]Employee, int64, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	SetActive(ctx context.Context, id string, active bool) error
	Count(ctx context.Context) (int64, error)
}
