package vehicle

import "context"

type Repository interface {
	ListBatch(ctx context.Context, q BatchQuery) ([]Vehicle, error)
	GetByID(ctx context.Context, id string) (*Vehicle, error)
	Create(ctx context.Context, v *Vehicle) error
	Update(ctx context.Context, v *Vehicle) error
	SetImageURL(ctx context.Context, id, url string) error
	SetActive(ctx context.Context, id string, active bool) error
	CountActive(ctx context.Context) (int64, error)
}
