package trip

import "context"

type Repository interface {
	ListDetails(ctx context.Context, q ListQuery) ([]Detail, error)
	Recent(ctx context.Context, limit int) ([]Detail, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
