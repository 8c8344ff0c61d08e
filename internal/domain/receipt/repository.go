package receipt

import "context"

type Repository interface {
	// ListDetails returns all receipts newest-first; search matches the
	// description or the submitting employee's name.
	ListDetails(ctx context.Context, search string) ([]Detail, error)
	Count(ctx context.Context) (int64, error)
	TotalAmount(ctx context.Context) (float64, error)
}
