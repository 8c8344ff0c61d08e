package receipt

import (
	"context"
	"time"

	"fleet-admin-backend/internal/domain/receipt"
)

type Usecase struct{ repo receipt.Repository }

func NewUsecase(r receipt.Repository) *Usecase { return &Usecase{repo: r} }

type ReceiptDTO struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	Description  *string   `json:"description"`
	ReceiptURL   *string   `json:"receipt_url"`
	TripID       *string   `json:"trip_id"`
	EmployeeName *string   `json:"employee_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListResult struct {
	Items       []ReceiptDTO `json:"items"`
	TotalAmount float64      `json:"total_amount"`
}

// List returns all receipts newest-first plus the total-expense aggregate
// shown in the page header.
func (u *Usecase) List(ctx context.Context, search string) (*ListResult, error) {
	rows, err := u.repo.ListDetails(ctx, search)
	if err != nil {
		return nil, err
	}
	total, err := u.repo.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ReceiptDTO, 0, len(rows))
	for i := range rows {
		d := &rows[i]
		items = append(items, ReceiptDTO{
			ID:           d.ID,
			Amount:       d.Amount,
			Description:  d.Description,
			ReceiptURL:   d.ReceiptURL,
			TripID:       d.TripID,
			EmployeeName: d.EmployeeName,
			CreatedAt:    d.CreatedAt,
		})
	}
	return &ListResult{Items: items, TotalAmount: total}, nil
}
