package trip

import (
	"context"

	"fleet-admin-backend/internal/domain/fleeterr"
	"fleet-admin-backend/internal/domain/trip"
)

// Trips originate from the employee-facing tracking app; this admin surface
// only reads them.
type Usecase struct{ repo trip.Repository }

func NewUsecase(r trip.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) List(ctx context.Context, status, search string) ([]TripDTO, error) {
	q := trip.ListQuery{Search: search}
	switch status {
	case "", "all":
	case string(trip.StatusStarted), string(trip.StatusEnded):
		q.Status = trip.Status(status)
	default:
		return nil, fleeterr.Validationf("unknown trip status %q", status)
	}

	rows, err := u.repo.ListDetails(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]TripDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, nil
}
