package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"fleet-admin-backend/internal/domain/employee"
	"fleet-admin-backend/internal/domain/receipt"
	"fleet-admin-backend/internal/domain/trip"
	"fleet-admin-backend/internal/domain/vehicle"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	cacheKey        = "dashboard:stats"
	recentTripLimit = 5
)

type RecentTrip struct {
	ID            string    `json:"id"`
	TripDate      time.Time `json:"trip_date"`
	Status        string    `json:"status"`
	EmployeeName  *string   `json:"employee_name"`
	VehicleNumber *string   `json:"vehicle_number"`
	CreatedAt     time.Time `json:"created_at"`
}

type Stats struct {
	TotalEmployees int64        `json:"total_employees"`
	ActiveVehicles int64        `json:"active_vehicles"`
	ActiveTrips    int64        `json:"active_trips"`
	TotalReceipts  int64        `json:"total_receipts"`
	RecentTrips    []RecentTrip `json:"recent_trips"`
}

type Usecase struct {
	employees employee.Repository
	vehicles  vehicle.Repository
	trips     trip.Repository
	receipts  receipt.Repository
	cache     *redis.Client
	cacheTTL  time.Duration
}

// NewUsecase wires the aggregator. cache may be nil, in which case every call
// fans out live.
func NewUsecase(e employee.Repository, v vehicle.Repository, t trip.Repository, r receipt.Repository, cache *redis.Client, cacheTTL time.Duration) *Usecase {
	return &Usecase{employees: e, vehicles: v, trips: t, receipts: r, cache: cache, cacheTTL: cacheTTL}
}

// Stats issues the five dashboard queries in parallel. The result is
// all-or-nothing: if any query fails the whole load fails, so the view never
// renders partial numbers.
func (u *Usecase) Stats(ctx context.Context) (*Stats, error) {
	if s := u.fromCache(ctx); s != nil {
		return s, nil
	}

	var out Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := u.employees.Count(gctx)
		out.TotalEmployees = n
		return err
	})
	g.Go(func() error {
		n, err := u.vehicles.CountActive(gctx)
		out.ActiveVehicles = n
		return err
	})
	g.Go(func() error {
		n, err := u.trips.CountByStatus(gctx, trip.StatusStarted)
		out.ActiveTrips = n
		return err
	})
	g.Go(func() error {
		n, err := u.receipts.Count(gctx)
		out.TotalReceipts = n
		return err
	})
	g.Go(func() error {
		rows, err := u.trips.Recent(gctx, recentTripLimit)
		if err != nil {
			return err
		}
		recent := make([]RecentTrip, 0, len(rows))
		for i := range rows {
			d := &rows[i]
			recent = append(recent, RecentTrip{
				ID:            d.ID,
				TripDate:      d.TripDate,
				Status:        string(d.Status),
				EmployeeName:  d.EmployeeName,
				VehicleNumber: d.VehicleNumber,
				CreatedAt:     d.CreatedAt,
			})
		}
		out.RecentTrips = recent
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	u.toCache(ctx, &out)
	return &out, nil
}

func (u *Usecase) fromCache(ctx context.Context) *Stats {
	if u.cache == nil {
		return nil
	}
	raw, err := u.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil
	}
	var s Stats
	if json.Unmarshal(raw, &s) != nil {
		return nil
	}
	return &s
}

func (u *Usecase) toCache(ctx context.Context, s *Stats) {
	if u.cache == nil || u.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	// Cache write failures are ignored; the next visit just fans out again.
	_ = u.cache.Set(ctx, cacheKey, raw, u.cacheTTL).Err()
}
