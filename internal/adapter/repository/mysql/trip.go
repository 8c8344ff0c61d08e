package mysql

import (
	"context"
	"strings"

	tripDomain "fleet-admin-backend/internal/domain/trip"

	"gorm.io/gorm"
)

type TripRepository struct{ db *gorm.DB }

func NewTripRepository(db *gorm.DB) *TripRepository { return &TripRepository{db: db} }

func (r *TripRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("trips").
		Select("trips.*, employees.name AS employee_name, vehicles.vehicle_number, vehicles.vehicle_type").
		Joins("LEFT JOIN employees ON employees.id = trips.user_id").
		Joins("LEFT JOIN vehicles ON vehicles.id = trips.vehicle_id")
}

func (r *TripRepository) ListDetails(ctx context.Context, q tripDomain.ListQuery) ([]tripDomain.Detail, error) {
	tx := r.detailQuery(ctx)
	if q.Status != "" {
		tx = tx.Where("trips.status = ?", q.Status)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		needle := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(employees.name) LIKE ? OR LOWER(vehicles.vehicle_number) LIKE ?", needle, needle)
	}

	var rows []tripDomain.Detail
	if err := tx.Order("trips.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *TripRepository) Recent(ctx context.Context, limit int) ([]tripDomain.Detail, error) {
	var rows []tripDomain.Detail
	err := r.detailQuery(ctx).
		Order("trips.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *TripRepository) CountByStatus(ctx context.Context, status tripDomain.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&tripDomain.Trip{}).
		Where("status = ?", status).Count(&n).Error
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}
