package mysql

import (
	"context"
	"strings"

	vehicleDomain "fleet-admin-backend/internal/domain/vehicle"

	"gorm.io/gorm"
)

type VehicleRepository struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) *VehicleRepository { return &VehicleRepository{db: db} }

func (r *VehicleRepository) ListBatch(ctx context.Context, q vehicleDomain.BatchQuery) ([]vehicleDomain.Vehicle, error) {
	if q.BatchSize <= 0 || q.Page < 0 {
		return nil, translate(gorm.ErrInvalidData)
	}

	tx := r.db.WithContext(ctx).Model(&vehicleDomain.Vehicle{})
	if s := strings.TrimSpace(q.Search); s != "" {
		needle := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(vehicle_number) LIKE ? OR LOWER(vehicle_type) LIKE ?", needle, needle)
	}

	var rows []vehicleDomain.Vehicle
	err := tx.Order("created_at DESC").
		Offset(q.Page * q.BatchSize).
		Limit(q.BatchSize).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*vehicleDomain.Vehicle, error) {
	var out vehicleDomain.Vehicle
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	return &out, nil
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicleDomain.Vehicle) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicleDomain.Vehicle) error {
	return translate(r.db.WithContext(ctx).Save(v).Error)
}

func (r *VehicleRepository) SetImageURL(ctx context.Context, id, url string) error {
	res := r.db.WithContext(ctx).Model(&vehicleDomain.Vehicle{}).
		Where("id = ?", id).Update("image_url", url)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *VehicleRepository) SetActive(ctx context.Context, id string, active bool) error {
	res := r.db.WithContext(ctx).Model(&vehicleDomain.Vehicle{}).
		Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *VehicleRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&vehicleDomain.Vehicle{}).
		Where("is_active = ?", true).Count(&n).Error
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}
