package mysql

import (
	"context"
	"strings"

	receiptDomain "fleet-admin-backend/internal/domain/receipt"

	"gorm.io/gorm"
)

type ReceiptRepository struct{ db *gorm.DB }

func NewReceiptRepository(db *gorm.DB) *ReceiptRepository { return &ReceiptRepository{db: db} }

func (r *ReceiptRepository) ListDetails(ctx context.Context, search string) ([]receiptDomain.Detail, error) {
	tx := r.db.WithContext(ctx).Table("receipts").
		Select("receipts.*, employees.name AS employee_name").
		Joins("LEFT JOIN employees ON employees.id = receipts.user_id")

	if s := strings.TrimSpace(search); s != "" {
		needle := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(receipts.description) LIKE ? OR LOWER(employees.name) LIKE ?", needle, needle)
	}

	var rows []receiptDomain.Detail
	if err := tx.Order("receipts.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *ReceiptRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&receiptDomain.Receipt{}).Count(&n).Error
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (r *ReceiptRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&receiptDomain.Receipt{}).
		Select("SUM(amount)").Scan(&total).Error
	if err != nil {
		return 0, translate(err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
