package mysql

import (
	"context"
	"math"
	"testing"
	"time"

	employeeDomain "fleet-admin-backend/internal/domain/employee"
	receiptDomain "fleet-admin-backend/internal/domain/receipt"
	"fleet-admin-backend/pkg/id"

	"gorm.io/gorm"
)

func seedReceipt(t *testing.T, db *gorm.DB, userID string, amount float64, desc string, createdAt time.Time) *receiptDomain.Receipt {
	t.Helper()
	r := &receiptDomain.Receipt{
		ID:          id.New(),
		Amount:      amount,
		Description: &desc,
		UserID:      userID,
		CreatedAt:   createdAt,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed receipt: %v", err)
	}
	return r
}

func TestReceiptListDetails_SearchAndJoin(t *testing.T) {
	db := openTestDB(t)
	repo := NewReceiptRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	jane := seedEmployee(t, db, "Jane Driver", "jane@fleet.test", employeeDomain.RoleEmployee, true, now)
	bob := seedEmployee(t, db, "Bob Hauler", "bob@fleet.test", employeeDomain.RoleEmployee, true, now)

	seedReceipt(t, db, jane.ID, 125.50, "Fuel top-up", now)
	seedReceipt(t, db, bob.ID, 60.00, "Parking", now.Add(time.Minute))

	rows, err := repo.ListDetails(ctx, "")
	if err != nil {
		t.Fatalf("ListDetails: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d, want 2", len(rows))
	}
	if rows[0].EmployeeName == nil || *rows[0].EmployeeName != "Bob Hauler" {
		t.Fatalf("newest first with joined name: %v", rows[0].EmployeeName)
	}

	rows, err = repo.ListDetails(ctx, "fuel")
	if err != nil {
		t.Fatalf("ListDetails: %v", err)
	}
	if len(rows) != 1 || *rows[0].Description != "Fuel top-up" {
		t.Fatalf("description search: rows=%v", rows)
	}

	rows, err = repo.ListDetails(ctx, "jane")
	if err != nil {
		t.Fatalf("ListDetails: %v", err)
	}
	if len(rows) != 1 || *rows[0].EmployeeName != "Jane Driver" {
		t.Fatalf("employee search: rows=%v", rows)
	}
}

func TestReceiptTotals(t *testing.T) {
	db := openTestDB(t)
	repo := NewReceiptRepository(db)
	ctx := context.Background()

	// Empty table sums to zero, not an error.
	total, err := repo.TotalAmount(ctx)
	if err != nil {
		t.Fatalf("TotalAmount: %v", err)
	}
	if total != 0 {
		t.Fatalf("empty total=%v", total)
	}

	now := time.Now().UTC()
	jane := seedEmployee(t, db, "Jane Driver", "jane@fleet.test", employeeDomain.RoleEmployee, true, now)
	seedReceipt(t, db, jane.ID, 125.50, "Fuel", now)
	seedReceipt(t, db, jane.ID, 60.00, "Parking", now)

	total, err = repo.TotalAmount(ctx)
	if err != nil {
		t.Fatalf("TotalAmount: %v", err)
	}
	if math.Abs(total-185.50) > 1e-9 {
		t.Fatalf("total=%v, want 185.50", total)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Fatalf("count=%d", n)
	}
}
