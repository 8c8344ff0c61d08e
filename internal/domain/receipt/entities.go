package receipt

import (
	"time"
)

// Receipt rows are written by the employee app; read-only here.
type Receipt struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Amount      float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description *string   `gorm:"size:512" json:"description"`
	ReceiptURL  *string   `gorm:"size:512" json:"receipt_url"`
	TripID      *string   `gorm:"size:36;index" json:"trip_id"`
	UserID      string    `gorm:"size:36;not null;index" json:"user_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Receipt) TableName() string { return "receipts" }

// Detail joins the submitting employee's name for display.
type Detail struct {
	Receipt
	EmployeeName *string `json:"employee_name"`
}
