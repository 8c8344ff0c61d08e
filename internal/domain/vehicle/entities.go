package vehicle

import (
	"time"
)

// Types recognised by the vehicle form's type selector.
var Types = []string{
	"Sedan",
	"SUV",
	"Truck",
	"Van",
	"Ford Transit",
	"Pickup",
	"Bus",
	"Motorcycle",
	"Other",
}

func ValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

type Vehicle struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	VehicleNumber string    `gorm:"size:32;not null;uniqueIndex:ux_vehicles_number" json:"vehicle_number"`
	VehicleType   string    `gorm:"size:32;not null" json:"vehicle_type"`
	ImageURL      *string   `gorm:"size:512" json:"image_url"`
	CompanyID     *string   `gorm:"size:36;index" json:"company_id"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Vehicle) TableName() string { return "vehicles" }

// BatchQuery fetches one fixed-size batch of the grid, newest first. Search
// matches vehicle_number or vehicle_type, case-insensitively.
type BatchQuery struct {
	Page      int
	BatchSize int
	Search    string
}
