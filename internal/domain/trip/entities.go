package trip

import (
	"time"
)

type Status string

const (
	StatusStarted Status = "STARTED"
	StatusEnded   Status = "ENDED"
)

// Trip rows originate from the employee-facing tracking app; this surface is
// read-only.
type Trip struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	TripDate  time.Time  `gorm:"type:date;not null" json:"trip_date"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	StartKm   *float64   `json:"start_km"`
	EndKm     *float64   `json:"end_km"`
	Status    Status     `gorm:"size:16;not null;default:'STARTED'" json:"status"`
	UserID    string     `gorm:"size:36;not null;index" json:"user_id"`
	VehicleID *string    `gorm:"size:36;index" json:"vehicle_id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Trip) TableName() string { return "trips" }

// Detail is a trip row joined with the owning employee's name and the
// vehicle's identifying fields for display.
type Detail struct {
	Trip
	EmployeeName  *string `json:"employee_name"`
	VehicleNumber *string `json:"vehicle_number"`
	VehicleType   *string `json:"vehicle_type"`
}

type ListQuery struct {
	// Status narrows to STARTED or ENDED; empty means all.
	Status Status
	// Search matches employee name or vehicle number, case-insensitively.
	Search string
}
