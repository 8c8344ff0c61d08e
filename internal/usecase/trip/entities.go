package trip

import (
	"time"

	"fleet-admin-backend/internal/domain/trip"
)

type TripDTO struct {
	ID            string     `json:"id"`
	TripDate      time.Time  `json:"trip_date"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	StartKm       *float64   `json:"start_km"`
	EndKm         *float64   `json:"end_km"`
	Status        string     `json:"status"`
	EmployeeName  *string    `json:"employee_name"`
	VehicleNumber *string    `json:"vehicle_number"`
	VehicleType   *string    `json:"vehicle_type"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toDTO(d *trip.Detail) TripDTO {
	return TripDTO{
		ID:            d.ID,
		TripDate:      d.TripDate,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		StartKm:       d.StartKm,
		EndKm:         d.EndKm,
		Status:        string(d.Status),
		EmployeeName:  d.EmployeeName,
		VehicleNumber: d.VehicleNumber,
		VehicleType:   d.VehicleType,
		CreatedAt:     d.CreatedAt,
	}
}
