package vehicle

import (
	"time"

	"fleet-admin-backend/internal/domain/vehicle"
)

type CreateVehicleInput struct {
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
}

type UpdateVehicleInput struct {
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
	// ImageURL keeps the existing image when no new file is staged.
	ImageURL string `json:"image_url"`
}

type VehicleDTO struct {
	ID            string    `json:"id"`
	VehicleNumber string    `json:"vehicle_number"`
	VehicleType   string    `json:"vehicle_type"`
	ImageURL      *string   `json:"image_url"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// BatchResult is one feed batch; HasMore is true iff the batch came back
// full, so a short batch stops the infinite scroll.
type BatchResult struct {
	Items   []VehicleDTO `json:"items"`
	HasMore bool         `json:"has_more"`
}

func toDTO(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:            v.ID,
		VehicleNumber: v.VehicleNumber,
		VehicleType:   v.VehicleType,
		ImageURL:      v.ImageURL,
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
	}
}
