package vehicle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleet-admin-backend/internal/domain/fleeterr"
	"fleet-admin-backend/internal/domain/listing"
	"fleet-admin-backend/internal/domain/vehicle"
	"fleet-admin-backend/internal/infrastructure/storage"
	"fleet-admin-backend/pkg/id"
)

// ImageBucket is the storage bucket vehicle photos live in; keys are derived
// from the vehicle id, so a replaced photo overwrites the previous object.
const ImageBucket = "vehicles"

type Usecase struct {
	repo     vehicle.Repository
	store    storage.ObjectStore
	maxBytes int64
	now      func() time.Time
}

func NewUsecase(r vehicle.Repository, store storage.ObjectStore, maxBytes int64) *Usecase {
	return &Usecase{repo: r, store: store, maxBytes: maxBytes, now: time.Now}
}

// Batch fetches one page of the grid. HasMore is derived from the batch
// length, not a count query.
func (u *Usecase) Batch(ctx context.Context, page int, search string) (*BatchResult, error) {
	if page < 0 {
		return nil, fleeterr.Validationf("page must be >= 0")
	}
	rows, err := u.repo.ListBatch(ctx, vehicle.BatchQuery{
		Page:      page,
		BatchSize: listing.FeedBatchSize,
		Search:    search,
	})
	if err != nil {
		return nil, err
	}
	items := make([]VehicleDTO, 0, len(rows))
	for i := range rows {
		items = append(items, toDTO(&rows[i]))
	}
	return &BatchResult{Items: items, HasMore: len(rows) == listing.FeedBatchSize}, nil
}

// Create runs the two-phase create: the row is inserted first so its id can
// key the image object, then the uploaded image URL is linked in a second
// write. If the image phase fails the vehicle still exists without an image;
// both the created row and the error are returned, nothing is rolled back.
func (u *Usecase) Create(ctx context.Context, in CreateVehicleInput, img *StagedImage) (*VehicleDTO, error) {
	number, vtype, err := normalize(in.VehicleNumber, in.VehicleType)
	if err != nil {
		return nil, err
	}

	v := &vehicle.Vehicle{
		ID:            id.New(),
		VehicleNumber: number,
		VehicleType:   vtype,
		IsActive:      true,
	}
	if err := u.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	dto := toDTO(v)

	if img != nil {
		url, err := u.PersistImage(ctx, v.ID, img, "")
		if err != nil {
			return &dto, fmt.Errorf("vehicle created without image: %w", err)
		}
		if err := u.repo.SetImageURL(ctx, v.ID, url); err != nil {
			return &dto, fmt.Errorf("vehicle created without image: %w", err)
		}
		dto.ImageURL = &url
	}
	return &dto, nil
}

func (u *Usecase) Update(ctx context.Context, vehicleID string, in UpdateVehicleInput, img *StagedImage) (*VehicleDTO, error) {
	number, vtype, err := normalize(in.VehicleNumber, in.VehicleType)
	if err != nil {
		return nil, err
	}

	v, err := u.repo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	imageURL, err := u.PersistImage(ctx, vehicleID, img, in.ImageURL)
	if err != nil {
		return nil, err
	}

	v.VehicleNumber = number
	v.VehicleType = vtype
	if imageURL == "" {
		v.ImageURL = nil
	} else {
		v.ImageURL = &imageURL
	}
	if err := u.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	dto := toDTO(v)
	return &dto, nil
}

// ToggleStatus flips is_active to the inverse of the caller-observed state.
func (u *Usecase) ToggleStatus(ctx context.Context, vehicleID string, currentStatus bool) error {
	return u.repo.SetActive(ctx, vehicleID, !currentStatus)
}

func normalize(number, vtype string) (string, string, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	vtype = strings.TrimSpace(vtype)
	if number == "" || vtype == "" {
		return "", "", fleeterr.Validationf("vehicle number and type are required")
	}
	if !vehicle.ValidType(vtype) {
		return "", "", fleeterr.Validationf("unknown vehicle type %q", vtype)
	}
	return number, vtype, nil
}
