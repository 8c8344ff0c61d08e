package vehicle

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fleet-admin-backend/internal/domain/fleeterr"
	"fleet-admin-backend/internal/domain/listing"
	domain "fleet-admin-backend/internal/domain/vehicle"
	"fleet-admin-backend/internal/testutil/storagemock"
)

// ----- test doubles -----

// mockRepo implements domain.Repository (only methods used by these tests).
type mockRepo struct {
	ListBatchFn   func(ctx context.Context, q domain.BatchQuery) ([]domain.Vehicle, error)
	GetByIDFn     func(ctx context.Context, id string) (*domain.Vehicle, error)
	CreateFn      func(ctx context.Context, v *domain.Vehicle) error
	UpdateFn      func(ctx context.Context, v *domain.Vehicle) error
	SetImageURLFn func(ctx context.Context, id, url string) error
	SetActiveFn   func(ctx context.Context, id string, active bool) error
	CountActiveFn func(ctx context.Context) (int64, error)
}

func (m *mockRepo) ListBatch(ctx context.Context, q domain.BatchQuery) ([]domain.Vehicle, error) {
	if m.ListBatchFn != nil {
		return m.ListBatchFn(ctx, q)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *mockRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, v)
	}
	return nil
}

func (m *mockRepo) SetImageURL(ctx context.Context, id, url string) error {
	if m.SetImageURLFn != nil {
		return m.SetImageURLFn(ctx, id, url)
	}
	return nil
}

func (m *mockRepo) SetActive(ctx context.Context, id string, active bool) error {
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, id, active)
	}
	return nil
}

func (m *mockRepo) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFn != nil {
		return m.CountActiveFn(ctx)
	}
	return 0, errors.New("not implemented")
}

const testMaxBytes = 5 << 20

func newTestUsecase(repo domain.Repository, store *storagemock.Store) *Usecase {
	u := NewUsecase(repo, store, testMaxBytes)
	u.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return u
}

// ----- tests -----

func TestCreate_UppercasesNumberAndLinksImage(t *testing.T) {
	store := &storagemock.Store{}
	var created *domain.Vehicle
	var linkedURL string
	uc := newTestUsecase(&mockRepo{
		CreateFn: func(ctx context.Context, v *domain.Vehicle) error {
			created = v
			return nil
		},
		SetImageURLFn: func(ctx context.Context, id, url string) error {
			linkedURL = url
			return nil
		},
	}, store)

	img := &StagedImage{Ext: ".png", ContentType: "image/png", Data: []byte("png-bytes")}
	dto, err := uc.Create(context.Background(), CreateVehicleInput{
		VehicleNumber: "abc-1234",
		VehicleType:   "Truck",
	}, img)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if created == nil {
		t.Fatal("repo Create was not called")
	}
	if created.VehicleNumber != "ABC-1234" {
		t.Fatalf("number=%q, want uppercase", created.VehicleNumber)
	}
	if !created.IsActive {
		t.Fatal("new vehicle must be active")
	}

	ups := store.Uploads()
	if len(ups) != 1 {
		t.Fatalf("uploads=%d, want 1", len(ups))
	}
	if ups[0].Bucket != ImageBucket || ups[0].Key != created.ID+".png" {
		t.Fatalf("uploaded %s/%s, want %s/%s.png", ups[0].Bucket, ups[0].Key, ImageBucket, created.ID)
	}
	if dto.ImageURL == nil || *dto.ImageURL != linkedURL {
		t.Fatalf("dto image url %v != linked %q", dto.ImageURL, linkedURL)
	}
	if !strings.Contains(linkedURL, created.ID+".png?t=1700000000000") {
		t.Fatalf("url=%q, want id-keyed with cache-busting timestamp", linkedURL)
	}
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	uc := newTestUsecase(&mockRepo{
		CreateFn: func(ctx context.Context, v *domain.Vehicle) error {
			t.Fatal("Create must not be called on invalid input")
			return nil
		},
	}, &storagemock.Store{})

	_, err := uc.Create(context.Background(), CreateVehicleInput{
		VehicleNumber: "B 1234 XY",
		VehicleType:   "Hovercraft",
	}, nil)
	if !fleeterr.IsValidation(err) {
		t.Fatalf("err=%v, want validation", err)
	}
}

func TestCreate_KeepsRowWhenImagePhaseFails(t *testing.T) {
	store := &storagemock.Store{UploadErr: errors.New("store down")}
	uc := newTestUsecase(&mockRepo{
		CreateFn: func(ctx context.Context, v *domain.Vehicle) error { return nil },
	}, store)

	img := &StagedImage{Ext: ".jpg", ContentType: "image/jpeg", Data: []byte("x")}
	dto, err := uc.Create(context.Background(), CreateVehicleInput{
		VehicleNumber: "B 1234 XY",
		VehicleType:   "Van",
	}, img)
	if err == nil {
		t.Fatal("want image phase error")
	}
	if dto == nil {
		t.Fatal("the created vehicle must still be returned")
	}
	if dto.ImageURL != nil {
		t.Fatalf("image url=%v, want nil after failed upload", *dto.ImageURL)
	}
	if !strings.Contains(err.Error(), "vehicle created without image") {
		t.Fatalf("err=%v", err)
	}
}

func TestBatch_HasMoreTracksBatchLength(t *testing.T) {
	rows := make([]domain.Vehicle, listing.FeedBatchSize)
	for i := range rows {
		rows[i] = domain.Vehicle{ID: "v" + string(rune('a'+i))}
	}
	full := rows
	uc := newTestUsecase(&mockRepo{
		ListBatchFn: func(ctx context.Context, q domain.BatchQuery) ([]domain.Vehicle, error) {
			if q.BatchSize != listing.FeedBatchSize {
				t.Fatalf("batch size=%d, want %d", q.BatchSize, listing.FeedBatchSize)
			}
			if q.Page == 0 {
				return full, nil
			}
			return full[:3], nil
		},
	}, &storagemock.Store{})

	res, err := uc.Batch(context.Background(), 0, "")
	if err != nil {
		t.Fatalf("Batch err: %v", err)
	}
	if !res.HasMore {
		t.Fatal("full batch must report more")
	}

	res, err = uc.Batch(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("Batch err: %v", err)
	}
	if res.HasMore {
		t.Fatal("short batch must end the scroll")
	}

	if _, err := uc.Batch(context.Background(), -1, ""); !fleeterr.IsValidation(err) {
		t.Fatalf("negative page: err=%v, want validation", err)
	}
}

func TestUpdate_ReplacesImageAndKeepsOldURLWithoutFile(t *testing.T) {
	oldURL := "http://store.local/vehicles/v1.jpg?t=1"
	stored := domain.Vehicle{ID: "v1", VehicleNumber: "OLD-1", VehicleType: "Sedan", ImageURL: &oldURL, IsActive: true}
	store := &storagemock.Store{}
	var saved *domain.Vehicle
	uc := newTestUsecase(&mockRepo{
		GetByIDFn: func(ctx context.Context, id string) (*domain.Vehicle, error) {
			v := stored
			return &v, nil
		},
		UpdateFn: func(ctx context.Context, v *domain.Vehicle) error {
			saved = v
			return nil
		},
	}, store)

	// No staged file: the previous URL is carried over untouched.
	dto, err := uc.Update(context.Background(), "v1", UpdateVehicleInput{
		VehicleNumber: "new-1", VehicleType: "SUV", ImageURL: oldURL,
	}, nil)
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if len(store.Uploads()) != 0 {
		t.Fatal("no upload may happen without a staged file")
	}
	if dto.ImageURL == nil || *dto.ImageURL != oldURL {
		t.Fatalf("image url=%v, want previous %q", dto.ImageURL, oldURL)
	}
	if saved.VehicleNumber != "NEW-1" {
		t.Fatalf("number=%q", saved.VehicleNumber)
	}

	// Staged file: the object is replaced and the URL re-busted.
	img := &StagedImage{Ext: ".png", ContentType: "image/png", Data: []byte("new")}
	dto, err = uc.Update(context.Background(), "v1", UpdateVehicleInput{
		VehicleNumber: "new-1", VehicleType: "SUV", ImageURL: oldURL,
	}, img)
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if len(store.Uploads()) != 1 {
		t.Fatalf("uploads=%d, want 1", len(store.Uploads()))
	}
	if dto.ImageURL == nil || !strings.Contains(*dto.ImageURL, "v1.png?t=") {
		t.Fatalf("image url=%v", dto.ImageURL)
	}
}

func TestToggleStatus_InvertsObservedState(t *testing.T) {
	var gotActive bool
	uc := newTestUsecase(&mockRepo{
		SetActiveFn: func(ctx context.Context, id string, active bool) error {
			gotActive = active
			return nil
		},
	}, &storagemock.Store{})

	if err := uc.ToggleStatus(context.Background(), "v1", false); err != nil {
		t.Fatalf("ToggleStatus err: %v", err)
	}
	if !gotActive {
		t.Fatal("SetActive(false observed) must re-activate")
	}
}
