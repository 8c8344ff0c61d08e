package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "fleet-admin-backend/internal/domain/employee"
	"fleet-admin-backend/internal/domain/fleeterr"
	"fleet-admin-backend/internal/domain/listing"

	"golang.org/x/crypto/bcrypt"
)

// ----- test doubles -----

// mockRepo implements domain.Repository (only methods used by these tests).
type mockRepo struct {
	ListFn       func(ctx context.Context, page listing.PageRequest, filter domain.ListFilter) ([]domain.Employee, int64, error)
	GetByIDFn    func(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Employee, error)
	CreateFn     func(ctx context.Context, e *domain.Employee) error
	UpdateFn     func(ctx context.Context, e *domain.Employee) error
	SetActiveFn  func(ctx context.Context, id string, active bool) error
	CountFn      func(ctx context.Context) (int64, error)
}

func (m *mockRepo) List(ctx context.Context, page listing.PageRequest, filter domain.ListFilter) ([]domain.Employee, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, filter)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepo) Create(ctx context.Context, e *domain.Employee) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *mockRepo) Update(ctx context.Context, e *domain.Employee) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, e)
	}
	return nil
}

func (m *mockRepo) SetActive(ctx context.Context, id string, active bool) error {
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, id, active)
	}
	return nil
}

func (m *mockRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, errors.New("not implemented")
}

// ----- tests -----

func TestCreate_DefaultsRoleAndActive(t *testing.T) {
	var created *domain.Employee
	uc := NewUsecase(&mockRepo{
		CreateFn: func(ctx context.Context, e *domain.Employee) error {
			created = e
			return nil
		},
	})

	dto, err := uc.Create(context.Background(), CreateEmployeeInput{
		Name:  "  Jane Doe ",
		Email: "jane@fleet.test",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if created == nil {
		t.Fatal("repo Create was not called")
	}
	if created.Role != domain.RoleEmployee {
		t.Fatalf("role=%s, want EMPLOYEE", created.Role)
	}
	if !created.IsActive {
		t.Fatal("new employee must be active")
	}
	if len(created.ID) != 36 {
		t.Fatalf("id length: %d", len(created.ID))
	}
	if dto.Name != "Jane Doe" {
		t.Fatalf("name=%q, trimming lost", dto.Name)
	}
}

func TestCreate_RequiresNameAndEmail(t *testing.T) {
	uc := NewUsecase(&mockRepo{
		CreateFn: func(ctx context.Context, e *domain.Employee) error {
			t.Fatal("Create must not be called on invalid input")
			return nil
		},
	})

	for _, in := range []CreateEmployeeInput{
		{Name: "", Email: "a@b.c"},
		{Name: "Jane", Email: "  "},
	} {
		if _, err := uc.Create(context.Background(), in); !fleeterr.IsValidation(err) {
			t.Fatalf("input %+v: err=%v, want validation", in, err)
		}
	}
}

func TestCreate_RejectsUnknownRole(t *testing.T) {
	uc := NewUsecase(&mockRepo{})
	_, err := uc.Create(context.Background(), CreateEmployeeInput{
		Name: "Jane", Email: "jane@fleet.test", Role: "SUPERVISOR",
	})
	if !fleeterr.IsValidation(err) {
		t.Fatalf("err=%v, want validation", err)
	}
}

func TestCreate_PassesConflictThrough(t *testing.T) {
	uc := NewUsecase(&mockRepo{
		CreateFn: func(ctx context.Context, e *domain.Employee) error {
			return fleeterr.ErrConflict
		},
	})
	_, err := uc.Create(context.Background(), CreateEmployeeInput{
		Name: "Jane", Email: "dup@fleet.test",
	})
	if !fleeterr.IsConflict(err) {
		t.Fatalf("err=%v, want conflict", err)
	}
}

func TestList_DefaultsPageSize(t *testing.T) {
	uc := NewUsecase(&mockRepo{
		ListFn: func(ctx context.Context, page listing.PageRequest, filter domain.ListFilter) ([]domain.Employee, int64, error) {
			if page.PageSize != listing.DefaultPageSize {
				t.Fatalf("page size=%d, want default %d", page.PageSize, listing.DefaultPageSize)
			}
			email := "jane@fleet.test"
			return []domain.Employee{{ID: "e1", Name: "Jane", Email: &email, Role: domain.RoleEmployee, IsActive: true, CreatedAt: time.Now()}}, 1, nil
		},
	})

	rows, total, err := uc.List(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("total=%d rows=%d", total, len(rows))
	}
}

func TestToggleStatus_InvertsObservedState(t *testing.T) {
	var gotID string
	var gotActive bool
	uc := NewUsecase(&mockRepo{
		SetActiveFn: func(ctx context.Context, id string, active bool) error {
			gotID, gotActive = id, active
			return nil
		},
	})

	if err := uc.ToggleStatus(context.Background(), "e1", true); err != nil {
		t.Fatalf("ToggleStatus err: %v", err)
	}
	if gotID != "e1" || gotActive != false {
		t.Fatalf("SetActive(%q, %v), want (e1, false)", gotID, gotActive)
	}
}

func TestUpdate_RequiresNameAndEmail(t *testing.T) {
	uc := NewUsecase(&mockRepo{
		GetByIDFn: func(ctx context.Context, id string) (*domain.Employee, error) {
			t.Fatal("GetByID must not be called on invalid input")
			return nil, nil
		},
	})
	if _, err := uc.Update(context.Background(), "e1", UpdateEmployeeInput{Name: "Jane"}); !fleeterr.IsValidation(err) {
		t.Fatalf("err=%v, want validation", err)
	}
}

func TestAuthenticate_RejectsWrongPasswordAndInactive(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	email := "jane@fleet.test"
	stored := domain.Employee{ID: "e1", Name: "Jane", Email: &email, Role: domain.RoleAdmin, PasswordHash: string(hash), IsActive: true}

	uc := NewUsecase(&mockRepo{
		GetByEmailFn: func(ctx context.Context, got string) (*domain.Employee, error) {
			e := stored
			return &e, nil
		},
	})

	dto, err := uc.Authenticate(context.Background(), email, "secret")
	if err != nil {
		t.Fatalf("Authenticate err: %v", err)
	}
	if dto.ID != "e1" {
		t.Fatalf("id=%s", dto.ID)
	}

	if _, err := uc.Authenticate(context.Background(), email, "wrong"); !fleeterr.IsNotFound(err) {
		t.Fatalf("wrong password: err=%v, want not found", err)
	}

	stored.IsActive = false
	if _, err := uc.Authenticate(context.Background(), email, "secret"); !fleeterr.IsNotFound(err) {
		t.Fatalf("inactive account: err=%v, want not found", err)
	}
}

func TestEnsureAdmin_SkipsWhenAccountExists(t *testing.T) {
	email := "admin@fleet.test"
	uc := NewUsecase(&mockRepo{
		GetByEmailFn: func(ctx context.Context, got string) (*domain.Employee, error) {
			return &domain.Employee{ID: "e1", Email: &email}, nil
		},
		CreateFn: func(ctx context.Context, e *domain.Employee) error {
			t.Fatal("Create must not be called when the admin exists")
			return nil
		},
	})
	if err := uc.EnsureAdmin(context.Background(), "Admin", email, "secret"); err != nil {
		t.Fatalf("EnsureAdmin err: %v", err)
	}
}

func TestEnsureAdmin_SeedsHashedPassword(t *testing.T) {
	var created *domain.Employee
	uc := NewUsecase(&mockRepo{
		GetByEmailFn: func(ctx context.Context, got string) (*domain.Employee, error) {
			return nil, fleeterr.ErrNotFound
		},
		CreateFn: func(ctx context.Context, e *domain.Employee) error {
			created = e
			return nil
		},
	})
	if err := uc.EnsureAdmin(context.Background(), "Admin", "admin@fleet.test", "secret"); err != nil {
		t.Fatalf("EnsureAdmin err: %v", err)
	}
	if created == nil {
		t.Fatal("repo Create was not called")
	}
	if created.Role != domain.RoleAdmin {
		t.Fatalf("role=%s", created.Role)
	}
	if created.PasswordHash == "secret" || created.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")) != nil {
		t.Fatal("stored hash does not match the password")
	}
}
