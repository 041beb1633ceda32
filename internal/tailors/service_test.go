package tailors

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
	"github.com/darziapp/darzi-backend/pkg/pagination"
)

type fakeTailorRepo struct {
	byID map[uuid.UUID]*models.Tailor
	list []models.Tailor
}

func newFakeTailorRepo() *fakeTailorRepo {
	return &fakeTailorRepo{byID: make(map[uuid.UUID]*models.Tailor)}
}

func (f *fakeTailorRepo) Create(_ context.Context, dto CreateTailorDTO) (*models.Tailor, error) {
	tailor := dto.ToModel()
	tailor.ID = uuid.New()
	tailor.CreatedAt = time.Now()
	f.byID[tailor.ID] = tailor
	return tailor, nil
}

func (f *fakeTailorRepo) FindByID(_ context.Context, shopID, id uuid.UUID) (*models.Tailor, error) {
	tailor, ok := f.byID[id]
	if !ok || tailor.ShopID != shopID {
		return nil, gorm.ErrRecordNotFound
	}
	cpy := *tailor
	return &cpy, nil
}

func (f *fakeTailorRepo) ListByShop(_ context.Context, _ uuid.UUID, _ pagination.Params) ([]models.Tailor, error) {
	return f.list, nil
}

func (f *fakeTailorRepo) Update(_ context.Context, tailor *models.Tailor) error {
	f.byID[tailor.ID] = tailor
	return nil
}

func mustService(t *testing.T, repo tailorRepository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestServiceCreateRequiresName(t *testing.T) {
	svc := mustService(t, newFakeTailorRepo())

	_, err := svc.Create(context.Background(), uuid.New(), CreateTailorInput{Name: "   "})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestServiceCreateStartsActive(t *testing.T) {
	svc := mustService(t, newFakeTailorRepo())

	dto, err := svc.Create(context.Background(), uuid.New(), CreateTailorInput{Name: "Rafiq"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !dto.Active {
		t.Error("new tailor should start active")
	}
}

func TestServiceUpdateDeactivates(t *testing.T) {
	repo := newFakeTailorRepo()
	svc := mustService(t, repo)
	shopID := uuid.New()

	created, err := svc.Create(context.Background(), shopID, CreateTailorInput{Name: "Rafiq"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	inactive := false
	updated, err := svc.Update(context.Background(), shopID, created.ID, UpdateTailorInput{Active: &inactive})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Active {
		t.Error("tailor should be inactive after update")
	}
	if updated.Name != "Rafiq" {
		t.Errorf("name changed unexpectedly to %s", updated.Name)
	}
}

func TestServiceGetByIDScopesToShop(t *testing.T) {
	repo := newFakeTailorRepo()
	svc := mustService(t, repo)

	created, err := svc.Create(context.Background(), uuid.New(), CreateTailorInput{Name: "Rafiq"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.GetByID(context.Background(), uuid.New(), created.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Errorf("error = %v, want not found for foreign shop", err)
	}
}
