package customers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
	"github.com/darziapp/darzi-backend/pkg/pagination"
)

type fakeCustomerRepo struct {
	byID       map[uuid.UUID]*models.Customer
	list       []models.Customer
	listErr    error
	lastFilter ListFilter
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[uuid.UUID]*models.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, dto CreateCustomerDTO) (*models.Customer, error) {
	customer := dto.ToModel()
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now()
	f.byID[customer.ID] = customer
	return customer, nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, shopID, id uuid.UUID) (*models.Customer, error) {
	customer, ok := f.byID[id]
	if !ok || customer.ShopID != shopID {
		return nil, gorm.ErrRecordNotFound
	}
	cpy := *customer
	return &cpy, nil
}

func (f *fakeCustomerRepo) ListByShop(_ context.Context, _ uuid.UUID, filter ListFilter, _ pagination.Params) ([]models.Customer, error) {
	f.lastFilter = filter
	return f.list, f.listErr
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *models.Customer) error {
	f.byID[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, shopID, id uuid.UUID) error {
	customer, ok := f.byID[id]
	if !ok || customer.ShopID != shopID {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func mustService(t *testing.T, repo customerRepository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestServiceCreateValidation(t *testing.T) {
	svc := mustService(t, newFakeCustomerRepo())

	_, err := svc.Create(context.Background(), uuid.New(), CreateCustomerInput{Phone: "555-0100"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Errorf("missing name: error = %v, want validation error", err)
	}

	_, err = svc.Create(context.Background(), uuid.New(), CreateCustomerInput{Name: "Asha"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Errorf("missing phone: error = %v, want validation error", err)
	}
}

func TestServiceCreateTrimsFields(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := mustService(t, repo)

	dto, err := svc.Create(context.Background(), uuid.New(), CreateCustomerInput{Name: "  Asha Verma  ", Phone: " 555-0100 "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.Name != "Asha Verma" || dto.Phone != "555-0100" {
		t.Errorf("fields not trimmed: %+v", dto)
	}
}

func TestServiceGetByIDNotFound(t *testing.T) {
	svc := mustService(t, newFakeCustomerRepo())

	_, err := svc.GetByID(context.Background(), uuid.New(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestServiceUpdateAppliesPartialInput(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := mustService(t, repo)
	shopID := uuid.New()

	created, err := svc.Create(context.Background(), shopID, CreateCustomerInput{Name: "Asha", Phone: "555-0100"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newPhone := "555-0199"
	updated, err := svc.Update(context.Background(), shopID, created.ID, UpdateCustomerInput{Phone: &newPhone})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Phone != newPhone {
		t.Errorf("phone = %s, want %s", updated.Phone, newPhone)
	}
	if updated.Name != "Asha" {
		t.Errorf("name changed unexpectedly to %s", updated.Name)
	}

	empty := "  "
	if _, err := svc.Update(context.Background(), shopID, created.ID, UpdateCustomerInput{Name: &empty}); err == nil {
		t.Error("expected validation error for blank name")
	}
}

func TestServiceListPaginates(t *testing.T) {
	repo := newFakeCustomerRepo()
	// Return limit+1 rows so the service should emit a next cursor.
	for i := 0; i < 3; i++ {
		repo.list = append(repo.list, models.Customer{
			ID:        uuid.New(),
			ShopID:    uuid.New(),
			Name:      fmt.Sprintf("Customer %d", i),
			Phone:     "555-0100",
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		})
	}
	svc := mustService(t, repo)

	page, err := svc.List(context.Background(), uuid.New(), ListFilter{}, pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Items) != 2 {
		t.Errorf("items = %d, want 2", len(page.Items))
	}
	if page.NextCursor == nil {
		t.Error("expected next cursor for overfull page")
	}

	repo.list = repo.list[:1]
	page, err = svc.List(context.Background(), uuid.New(), ListFilter{}, pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.NextCursor != nil {
		t.Error("expected no cursor on final page")
	}
}

func TestServiceListTrimsSearch(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := mustService(t, repo)

	if _, err := svc.List(context.Background(), uuid.New(), ListFilter{Search: "  mina "}, pagination.Params{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastFilter.Search != "mina" {
		t.Errorf("search = %q, want %q", repo.lastFilter.Search, "mina")
	}
}

func TestServiceDelete(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := mustService(t, repo)
	shopID := uuid.New()

	created, err := svc.Create(context.Background(), shopID, CreateCustomerInput{Name: "Asha", Phone: "555-0100"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), shopID, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	err = svc.Delete(context.Background(), shopID, created.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Errorf("error = %v, want not found", err)
	}
}
