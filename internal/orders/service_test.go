package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	"github.com/darziapp/darzi-backend/pkg/enums"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
	"github.com/darziapp/darzi-backend/pkg/pagination"
)

type fakeOrderRepo struct {
	byID map[uuid.UUID]*models.Order
	list []models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: make(map[uuid.UUID]*models.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, dto CreateOrderDTO) (*models.Order, error) {
	order := dto.ToModel()
	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	f.byID[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, shopID, id uuid.UUID) (*models.Order, error) {
	order, ok := f.byID[id]
	if !ok || order.ShopID != shopID {
		return nil, gorm.ErrRecordNotFound
	}
	cpy := *order
	return &cpy, nil
}

func (f *fakeOrderRepo) List(_ context.Context, _ uuid.UUID, _ ListFilter, _ pagination.Params) ([]models.Order, error) {
	return f.list, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *models.Order) error {
	f.byID[order.ID] = order
	return nil
}

type fakeCustomerFinder struct {
	known map[uuid.UUID]bool
}

func (f *fakeCustomerFinder) FindByID(_ context.Context, _ uuid.UUID, id uuid.UUID) (*models.Customer, error) {
	if !f.known[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Customer{ID: id}, nil
}

type fakeTailorFinder struct {
	known map[uuid.UUID]bool
}

func (f *fakeTailorFinder) FindByID(_ context.Context, _ uuid.UUID, id uuid.UUID) (*models.Tailor, error) {
	if !f.known[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Tailor{ID: id}, nil
}

type serviceFixture struct {
	svc        Service
	repo       *fakeOrderRepo
	shopID     uuid.UUID
	customerID uuid.UUID
	tailorID   uuid.UUID
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()
	repo := newFakeOrderRepo()
	customerID := uuid.New()
	tailorID := uuid.New()
	svc, err := NewService(
		repo,
		&fakeCustomerFinder{known: map[uuid.UUID]bool{customerID: true}},
		&fakeTailorFinder{known: map[uuid.UUID]bool{tailorID: true}},
	)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return serviceFixture{
		svc:        svc,
		repo:       repo,
		shopID:     uuid.New(),
		customerID: customerID,
		tailorID:   tailorID,
	}
}

func TestServiceCreateValidation(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateOrderInput
	}{
		{"missing customer", CreateOrderInput{}},
		{"unknown customer", CreateOrderInput{CustomerID: uuid.New()}},
		{"bad category", CreateOrderInput{CustomerID: fx.customerID, Category: enums.OrderCategory("embroidery")}},
		{"negative total", CreateOrderInput{CustomerID: fx.customerID, Total: dec(-10)}},
		{"blank item description", CreateOrderInput{
			CustomerID: fx.customerID,
			Items:      []CreateOrderItemDTO{{Description: "  "}},
		}},
		{"negative material cost", CreateOrderInput{
			CustomerID: fx.customerID,
			Items:      []CreateOrderItemDTO{{Description: "Kurta", MaterialCost: decimal.NewFromInt(-5)}},
		}},
		{"unknown tailor", CreateOrderInput{CustomerID: fx.customerID, TailorID: ptr(uuid.New())}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.svc.Create(ctx, fx.shopID, tc.input)
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Errorf("error = %v, want validation error", err)
			}
		})
	}
}

func TestServiceCreateDefaults(t *testing.T) {
	fx := newServiceFixture(t)

	dto, err := fx.svc.Create(context.Background(), fx.shopID, CreateOrderInput{
		CustomerID: fx.customerID,
		TailorID:   &fx.tailorID,
		Category:   enums.OrderCategoryAlteration,
		Total:      dec(450),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.Status != enums.OrderStatusPending {
		t.Errorf("status = %s, want pending", dto.Status)
	}
	if dto.PlacedAt == nil || dto.PlacedAt.IsZero() {
		t.Error("placed_at should default to now")
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	created, err := fx.svc.Create(ctx, fx.shopID, CreateOrderInput{CustomerID: fx.customerID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := fx.svc.UpdateStatus(ctx, fx.shopID, created.ID, enums.OrderStatusInProgress)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != enums.OrderStatusInProgress {
		t.Errorf("status = %s", updated.Status)
	}

	if _, err := fx.svc.UpdateStatus(ctx, fx.shopID, created.ID, enums.OrderStatus("archived")); err == nil {
		t.Error("expected validation error for unknown status")
	}
}

func TestServiceUpdateStatusTerminalStates(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	created, err := fx.svc.Create(ctx, fx.shopID, CreateOrderInput{CustomerID: fx.customerID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := fx.svc.UpdateStatus(ctx, fx.shopID, created.ID, enums.OrderStatusCancelled); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	_, err = fx.svc.UpdateStatus(ctx, fx.shopID, created.ID, enums.OrderStatusInProgress)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Errorf("error = %v, want conflict for cancelled order", err)
	}
}

func TestServiceUpdatePartial(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	created, err := fx.svc.Create(ctx, fx.shopID, CreateOrderInput{CustomerID: fx.customerID, Total: dec(500)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	category := enums.OrderCategoryAlteration
	updated, err := fx.svc.Update(ctx, fx.shopID, created.ID, UpdateOrderInput{Category: &category})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Category != category {
		t.Errorf("category = %s", updated.Category)
	}
	if updated.Total == nil || !updated.Total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("total changed unexpectedly: %v", updated.Total)
	}

	_, err = fx.svc.Update(ctx, fx.shopID, created.ID, UpdateOrderInput{Total: dec(-1)})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestServiceGetByIDNotFound(t *testing.T) {
	fx := newServiceFixture(t)

	_, err := fx.svc.GetByID(context.Background(), fx.shopID, uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestServiceListRejectsBadStatusFilter(t *testing.T) {
	fx := newServiceFixture(t)

	bogus := enums.OrderStatus("bogus")
	_, err := fx.svc.List(context.Background(), fx.shopID, ListFilter{Status: &bogus}, pagination.Params{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Errorf("error = %v, want validation error", err)
	}
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func ptr[T any](v T) *T {
	return &v
}
