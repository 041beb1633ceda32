package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	"github.com/darziapp/darzi-backend/pkg/enums"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
	"github.com/darziapp/darzi-backend/pkg/pagination"
	"github.com/darziapp/darzi-backend/pkg/types"
)

type orderRepository interface {
	Create(ctx context.Context, dto CreateOrderDTO) (*models.Order, error)
	FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, shopID uuid.UUID, filter ListFilter, params pagination.Params) ([]models.Order, error)
	Update(ctx context.Context, order *models.Order) error
}

type customerFinder interface {
	FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Customer, error)
}

type tailorFinder interface {
	FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Tailor, error)
}

// Service exposes order operations.
type Service interface {
	Create(ctx context.Context, shopID uuid.UUID, input CreateOrderInput) (*OrderDTO, error)
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*OrderDTO, error)
	List(ctx context.Context, shopID uuid.UUID, filter ListFilter, params pagination.Params) (types.Page[OrderDTO], error)
	Update(ctx context.Context, shopID, id uuid.UUID, input UpdateOrderInput) (*OrderDTO, error)
	UpdateStatus(ctx context.Context, shopID, id uuid.UUID, status enums.OrderStatus) (*OrderDTO, error)
}

// CreateOrderInput captures the fields accepted at creation time. A zero
// PlacedAt defaults to the current time.
type CreateOrderInput struct {
	CustomerID uuid.UUID
	TailorID   *uuid.UUID
	Category   enums.OrderCategory
	Total      *decimal.Decimal
	Notes      *string
	PlacedAt   *time.Time
	DueAt      *time.Time
	Items      []CreateOrderItemDTO
}

// UpdateOrderInput captures the mutable order fields; nil leaves a field
// unchanged.
type UpdateOrderInput struct {
	TailorID *uuid.UUID
	Category *enums.OrderCategory
	Total    *decimal.Decimal
	Notes    *string
	DueAt    *time.Time
}

type service struct {
	repo      orderRepository
	customers customerFinder
	tailors   tailorFinder
	now       func() time.Time
}

// NewService builds an order service with the provided repositories.
func NewService(repo orderRepository, customers customerFinder, tailors tailorFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if customers == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	if tailors == nil {
		return nil, fmt.Errorf("tailor repository required")
	}
	return &service{
		repo:      repo,
		customers: customers,
		tailors:   tailors,
		now:       time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, shopID uuid.UUID, input CreateOrderInput) (*OrderDTO, error) {
	if input.CustomerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer_id is required")
	}
	if input.Category != "" && !input.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order category")
	}
	if input.Total != nil && input.Total.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "total cannot be negative")
	}
	for _, item := range input.Items {
		if strings.TrimSpace(item.Description) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item description is required")
		}
		if item.MaterialCost.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item material cost cannot be negative")
		}
	}

	if _, err := s.customers.FindByID(ctx, shopID, input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	if input.TailorID != nil {
		if _, err := s.tailors.FindByID(ctx, shopID, *input.TailorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "tailor not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tailor")
		}
	}

	placedAt := s.now()
	if input.PlacedAt != nil {
		placedAt = *input.PlacedAt
	}

	order, err := s.repo.Create(ctx, CreateOrderDTO{
		ShopID:     shopID,
		CustomerID: input.CustomerID,
		TailorID:   input.TailorID,
		Category:   input.Category,
		Total:      input.Total,
		Notes:      input.Notes,
		PlacedAt:   placedAt,
		DueAt:      input.DueAt,
		Items:      input.Items,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	return FromModel(order), nil
}

func (s *service) GetByID(ctx context.Context, shopID, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return FromModel(order), nil
}

func (s *service) List(ctx context.Context, shopID uuid.UUID, filter ListFilter, params pagination.Params) (types.Page[OrderDTO], error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return types.Page[OrderDTO]{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	rows, err := s.repo.List(ctx, shopID, filter, params)
	if err != nil {
		return types.Page[OrderDTO]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	page := types.Page[OrderDTO]{Items: make([]OrderDTO, 0, len(rows))}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			cursor := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
			page.NextCursor = &cursor
			break
		}
		page.Items = append(page.Items, *FromModel(&rows[i]))
	}
	return page, nil
}

func (s *service) Update(ctx context.Context, shopID, id uuid.UUID, input UpdateOrderInput) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if input.TailorID != nil {
		if _, err := s.tailors.FindByID(ctx, shopID, *input.TailorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "tailor not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tailor")
		}
		order.TailorID = input.TailorID
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order category")
		}
		order.Category = *input.Category
	}
	if input.Total != nil {
		if input.Total.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "total cannot be negative")
		}
		order.Total = input.Total
	}
	if input.Notes != nil {
		order.Notes = input.Notes
	}
	if input.DueAt != nil {
		order.DueAt = input.DueAt
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
	}
	return FromModel(order), nil
}

func (s *service) UpdateStatus(ctx context.Context, shopID, id uuid.UUID, status enums.OrderStatus) (*OrderDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	order, err := s.repo.FindByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	// Cancelled and delivered orders are terminal.
	if order.Status == enums.OrderStatusCancelled || order.Status == enums.OrderStatusDelivered {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("order is already %s", order.Status))
	}

	order.Status = status
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	return FromModel(order), nil
}
