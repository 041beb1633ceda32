package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	"github.com/darziapp/darzi-backend/pkg/enums"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
)

type paymentRepository interface {
	Create(ctx context.Context, dto CreatePaymentDTO) (*models.Payment, error)
	ListByOrder(ctx context.Context, shopID, orderID uuid.UUID) ([]models.Payment, error)
}

type orderFinder interface {
	FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Order, error)
}

// Service exposes ledger operations.
type Service interface {
	Record(ctx context.Context, shopID uuid.UUID, input RecordPaymentInput) (*PaymentDTO, error)
	ListByOrder(ctx context.Context, shopID, orderID uuid.UUID) ([]PaymentDTO, error)
}

// RecordPaymentInput captures one collected payment. A nil PaidAt defaults
// to the current time.
type RecordPaymentInput struct {
	OrderID uuid.UUID
	Amount  decimal.Decimal
	Method  enums.PaymentMethod
	Note    *string
	PaidAt  *time.Time
}

type service struct {
	repo   paymentRepository
	orders orderFinder
	now    func() time.Time
}

// NewService builds a ledger service with the provided repositories.
func NewService(repo paymentRepository, orders orderFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("payment repository required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{
		repo:   repo,
		orders: orders,
		now:    time.Now,
	}, nil
}

func (s *service) Record(ctx context.Context, shopID uuid.UUID, input RecordPaymentInput) (*PaymentDTO, error) {
	if input.OrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order_id is required")
	}
	if !input.Amount.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}
	if !input.Method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	order, err := s.orders.FindByID(ctx, shopID, input.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order.Status == enums.OrderStatusCancelled {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "cannot record payment against cancelled order")
	}

	paidAt := s.now()
	if input.PaidAt != nil {
		paidAt = *input.PaidAt
	}

	payment, err := s.repo.Create(ctx, CreatePaymentDTO{
		ShopID:  shopID,
		OrderID: input.OrderID,
		Amount:  input.Amount,
		Method:  input.Method,
		Note:    input.Note,
		PaidAt:  paidAt,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record payment")
	}
	return FromModel(payment), nil
}

func (s *service) ListByOrder(ctx context.Context, shopID, orderID uuid.UUID) ([]PaymentDTO, error) {
	rows, err := s.repo.ListByOrder(ctx, shopID, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payments")
	}
	dtos := make([]PaymentDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *FromModel(&rows[i]))
	}
	return dtos, nil
}
