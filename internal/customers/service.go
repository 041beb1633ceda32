package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
	"github.com/darziapp/darzi-backend/pkg/pagination"
	"github.com/darziapp/darzi-backend/pkg/types"
)

type customerRepository interface {
	Create(ctx context.Context, dto CreateCustomerDTO) (*models.Customer, error)
	FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Customer, error)
	ListByShop(ctx context.Context, shopID uuid.UUID, filter ListFilter, params pagination.Params) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, shopID, id uuid.UUID) error
}

// Service exposes customer operations.
type Service interface {
	Create(ctx context.Context, shopID uuid.UUID, input CreateCustomerInput) (*CustomerDTO, error)
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*CustomerDTO, error)
	List(ctx context.Context, shopID uuid.UUID, filter ListFilter, params pagination.Params) (types.Page[CustomerDTO], error)
	Update(ctx context.Context, shopID, id uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error)
	Delete(ctx context.Context, shopID, id uuid.UUID) error
}

// CreateCustomerInput captures the fields accepted at creation time.
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Email   *string
	Address *string
	Notes   *string
}

// ListFilter narrows customer listings. Search matches name or phone,
// case-insensitively.
type ListFilter struct {
	Search string
}

// UpdateCustomerInput captures the mutable customer fields; nil means leave
// the field unchanged.
type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Notes   *string
}

type service struct {
	repo customerRepository
}

// NewService builds a customer service with the provided repository.
func NewService(repo customerRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, shopID uuid.UUID, input CreateCustomerInput) (*CustomerDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}

	customer, err := s.repo.Create(ctx, CreateCustomerDTO{
		ShopID:  shopID,
		Name:    name,
		Phone:   phone,
		Email:   input.Email,
		Address: input.Address,
		Notes:   input.Notes,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}
	return FromModel(customer), nil
}

func (s *service) GetByID(ctx context.Context, shopID, id uuid.UUID) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return FromModel(customer), nil
}

func (s *service) List(ctx context.Context, shopID uuid.UUID, filter ListFilter, params pagination.Params) (types.Page[CustomerDTO], error) {
	filter.Search = strings.TrimSpace(filter.Search)
	rows, err := s.repo.ListByShop(ctx, shopID, filter, params)
	if err != nil {
		return types.Page[CustomerDTO]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	page := types.Page[CustomerDTO]{Items: make([]CustomerDTO, 0, len(rows))}
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

func (s *service) Update(ctx context.Context, shopID, id uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		customer.Name = name
	}
	if input.Phone != nil {
		phone := strings.TrimSpace(*input.Phone)
		if phone == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone cannot be empty")
		}
		customer.Phone = phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update customer")
	}
	return FromModel(customer), nil
}

func (s *service) Delete(ctx context.Context, shopID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, shopID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete customer")
	}
	return nil
}
