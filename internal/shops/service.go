package shops

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
)

type shopRepository interface {
	Create(ctx context.Context, dto CreateShopDTO) (*models.Shop, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	Update(ctx context.Context, shop *models.Shop) error
}

// Service exposes shop operations.
type Service interface {
	Create(ctx context.Context, input CreateShopInput) (*ShopDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ShopDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateShopInput) (*ShopDTO, error)
}

// CreateShopInput captures the fields accepted at creation time.
type CreateShopInput struct {
	Name      string
	OwnerName string
	Phone     *string
	Email     *string
	Address   *string
}

// UpdateShopInput captures the mutable shop fields; nil leaves a field
// unchanged.
type UpdateShopInput struct {
	Name      *string
	OwnerName *string
	Phone     *string
	Email     *string
	Address   *string
}

type service struct {
	repo shopRepository
}

// NewService builds a shop service with the provided repository.
func NewService(repo shopRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shop repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateShopInput) (*ShopDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	ownerName := strings.TrimSpace(input.OwnerName)
	if ownerName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner_name is required")
	}

	shop, err := s.repo.Create(ctx, CreateShopDTO{
		Name:      name,
		OwnerName: ownerName,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shop")
	}
	return FromModel(shop), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ShopDTO, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shop")
	}
	return FromModel(shop), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateShopInput) (*ShopDTO, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shop")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		shop.Name = name
	}
	if input.OwnerName != nil {
		ownerName := strings.TrimSpace(*input.OwnerName)
		if ownerName == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner_name cannot be empty")
		}
		shop.OwnerName = ownerName
	}
	if input.Phone != nil {
		shop.Phone = input.Phone
	}
	if input.Email != nil {
		shop.Email = input.Email
	}
	if input.Address != nil {
		shop.Address = input.Address
	}

	if err := s.repo.Update(ctx, shop); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shop")
	}
	return FromModel(shop), nil
}
