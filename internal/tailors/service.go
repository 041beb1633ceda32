package tailors

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

type tailorRepository interface {
	Create(ctx context.Context, dto CreateTailorDTO) (*models.Tailor, error)
	FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Tailor, error)
	ListByShop(ctx context.Context, shopID uuid.UUID, params pagination.Params) ([]models.Tailor, error)
	Update(ctx context.Context, tailor *models.Tailor) error
}

// Service exposes tailor operations.
type Service interface {
	Create(ctx context.Context, shopID uuid.UUID, input CreateTailorInput) (*TailorDTO, error)
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*TailorDTO, error)
	List(ctx context.Context, shopID uuid.UUID, params pagination.Params) (types.Page[TailorDTO], error)
	Update(ctx context.Context, shopID, id uuid.UUID, input UpdateTailorInput) (*TailorDTO, error)
}

// CreateTailorInput captures the fields accepted at creation time.
type CreateTailorInput struct {
	Name      string
	Phone     *string
	Specialty *string
}

// UpdateTailorInput captures the mutable tailor fields; nil leaves a field
// unchanged. Deactivation replaces deletion so past orders keep their
// assignment.
type UpdateTailorInput struct {
	Name      *string
	Phone     *string
	Specialty *string
	Active    *bool
}

type service struct {
	repo tailorRepository
}

// NewService builds a tailor service with the provided repository.
func NewService(repo tailorRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tailor repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, shopID uuid.UUID, input CreateTailorInput) (*TailorDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	tailor, err := s.repo.Create(ctx, CreateTailorDTO{
		ShopID:    shopID,
		Name:      name,
		Phone:     input.Phone,
		Specialty: input.Specialty,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create tailor")
	}
	return FromModel(tailor), nil
}

func (s *service) GetByID(ctx context.Context, shopID, id uuid.UUID) (*TailorDTO, error) {
	tailor, err := s.repo.FindByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tailor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tailor")
	}
	return FromModel(tailor), nil
}

func (s *service) List(ctx context.Context, shopID uuid.UUID, params pagination.Params) (types.Page[TailorDTO], error) {
	rows, err := s.repo.ListByShop(ctx, shopID, params)
	if err != nil {
		return types.Page[TailorDTO]{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list tailors")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	page := types.Page[TailorDTO]{Items: make([]TailorDTO, 0, len(rows))}
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

func (s *service) Update(ctx context.Context, shopID, id uuid.UUID, input UpdateTailorInput) (*TailorDTO, error) {
	tailor, err := s.repo.FindByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tailor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tailor")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		tailor.Name = name
	}
	if input.Phone != nil {
		tailor.Phone = input.Phone
	}
	if input.Specialty != nil {
		tailor.Specialty = input.Specialty
	}
	if input.Active != nil {
		tailor.Active = *input.Active
	}

	if err := s.repo.Update(ctx, tailor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update tailor")
	}
	return FromModel(tailor), nil
}
