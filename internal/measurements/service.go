package measurements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
)

type measurementRepository interface {
	Create(ctx context.Context, dto CreateMeasurementDTO) (*models.Measurement, error)
	FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Measurement, error)
	ListByCustomer(ctx context.Context, shopID, customerID uuid.UUID) ([]models.Measurement, error)
	Update(ctx context.Context, measurement *models.Measurement) error
	Delete(ctx context.Context, shopID, id uuid.UUID) error
}

type customerFinder interface {
	FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Customer, error)
}

// Service exposes measurement operations.
type Service interface {
	Create(ctx context.Context, shopID uuid.UUID, input CreateMeasurementInput) (*MeasurementDTO, error)
	ListByCustomer(ctx context.Context, shopID, customerID uuid.UUID) ([]MeasurementDTO, error)
	Update(ctx context.Context, shopID, id uuid.UUID, input UpdateMeasurementInput) (*MeasurementDTO, error)
	Delete(ctx context.Context, shopID, id uuid.UUID) error
}

// CreateMeasurementInput captures one named measurement profile. Values is
// free-form JSON because garment types vary per shop.
type CreateMeasurementInput struct {
	CustomerID uuid.UUID
	Label      string
	Values     json.RawMessage
}

// UpdateMeasurementInput captures the mutable measurement fields; nil leaves
// a field unchanged.
type UpdateMeasurementInput struct {
	Label  *string
	Values json.RawMessage
}

type service struct {
	repo      measurementRepository
	customers customerFinder
}

// NewService builds a measurement service with the provided repositories.
func NewService(repo measurementRepository, customers customerFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("measurement repository required")
	}
	if customers == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo, customers: customers}, nil
}

func validValuesJSON(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var values map[string]json.RawMessage
	return json.Unmarshal(raw, &values) == nil
}

func (s *service) Create(ctx context.Context, shopID uuid.UUID, input CreateMeasurementInput) (*MeasurementDTO, error) {
	if input.CustomerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer_id is required")
	}
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "label is required")
	}
	if !validValuesJSON(input.Values) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "values must be a JSON object")
	}

	if _, err := s.customers.FindByID(ctx, shopID, input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}

	measurement, err := s.repo.Create(ctx, CreateMeasurementDTO{
		ShopID:     shopID,
		CustomerID: input.CustomerID,
		Label:      label,
		Values:     input.Values,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create measurement")
	}
	return FromModel(measurement), nil
}

func (s *service) ListByCustomer(ctx context.Context, shopID, customerID uuid.UUID) ([]MeasurementDTO, error) {
	rows, err := s.repo.ListByCustomer(ctx, shopID, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list measurements")
	}
	dtos := make([]MeasurementDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *FromModel(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, shopID, id uuid.UUID, input UpdateMeasurementInput) (*MeasurementDTO, error) {
	measurement, err := s.repo.FindByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "measurement not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load measurement")
	}

	if input.Label != nil {
		label := strings.TrimSpace(*input.Label)
		if label == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "label cannot be empty")
		}
		measurement.Label = label
	}
	if input.Values != nil {
		if !validValuesJSON(input.Values) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "values must be a JSON object")
		}
		measurement.Values = input.Values
	}

	if err := s.repo.Update(ctx, measurement); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update measurement")
	}
	return FromModel(measurement), nil
}

func (s *service) Delete(ctx context.Context, shopID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, shopID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "measurement not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete measurement")
	}
	return nil
}
