package measurements

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/darziapp/darzi-backend/pkg/db/models"
)

// MeasurementDTO is the API view of a measurement profile.
type MeasurementDTO struct {
	ID         uuid.UUID       `json:"id"`
	ShopID     uuid.UUID       `json:"shop_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Label      string          `json:"label"`
	Values     json.RawMessage `json:"values,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CreateMeasurementDTO holds creation-time measurement data.
type CreateMeasurementDTO struct {
	ShopID     uuid.UUID
	CustomerID uuid.UUID
	Label      string
	Values     json.RawMessage
}

// FromModel maps a persisted measurement into a DTO.
func FromModel(m *models.Measurement) *MeasurementDTO {
	if m == nil {
		return nil
	}
	return &MeasurementDTO{
		ID:         m.ID,
		ShopID:     m.ShopID,
		CustomerID: m.CustomerID,
		Label:      m.Label,
		Values:     m.Values,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation data.
func (c CreateMeasurementDTO) ToModel() *models.Measurement {
	return &models.Measurement{
		ShopID:     c.ShopID,
		CustomerID: c.CustomerID,
		Label:      c.Label,
		Values:     c.Values,
	}
}
