package tailors

import (
	"time"

	"github.com/google/uuid"

	"github.com/darziapp/darzi-backend/pkg/db/models"
)

// TailorDTO is the API view of a tailor.
type TailorDTO struct {
	ID        uuid.UUID `json:"id"`
	ShopID    uuid.UUID `json:"shop_id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Specialty *string   `json:"specialty,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTailorDTO holds creation-time tailor data.
type CreateTailorDTO struct {
	ShopID    uuid.UUID
	Name      string
	Phone     *string
	Specialty *string
}

// FromModel maps a persisted tailor into a DTO.
func FromModel(m *models.Tailor) *TailorDTO {
	if m == nil {
		return nil
	}
	return &TailorDTO{
		ID:        m.ID,
		ShopID:    m.ShopID,
		Name:      m.Name,
		Phone:     m.Phone,
		Specialty: m.Specialty,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation data. New tailors start
// active.
func (c CreateTailorDTO) ToModel() *models.Tailor {
	return &models.Tailor{
		ShopID:    c.ShopID,
		Name:      c.Name,
		Phone:     c.Phone,
		Specialty: c.Specialty,
		Active:    true,
	}
}
