package customers

import (
	"time"

	"github.com/google/uuid"

	"github.com/darziapp/darzi-backend/pkg/db/models"
)

// CustomerDTO is the API view of a customer.
type CustomerDTO struct {
	ID        uuid.UUID `json:"id"`
	ShopID    uuid.UUID `json:"shop_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCustomerDTO holds creation-time customer data.
type CreateCustomerDTO struct {
	ShopID  uuid.UUID
	Name    string
	Phone   string
	Email   *string
	Address *string
	Notes   *string
}

// FromModel maps a persisted customer into a DTO.
func FromModel(m *models.Customer) *CustomerDTO {
	if m == nil {
		return nil
	}
	return &CustomerDTO{
		ID:        m.ID,
		ShopID:    m.ShopID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation data.
func (c CreateCustomerDTO) ToModel() *models.Customer {
	return &models.Customer{
		ShopID:  c.ShopID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
		Notes:   c.Notes,
	}
}
