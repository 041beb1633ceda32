package shops

import (
	"time"

	"github.com/google/uuid"

	"github.com/darziapp/darzi-backend/pkg/db/models"
)

// ShopDTO is the API view of a shop.
type ShopDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerName string    `json:"owner_name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateShopDTO holds creation-time shop data.
type CreateShopDTO struct {
	Name      string
	OwnerName string
	Phone     *string
	Email     *string
	Address   *string
}

// FromModel maps a persisted shop into a DTO.
func FromModel(m *models.Shop) *ShopDTO {
	if m == nil {
		return nil
	}
	return &ShopDTO{
		ID:        m.ID,
		Name:      m.Name,
		OwnerName: m.OwnerName,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation data.
func (c CreateShopDTO) ToModel() *models.Shop {
	return &models.Shop{
		Name:      c.Name,
		OwnerName: c.OwnerName,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
	}
}
