package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Measurement stores one named measurement profile for a customer. Values is
// a free-form map of measurement names to numbers (chest, waist, inseam...)
// because garment types vary per shop.
type Measurement struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ShopID     uuid.UUID       `gorm:"column:shop_id;type:uuid;not null" json:"shop_id"`
	CustomerID uuid.UUID       `gorm:"column:customer_id;type:uuid;not null" json:"customer_id"`
	Label      string          `gorm:"column:label;not null" json:"label"`
	Values     json.RawMessage `gorm:"column:values;type:jsonb" json:"values"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
