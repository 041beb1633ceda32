package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	"github.com/darziapp/darzi-backend/pkg/enums"
	"github.com/darziapp/darzi-backend/pkg/pagination"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ordersTable := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  shop_id TEXT NOT NULL,
  customer_id TEXT NOT NULL,
  tailor_id TEXT,
  category TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  total TEXT,
  notes TEXT,
  placed_at DATETIME,
  due_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	itemsTable := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  description TEXT NOT NULL,
  material_cost TEXT NOT NULL DEFAULT '0',
  qty INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(ordersTable).Error)
	require.NoError(t, db.Exec(itemsTable).Error)
	return db
}

func TestRepositoryCreateWithItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	shopID := uuid.New()

	total := decimal.NewFromInt(1500)
	created, err := repo.Create(context.Background(), CreateOrderDTO{
		ShopID:     shopID,
		CustomerID: uuid.New(),
		Category:   enums.OrderCategoryNewStitch,
		Total:      &total,
		PlacedAt:   time.Now(),
		Items: []CreateOrderItemDTO{
			{Description: "Sherwani", MaterialCost: decimal.NewFromInt(900), Qty: 1},
			{Description: "Lining", MaterialCost: decimal.NewFromInt(200), Qty: 2},
		},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, enums.OrderStatusPending, created.Status)

	found, err := repo.FindByID(context.Background(), shopID, created.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	require.NotNil(t, found.Total)
	assert.True(t, found.Total.Equal(total))
}

func TestRepositoryFindScopedToShop(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(context.Background(), CreateOrderDTO{
		ShopID:     uuid.New(),
		CustomerID: uuid.New(),
		PlacedAt:   time.Now(),
	})
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListFiltersByStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	shopID := uuid.New()

	pendingOrder, err := repo.Create(context.Background(), CreateOrderDTO{
		ShopID:     shopID,
		CustomerID: uuid.New(),
		PlacedAt:   time.Now(),
	})
	require.NoError(t, err)

	readyOrder, err := repo.Create(context.Background(), CreateOrderDTO{
		ShopID:     shopID,
		CustomerID: uuid.New(),
		PlacedAt:   time.Now(),
	})
	require.NoError(t, err)
	readyOrder.Status = enums.OrderStatusReady
	require.NoError(t, repo.Update(context.Background(), readyOrder))

	ready := enums.OrderStatusReady
	rows, err := repo.List(context.Background(), shopID, ListFilter{Status: &ready}, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, readyOrder.ID, rows[0].ID)
	assert.NotEqual(t, pendingOrder.ID, rows[0].ID)
}

func TestRepositoryListByShopReturnsAllWithItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	shopID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(context.Background(), CreateOrderDTO{
			ShopID:     shopID,
			CustomerID: uuid.New(),
			PlacedAt:   time.Now().AddDate(0, 0, -i),
			Items:      []CreateOrderItemDTO{{Description: "Kurta", MaterialCost: decimal.NewFromInt(300), Qty: 1}},
		})
		require.NoError(t, err)
	}
	// Another shop's order must not leak in.
	_, err := repo.Create(context.Background(), CreateOrderDTO{
		ShopID:     uuid.New(),
		CustomerID: uuid.New(),
		PlacedAt:   time.Now(),
	})
	require.NoError(t, err)

	rows, err := repo.ListByShop(context.Background(), shopID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, shopID, row.ShopID)
		assert.Len(t, row.Items, 1)
	}
}

func TestRepositoryUpdateDoesNotTouchItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	shopID := uuid.New()

	created, err := repo.Create(context.Background(), CreateOrderDTO{
		ShopID:     shopID,
		CustomerID: uuid.New(),
		PlacedAt:   time.Now(),
		Items:      []CreateOrderItemDTO{{Description: "Blouse", MaterialCost: decimal.NewFromInt(250), Qty: 1}},
	})
	require.NoError(t, err)

	created.Status = enums.OrderStatusInProgress
	created.Items = nil
	require.NoError(t, repo.Update(context.Background(), created))

	found, err := repo.FindByID(context.Background(), shopID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusInProgress, found.Status)
	assert.Len(t, found.Items, 1)

	var count int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
