package customers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/pkg/pagination"
)

func setupCustomersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS customers (
  id TEXT PRIMARY KEY,
  shop_id TEXT NOT NULL,
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  email TEXT,
  address TEXT,
  notes TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedCustomer(t *testing.T, repo *Repository, shopID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	created, err := repo.Create(context.Background(), CreateCustomerDTO{
		ShopID: shopID,
		Name:   name,
		Phone:  "555-0100",
	})
	require.NoError(t, err)
	return created.ID
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := setupCustomersTestDB(t)
	repo := NewRepository(db)
	shopID := uuid.New()

	email := "mina@example.com"
	created, err := repo.Create(context.Background(), CreateCustomerDTO{
		ShopID: shopID,
		Name:   "Mina Qureshi",
		Phone:  "555-0101",
		Email:  &email,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.FindByID(context.Background(), shopID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mina Qureshi", found.Name)
	require.NotNil(t, found.Email)
	assert.Equal(t, email, *found.Email)
}

func TestRepositoryFindScopedToShop(t *testing.T) {
	db := setupCustomersTestDB(t)
	repo := NewRepository(db)

	id := seedCustomer(t, repo, uuid.New(), "Scoped Customer")

	_, err := repo.FindByID(context.Background(), uuid.New(), id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListByShopPagination(t *testing.T) {
	db := setupCustomersTestDB(t)
	repo := NewRepository(db)
	shopID := uuid.New()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		created, err := repo.Create(context.Background(), CreateCustomerDTO{
			ShopID: shopID,
			Name:   fmt.Sprintf("Customer %d", i),
			Phone:  "555-0100",
		})
		require.NoError(t, err)
		// Spread created_at so cursor ordering is deterministic.
		require.NoError(t, db.Model(created).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	first, err := repo.ListByShop(context.Background(), shopID, ListFilter{}, pagination.Params{Limit: 2})
	require.NoError(t, err)
	// Buffer row included so the service can detect a next page.
	require.Len(t, first, 3)
	assert.Equal(t, "Customer 4", first[0].Name)

	cursor := pagination.EncodeCursor(pagination.Cursor{CreatedAt: first[1].CreatedAt, ID: first[1].ID})
	second, err := repo.ListByShop(context.Background(), shopID, ListFilter{}, pagination.Params{Limit: 2, Cursor: cursor})
	require.NoError(t, err)
	require.NotEmpty(t, second)
	assert.Equal(t, "Customer 2", second[0].Name)
}

func TestRepositoryListByShopSearch(t *testing.T) {
	db := setupCustomersTestDB(t)
	repo := NewRepository(db)
	shopID := uuid.New()

	seedCustomer(t, repo, shopID, "Mina Qureshi")
	seedCustomer(t, repo, shopID, "Asha Verma")

	rows, err := repo.ListByShop(context.Background(), shopID, ListFilter{Search: "mina"}, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Mina Qureshi", rows[0].Name)

	// Phone matches too.
	rows, err = repo.ListByShop(context.Background(), shopID, ListFilter{Search: "555-01"}, pagination.Params{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRepositoryDelete(t *testing.T) {
	db := setupCustomersTestDB(t)
	repo := NewRepository(db)
	shopID := uuid.New()

	id := seedCustomer(t, repo, shopID, "To Remove")

	require.NoError(t, repo.Delete(context.Background(), shopID, id))
	_, err := repo.FindByID(context.Background(), shopID, id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(context.Background(), shopID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
