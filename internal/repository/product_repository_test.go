package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var productColumns = []string{
	"id", "name", "category", "price", "stock", "description", "image_url", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func TestProductRepository_List_OrdersByCreationDesc(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewProductRepository(gdb)

	now := time.Now()
	newer := uuid.New()
	older := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM `products` ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(newer.String(), "Collar", "accesorio", "12.25", 8, nil, nil, now, now).
			AddRow(older.String(), "Pelota", "juguete", "5.00", 3, nil, nil, now.Add(-time.Hour), now.Add(-time.Hour)))

	products, err := repo.List(context.Background(), ProductFilter{})

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, newer, products[0].ID)
	assert.Equal(t, older, products[1].ID)
	assert.True(t, products[0].CreatedAt.After(products[1].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_FiltersByExactCategory(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewProductRepository(gdb)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `products` WHERE category = \\? ORDER BY created_at DESC").
		WithArgs("alimento").
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(uuid.New().String(), "Royal Canin Adult", "alimento", "45.50", 10, nil, nil, now, now))

	products, err := repo.List(context.Background(), ProductFilter{Category: "alimento"})

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "alimento", products[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_AppliesLimit(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewProductRepository(gdb)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `products` ORDER BY created_at DESC LIMIT").
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(uuid.New().String(), "Collar", "accesorio", "12.25", 8, nil, nil, now, now))

	products, err := repo.List(context.Background(), ProductFilter{Limit: 1})

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A non-positive limit means "no limit" and must not reach the query.
func TestProductRepository_List_IgnoresNonPositiveLimit(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewProductRepository(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `products` ORDER BY created_at DESC$").
		WillReturnRows(sqlmock.NewRows(productColumns))

	_, err := repo.List(context.Background(), ProductFilter{Limit: -1})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewProductRepository(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `products` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(productColumns))

	product, err := repo.FindByID(context.Background(), uuid.New())

	assert.Equal(t, gorm.ErrRecordNotFound, err)
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Delete(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewProductRepository(gdb)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `products` WHERE id = \\?").
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
