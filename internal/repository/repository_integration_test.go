package repository

import (
	"context"
	"os"
	"strings"
	"testing"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/pkg/database"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by DATABASE_URL. The tables are
// migrated and emptied before each test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 and DATABASE_URL to run integration tests (requires postgres)")
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set")
	}

	log, _ := test.NewNullLogger()
	db, err := database.ConnectDB(dsn, log)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, db.Exec("TRUNCATE products, categories, transactions").Error)
	return db
}

func TestIntegration_PostWithStock(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	project := model.Category{Title: "P1", Row: 1}
	require.NoError(t, db.Create(&project).Error)
	product := model.Product{Name: "Cement", Unit: "bag", Quantity: 10, AveragePurchasePrice: decimal.NewFromInt(100)}
	require.NoError(t, db.Create(&product).Error)

	txRepo := NewTransactionRepo(db)
	productRepo := NewProductRepo(db)
	productID := product.ID
	txn := &model.Transaction{
		CategoryID:           project.ID,
		ProductID:            &productID,
		FromUser:             model.WarehouseParty,
		ToUser:               project.Title,
		Amount:               decimal.NewFromInt(-200),
		Type:                 model.TxExpense,
		IsWarehouseOperation: true,
	}
	require.NoError(t, txRepo.PostWithStock(ctx, txn, product.ID, 8))

	stored, err := productRepo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stored.Quantity)

	movement, err := txRepo.FindByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, movement, 1)
	assert.False(t, movement[0].Date.IsZero())
	assert.True(t, movement[0].Amount.Equal(decimal.NewFromInt(-200)))
}

func TestIntegration_PostWithStockRollsBackPair(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	project := model.Category{Title: "P1", Row: 1}
	require.NoError(t, db.Create(&project).Error)

	missing := "no-such-product"
	txn := &model.Transaction{
		CategoryID: project.ID,
		ProductID:  &missing,
		Amount:     decimal.NewFromInt(-1),
		Type:       model.TxExpense,
	}
	err := NewTransactionRepo(db).PostWithStock(ctx, txn, missing, 0)
	assert.True(t, apperror.IsNotFound(err))

	var count int64
	require.NoError(t, db.Model(&model.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIntegration_ProductRepo(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProductRepo(db)

	product := model.Product{Name: "Gloves", Unit: "pair", Quantity: 3}
	require.NoError(t, db.Create(&product).Error)

	require.NoError(t, repo.UpdateFields(ctx, product.ID, map[string]interface{}{"category": "Safety"}))
	stored, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Safety", stored.Category)

	require.NoError(t, repo.Delete(ctx, product.ID))
	_, err = repo.FindByID(ctx, product.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(repo.Delete(ctx, product.ID)))
}

func TestIntegration_InvalidRecordFailsClosed(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Exec("INSERT INTO categories (id, title, \"row\", created_at, updated_at) VALUES ('c-1', '', 1, now(), now())").Error)

	_, err := NewCategoryRepo(db).FindByID(ctx, "c-1")
	assert.True(t, apperror.IsStore(err))
	assert.Contains(t, err.Error(), "invalid record")
}

func TestIntegration_PostWithStockRejectsWrongSign(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	project := model.Category{Title: "P1", Row: 1}
	require.NoError(t, db.Create(&project).Error)
	product := model.Product{Name: "Cement", Unit: "bag", Quantity: 10}
	require.NoError(t, db.Create(&product).Error)

	productID := product.ID
	err := NewTransactionRepo(db).PostWithStock(ctx, &model.Transaction{
		CategoryID: project.ID,
		ProductID:  &productID,
		Amount:     decimal.NewFromInt(200),
		Type:       model.TxExpense,
	}, product.ID, 8)
	assert.True(t, apperror.IsValidation(err))

	var count int64
	require.NoError(t, db.Model(&model.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
	stored, err := NewProductRepo(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Quantity)
}
