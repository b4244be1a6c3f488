package repository

import (
	"context"
	"fmt"
	"time"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	PostWithStock(ctx context.Context, txn *model.Transaction, productID string, newQuantity int) error
	FindByProduct(ctx context.Context, productID string) ([]model.Transaction, error)
	GetStockMovement(ctx context.Context, startDate, endDate time.Time) ([]StockMovementData, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

// StockMovementData is one chart point: warehouse inflow and outflow for a day
type StockMovementData struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type DashboardStats struct {
	TotalProducts  int64           `json:"total_products"`
	LowStockCount  int64           `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
}

// LowStockThreshold is the quantity under which a product counts as low on stock.
const LowStockThreshold = 10

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// PostWithStock inserts the ledger record and sets the product's quantity to
// newQuantity inside one database transaction. The quantity is an absolute
// value computed by the caller.
func (r *transactionRepo) PostWithStock(ctx context.Context, txn *model.Transaction, productID string, newQuantity int) error {
	if err := checkPosting(txn, newQuantity); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return apperror.NewStoreError("create transaction", err)
		}

		res := tx.Model(&model.Product{}).Where("id = ?", productID).Update("quantity", newQuantity)
		if res.Error != nil {
			return apperror.NewStoreError("update product quantity", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperror.NewNotFoundError("product", productID)
		}
		return nil
	})
}

// checkPosting rejects ledger records whose amount sign contradicts their
// type and quantity updates that would go negative.
func checkPosting(txn *model.Transaction, newQuantity int) error {
	if !txn.SignMatchesType() {
		return apperror.NewValidationError(fmt.Sprintf("%s amount must not be %s", txn.Type, txn.Amount.String()))
	}
	if newQuantity < 0 {
		return apperror.NewValidationError("quantity must not be negative")
	}
	return nil
}

func (r *transactionRepo) FindByProduct(ctx context.Context, productID string) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_warehouse_operation = ?", productID, true).
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, wrapErr("list product movement", "transaction", productID, err)
	}
	return transactions, nil
}

func (r *transactionRepo) GetStockMovement(ctx context.Context, startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(`
			TO_CHAR(DATE(date), 'YYYY-MM-DD') as day,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN -amount ELSE 0 END), 0) as expense
		`).
		Where("is_warehouse_operation = ? AND date BETWEEN ? AND ?", true, startDate, endDate).
		Group("DATE(date)").
		Order("day ASC").
		Rows()
	if err != nil {
		return nil, apperror.NewStoreError("stock movement", err)
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Income, &data.Expense); err != nil {
			return nil, apperror.NewStoreError("stock movement", err)
		}
		results = append(results, data)
	}

	return results, rows.Err()
}

func (r *transactionRepo) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, apperror.NewStoreError("count products", err)
	}

	if err := db.Model(&model.Product{}).Where("quantity < ?", LowStockThreshold).Count(&stats.LowStockCount).Error; err != nil {
		return nil, apperror.NewStoreError("count low stock", err)
	}

	if err := db.Model(&model.Product{}).Select("COALESCE(SUM(quantity * average_purchase_price), 0)").Scan(&stats.TotalValuation).Error; err != nil {
		return nil, apperror.NewStoreError("total valuation", err)
	}

	return &stats, nil
}
