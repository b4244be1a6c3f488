package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockStore is an in-memory stand-in for the database shared by the mock
// repositories below. Tests use it to observe writes and inject failures.
type MockStore struct {
	mu           sync.Mutex
	products     map[string]model.Product
	order        []string
	Categories   []model.Category
	Transactions []model.Transaction

	// Err, when set, fails every call.
	Err error
	// FailPostAt fails the n-th PostWithStock call (1-based) with FailPostErr.
	FailPostAt  int
	FailPostErr error
	// FailUpdateErr fails UpdateQuantity and UpdateFields.
	FailUpdateErr error
	// FailDeleteErr fails Delete.
	FailDeleteErr error

	Calls     int
	postCalls int
}

func NewMockStore(products []model.Product, categories []model.Category) *MockStore {
	s := &MockStore{products: make(map[string]model.Product), Categories: categories}
	for _, p := range products {
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

// Product returns the stored product, bypassing call counting.
func (s *MockStore) Product(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return p, ok
}

func (s *MockStore) begin() error {
	s.mu.Lock()
	s.Calls++
	return s.Err
}

type MockProductRepository struct{ Store *MockStore }
type MockCategoryRepository struct{ Store *MockStore }
type MockTransactionRepository struct{ Store *MockStore }

func (r *MockProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	s := r.Store
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, apperror.NewStoreError("list products", err)
	}
	products := []model.Product{}
	for _, id := range s.order {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *MockProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	s := r.Store
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, apperror.NewStoreError("get product", err)
	}
	p, ok := s.products[id]
	if !ok {
		return nil, apperror.NewNotFoundError("product", id)
	}
	return &p, nil
}

func (r *MockProductRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"quantity": quantity})
}

func (r *MockProductRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	s := r.Store
	err := s.begin()
	defer s.mu.Unlock()
	if err == nil {
		err = s.FailUpdateErr
	}
	if err != nil {
		return apperror.NewStoreError("update product", err)
	}
	p, ok := s.products[id]
	if !ok {
		return apperror.NewNotFoundError("product", id)
	}
	for k, v := range fields {
		switch k {
		case "quantity":
			p.Quantity = v.(int)
		case "category":
			p.Category = v.(string)
		case "name":
			p.Name = v.(string)
		case "unit":
			p.Unit = v.(string)
		case "image":
			uri := v.(string)
			p.Image = &uri
		case "average_purchase_price":
			p.AveragePurchasePrice = v.(decimal.Decimal)
		default:
			return apperror.NewStoreError("update product", errors.New("unknown field "+k))
		}
	}
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return nil
}

func (r *MockProductRepository) Delete(ctx context.Context, id string) error {
	s := r.Store
	err := s.begin()
	defer s.mu.Unlock()
	if err == nil {
		err = s.FailDeleteErr
	}
	if err != nil {
		return apperror.NewStoreError("delete product", err)
	}
	if _, ok := s.products[id]; !ok {
		return apperror.NewNotFoundError("product", id)
	}
	delete(s.products, id)
	return nil
}

func (r *MockCategoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	s := r.Store
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, apperror.NewStoreError("list categories", err)
	}
	return append([]model.Category{}, s.Categories...), nil
}

func (r *MockCategoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	s := r.Store
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, apperror.NewStoreError("get category", err)
	}
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			c := s.Categories[i]
			return &c, nil
		}
	}
	return nil, apperror.NewNotFoundError("category", id)
}

func (r *MockTransactionRepository) PostWithStock(ctx context.Context, txn *model.Transaction, productID string, newQuantity int) error {
	if err := checkPosting(txn, newQuantity); err != nil {
		return err
	}
	s := r.Store
	err := s.begin()
	defer s.mu.Unlock()
	s.postCalls++
	if err == nil && s.FailPostAt == s.postCalls {
		err = s.FailPostErr
	}
	if err != nil {
		return apperror.NewStoreError("create transaction", err)
	}
	p, ok := s.products[productID]
	if !ok {
		return apperror.NewNotFoundError("product", productID)
	}
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.Date.IsZero() {
		txn.Date = time.Now()
	}
	s.Transactions = append(s.Transactions, *txn)
	p.Quantity = newQuantity
	s.products[productID] = p
	return nil
}

func (r *MockTransactionRepository) FindByProduct(ctx context.Context, productID string) ([]model.Transaction, error) {
	s := r.Store
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, apperror.NewStoreError("list product movement", err)
	}
	result := []model.Transaction{}
	for _, t := range s.Transactions {
		if t.IsWarehouseOperation && t.ProductID != nil && *t.ProductID == productID {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (r *MockTransactionRepository) GetStockMovement(ctx context.Context, startDate, endDate time.Time) ([]StockMovementData, error) {
	s := r.Store
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, apperror.NewStoreError("stock movement", err)
	}
	byDay := map[string]*StockMovementData{}
	var days []string
	for _, t := range s.Transactions {
		if !t.IsWarehouseOperation || t.Date.Before(startDate) || t.Date.After(endDate) {
			continue
		}
		day := t.Date.Format(model.DocumentDateLayout)
		d, ok := byDay[day]
		if !ok {
			d = &StockMovementData{Date: day, Income: decimal.Zero, Expense: decimal.Zero}
			byDay[day] = d
			days = append(days, day)
		}
		switch t.Type {
		case model.TxIncome:
			d.Income = d.Income.Add(t.Amount)
		case model.TxExpense:
			d.Expense = d.Expense.Sub(t.Amount)
		}
	}
	sort.Strings(days)
	result := make([]StockMovementData, 0, len(days))
	for _, day := range days {
		result = append(result, *byDay[day])
	}
	return result, nil
}

func (r *MockTransactionRepository) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	s := r.Store
	err := s.begin()
	defer s.mu.Unlock()
	if err != nil {
		return nil, apperror.NewStoreError("count products", err)
	}
	stats := &DashboardStats{TotalValuation: decimal.Zero}
	for _, p := range s.products {
		stats.TotalProducts++
		if p.Quantity < LowStockThreshold {
			stats.LowStockCount++
		}
		stats.TotalValuation = stats.TotalValuation.Add(p.StockValue())
	}
	return stats, nil
}
