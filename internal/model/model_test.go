package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategoryFilters(t *testing.T) {
	visible, hidden := true, false
	categories := []Category{
		{BaseModel: BaseModel{ID: "1"}, Title: "Site A", Row: 1},
		{BaseModel: BaseModel{ID: "2"}, Title: "Anna", Row: CategoryRowEmployee},
		{BaseModel: BaseModel{ID: "3"}, Title: "Boris", Row: CategoryRowEmployee, IsVisible: &hidden},
		{BaseModel: BaseModel{ID: "4"}, Title: "Site B", Row: 3, IsVisible: &hidden},
		{BaseModel: BaseModel{ID: "5"}, Title: "Chen", Row: CategoryRowEmployee, IsVisible: &visible},
	}

	ids := func(list []Category) []string {
		out := []string{}
		for _, c := range list {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"2", "5"}, ids(EmployeeCategories(categories)))
	assert.Equal(t, []string{"1", "3", "4"}, ids(ProjectCategories(categories)))
	assert.NotNil(t, EmployeeCategories(nil))
	assert.NotNil(t, ProjectCategories(nil))
}

func TestComputeTotals(t *testing.T) {
	items := []ExpenseLineItem{
		{Product: Product{AveragePurchasePrice: decimal.NewFromInt(100)}, Quantity: 2},
		{Product: Product{AveragePurchasePrice: decimal.RequireFromString("12.50")}, Quantity: 3},
		{Product: Product{}, Quantity: 1},
	}

	totals := ComputeTotals(items)

	assert.Equal(t, 6, totals.Quantity)
	assert.True(t, totals.Amount.Equal(decimal.RequireFromString("237.5")), "got %s", totals.Amount)
	assert.True(t, totals.Total.Equal(totals.Amount))
	assert.True(t, ComputeTotals(nil).Amount.IsZero())
}

func TestTransactionSignMatchesType(t *testing.T) {
	tests := []struct {
		typ    TransactionType
		amount int64
		want   bool
	}{
		{TxExpense, -200, true},
		{TxExpense, 0, true},
		{TxExpense, 5, false},
		{TxIncome, 50, true},
		{TxIncome, -1, false},
		{"transfer", 1, false},
	}
	for _, tt := range tests {
		txn := Transaction{Type: tt.typ, Amount: decimal.NewFromInt(tt.amount)}
		assert.Equal(t, tt.want, txn.SignMatchesType(), "%s %d", tt.typ, tt.amount)
	}
}

func TestNewDocumentHeader(t *testing.T) {
	h := NewDocumentHeader("000003", time.Date(2024, 1, 9, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-01-09", h.Date)
	assert.Equal(t, "000003", h.Number)
	assert.Empty(t, h.Counterparty)
}

func TestProductStockValue(t *testing.T) {
	p := Product{Quantity: 4, AveragePurchasePrice: decimal.NewFromInt(25)}
	assert.True(t, p.StockValue().Equal(decimal.NewFromInt(100)))
}
