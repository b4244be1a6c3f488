package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxExpense TransactionType = "expense"
	TxIncome  TransactionType = "income"
)

// WarehouseParty is the display label used for the warehouse side of a posting.
const WarehouseParty = "Warehouse"

// Transaction is a ledger record. It is written once and never mutated.
type Transaction struct {
	BaseModel
	CategoryID           string          `gorm:"type:varchar(64);not null;index" json:"category_id" validate:"required"`
	ProductID            *string         `gorm:"type:varchar(64);index" json:"product_id,omitempty"`
	FromUser             string          `gorm:"type:varchar(255)" json:"from_user"`
	ToUser               string          `gorm:"type:varchar(255)" json:"to_user"`
	Amount               decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Description          string          `gorm:"type:text" json:"description"`
	Type                 TransactionType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=expense income"`
	Date                 time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"date"` // Zero value lets the database assign it
	IsWarehouseOperation bool            `gorm:"not null;default:false;index" json:"is_warehouse_operation"`
}

// SignMatchesType checks that outflows are non-positive and inflows non-negative.
func (t *Transaction) SignMatchesType() bool {
	switch t.Type {
	case TxExpense:
		return t.Amount.Sign() <= 0
	case TxIncome:
		return t.Amount.Sign() >= 0
	}
	return false
}
