package model

import "github.com/shopspring/decimal"

// Product is a stock-keeping unit held in the warehouse. Quantity is the
// authoritative on-hand count.
type Product struct {
	BaseModel
	Name                 string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Unit                 string          `gorm:"type:varchar(20)" json:"unit"`
	Category             string          `gorm:"type:varchar(255)" json:"category"`
	Quantity             int             `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	AveragePurchasePrice decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"average_purchase_price" validate:"gte=0"`
	Image                *string         `gorm:"type:text" json:"image,omitempty" validate:"omitempty,uri"`
}

// StockValue is quantity multiplied by the average purchase price.
func (p *Product) StockValue() decimal.Decimal {
	return p.AveragePurchasePrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// MainWarehouse is the only storage location products are tracked in.
const MainWarehouse = "Main warehouse"

// WarehouseStock is one row of the per-warehouse availability view.
type WarehouseStock struct {
	Warehouse string `json:"warehouse"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
}
