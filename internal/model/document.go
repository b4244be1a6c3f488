package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentDateLayout is the format of document header dates.
const DocumentDateLayout = "2006-01-02"

// DocumentHeader is the header captured by the income and expense forms.
// Counterparty is the project for an expense and the employee for an income.
type DocumentHeader struct {
	Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Number       string `json:"document_number"`
	Counterparty string `json:"counterparty"`
	Note         string `json:"note"`
}

// NewDocumentHeader returns a header dated today with the given document number.
func NewDocumentHeader(number string, now time.Time) DocumentHeader {
	return DocumentHeader{
		Date:   now.Format(DocumentDateLayout),
		Number: number,
	}
}

// ExpenseLineItem pairs a product snapshot with the quantity requested for write-off.
type ExpenseLineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Amount is quantity times the snapshot's average purchase price.
func (i ExpenseLineItem) Amount() decimal.Decimal {
	return i.Product.AveragePurchasePrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Totals are display-only sums over a document's line items.
type Totals struct {
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
	Total    decimal.Decimal `json:"total"`
}

func ComputeTotals(items []ExpenseLineItem) Totals {
	totals := Totals{Amount: decimal.Zero}
	for _, item := range items {
		totals.Quantity += item.Quantity
		totals.Amount = totals.Amount.Add(item.Amount())
	}
	totals.Total = totals.Amount
	return totals
}
