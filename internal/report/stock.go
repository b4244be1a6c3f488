package report

import (
	"io"

	"go-warehouse-ws/internal/model"

	"github.com/xuri/excelize/v2"
)

const StockSheet = "Stock"

var stockHeader = []string{"ID", "Name", "Category", "Unit", "Quantity", "Average price", "Value"}

// WriteStockWorkbook renders the product list as an xlsx workbook.
func WriteStockWorkbook(w io.Writer, products []model.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", StockSheet); err != nil {
		return err
	}

	for col, title := range stockHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(StockSheet, cell, title); err != nil {
			return err
		}
	}

	for i := range products {
		p := &products[i]
		row := []interface{}{
			p.ID,
			p.Name,
			p.Category,
			p.Unit,
			p.Quantity,
			p.AveragePurchasePrice.InexactFloat64(),
			p.StockValue().InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(StockSheet, cell, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}
