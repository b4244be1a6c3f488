package service

import (
	"context"
	"fmt"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Validation messages shown to the user before anything is written.
const (
	MsgSelectProject = "Select a project"
	MsgAddProducts   = "Add products"
)

type ExpenseService interface {
	SubmitExpense(ctx context.Context, projectID string, items []model.ExpenseLineItem) error
}

type expenseService struct {
	categoryRepo    repository.CategoryRepository
	transactionRepo repository.TransactionRepository
	events          EventPublisher
	log             logrus.FieldLogger
}

func NewExpenseService(cRepo repository.CategoryRepository, tRepo repository.TransactionRepository, events EventPublisher, log logrus.FieldLogger) ExpenseService {
	return &expenseService{
		categoryRepo:    cRepo,
		transactionRepo: tRepo,
		events:          orNop(events),
		log:             log,
	}
}

// SubmitExpense writes off every line item to the project. Items are posted
// sequentially in input order; each item's ledger record and quantity update
// commit together, but items are not rolled back as a group. When item k
// fails, items before it stay posted.
func (s *expenseService) SubmitExpense(ctx context.Context, projectID string, items []model.ExpenseLineItem) error {
	if err := validateExpense(projectID, items); err != nil {
		return err
	}

	project, err := s.categoryRepo.FindByID(ctx, projectID)
	if err != nil {
		logger.LogError(s.log, "service", "SubmitExpense", "resolve project", projectID, err)
		return err
	}

	// Quantity left per product after the items posted so far. Seeded from
	// the first snapshot of each product so repeated lines accumulate.
	onHand := make(map[string]int, len(items))
	for i, item := range items {
		product := item.Product
		productID := product.ID
		oldQuantity, seen := onHand[productID]
		if !seen {
			oldQuantity = product.Quantity
		}
		txn := &model.Transaction{
			CategoryID:           project.ID,
			ProductID:            &productID,
			FromUser:             model.WarehouseParty,
			ToUser:               project.Title,
			Amount:               item.Amount().Neg(),
			Description:          fmt.Sprintf("Write-off from warehouse: %s (%d %s)", product.Name, item.Quantity, product.Unit),
			Type:                 model.TxExpense,
			IsWarehouseOperation: true,
		}
		// Computed from the snapshot the user picked, not re-read from the store
		newQuantity := oldQuantity - item.Quantity

		if err := s.transactionRepo.PostWithStock(ctx, txn, productID, newQuantity); err != nil {
			logger.LogError(s.log, "service", "SubmitExpense", "post line item", map[string]interface{}{
				"index":      i,
				"product_id": productID,
				"posted":     i,
				"remaining":  len(items) - i,
			}, err)
			return fmt.Errorf("post line item %d (%s): %w", i+1, product.Name, err)
		}
		onHand[productID] = newQuantity

		s.events.Publish(map[string]interface{}{
			"type":   "stock_update",
			"action": "expense_posted",
			"product": map[string]interface{}{
				"id":        productID,
				"name":      product.Name,
				"old_stock": oldQuantity,
				"new_stock": newQuantity,
			},
			"transaction": map[string]interface{}{
				"id":          txn.ID,
				"category_id": project.ID,
				"amount":      txn.Amount.String(),
			},
			"message": txn.Description,
		})
	}

	return nil
}

func validateExpense(projectID string, items []model.ExpenseLineItem) error {
	if projectID == "" {
		return apperror.NewValidationError(MsgSelectProject)
	}
	if len(items) == 0 {
		return apperror.NewValidationError(MsgAddProducts)
	}
	requested := make(map[string]int, len(items))
	available := make(map[string]int, len(items))
	for i, item := range items {
		if item.Product.ID == "" {
			return apperror.NewValidationError(fmt.Sprintf("line item %d: product is required", i+1))
		}
		if item.Quantity <= 0 {
			return apperror.NewValidationError(fmt.Sprintf("line item %d: quantity must be greater than zero", i+1))
		}
		if _, ok := available[item.Product.ID]; !ok {
			available[item.Product.ID] = item.Product.Quantity
		}
		requested[item.Product.ID] += item.Quantity
		if requested[item.Product.ID] > available[item.Product.ID] {
			return apperror.NewValidationError(fmt.Sprintf("line item %d: insufficient stock of %s (%d %s available)",
				i+1, item.Product.Name, available[item.Product.ID], item.Product.Unit))
		}
		if item.Product.AveragePurchasePrice.IsNegative() {
			return apperror.NewValidationError(fmt.Sprintf("line item %d: price must not be negative", i+1))
		}
	}
	return nil
}
