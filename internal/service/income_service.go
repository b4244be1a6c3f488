package service

import (
	"context"
	"fmt"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"
)

// ErrIncomeNotSupported is returned until income documents carry line items.
var ErrIncomeNotSupported = fmt.Errorf("income posting: %w", apperror.ErrNotSupported)

type IncomeService interface {
	Counterparties(ctx context.Context) ([]model.Category, error)
	SubmitIncome(ctx context.Context, header model.DocumentHeader) error
}

type incomeService struct {
	categories CategoryService
}

func NewIncomeService(categories CategoryService) IncomeService {
	return &incomeService{categories: categories}
}

// Counterparties are the visible employee categories.
func (s *incomeService) Counterparties(ctx context.Context) ([]model.Category, error) {
	return s.categories.GetCategories(ctx, CategoryKindEmployee)
}

// SubmitIncome performs no writes.
func (s *incomeService) SubmitIncome(ctx context.Context, header model.DocumentHeader) error {
	return ErrIncomeNotSupported
}
