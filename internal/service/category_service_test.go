package service

import (
	"context"
	"errors"
	"testing"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(t *testing.T, svc CategoryService, kind CategoryKind) []string {
	t.Helper()
	categories, err := svc.GetCategories(context.Background(), kind)
	require.NoError(t, err)
	result := []string{}
	for _, c := range categories {
		result = append(result, c.Title)
	}
	return result
}

func TestGetCategories_FiltersByKind(t *testing.T) {
	_, _, cRepo, _ := newStore()
	svc := NewCategoryService(cRepo)

	assert.Equal(t, []string{"P1", "Ivan", "Former", "Olga"}, titles(t, svc, CategoryKindAll))
	assert.Equal(t, []string{"Ivan", "Olga"}, titles(t, svc, CategoryKindEmployee))
	assert.Equal(t, []string{"P1", "Former"}, titles(t, svc, CategoryKindProject))
}

func TestGetCategories_UnknownKind(t *testing.T) {
	store, _, cRepo, _ := newStore()
	svc := NewCategoryService(cRepo)

	_, err := svc.GetCategories(context.Background(), "supplier")

	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, store.Calls)
}

func TestGetCategories_StoreFailure(t *testing.T) {
	store, _, cRepo, _ := newStore()
	store.Err = errors.New("permission denied")
	svc := NewCategoryService(cRepo)

	_, err := svc.GetCategories(context.Background(), CategoryKindProject)

	assert.True(t, apperror.IsStore(err))
}

func TestIncomeService(t *testing.T) {
	store, _, cRepo, _ := newStore()
	svc := NewIncomeService(NewCategoryService(cRepo))

	counterparties, err := svc.Counterparties(context.Background())
	require.NoError(t, err)
	require.Len(t, counterparties, 2)
	assert.Equal(t, "cat-emp", counterparties[0].ID)

	err = svc.SubmitIncome(context.Background(), model.DocumentHeader{Counterparty: "cat-emp"})
	assert.ErrorIs(t, err, ErrIncomeNotSupported)
	assert.True(t, apperror.IsNotSupported(err))
	assert.Empty(t, store.Transactions)
}
