package repository

import (
	"errors"
	"fmt"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/pkg/validator"

	"gorm.io/gorm"
)

// wrapErr maps driver errors onto the application taxonomy.
func wrapErr(op, entity, id string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError(entity, id)
	}
	return apperror.NewStoreError(op, err)
}

// checkRecord fails closed on documents missing required fields.
func checkRecord(entity string, record interface{}) error {
	if err := validator.FirstError(record); err != nil {
		return apperror.NewStoreError("read "+entity, fmt.Errorf("invalid record: %w", err))
	}
	return nil
}
