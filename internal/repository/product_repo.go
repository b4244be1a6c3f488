package repository

import (
	"context"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, wrapErr("list products", "product", "", err)
	}
	for i := range products {
		if err := checkRecord("product", &products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, wrapErr("get product", "product", id, err)
	}
	if err := checkRecord("product", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateQuantity writes an absolute value, not a delta.
func (r *productRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"quantity": quantity})
}

func (r *productRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return wrapErr("update product", "product", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("product", id)
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return wrapErr("delete product", "product", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("product", id)
	}
	return nil
}
