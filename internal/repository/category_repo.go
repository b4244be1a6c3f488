package repository

import (
	"context"

	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// FindAll loads the whole collection in one query; there is no pagination.
func (r *categoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, wrapErr("list categories", "category", "", err)
	}
	for i := range categories {
		if err := checkRecord("category", &categories[i]); err != nil {
			return nil, err
		}
	}
	return categories, nil
}

func (r *categoryRepo) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, wrapErr("get category", "category", id, err)
	}
	if err := checkRecord("category", &category); err != nil {
		return nil, err
	}
	return &category, nil
}
