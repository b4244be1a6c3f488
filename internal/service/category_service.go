package service

import (
	"context"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
)

// CategoryKind selects a subset of categories.
type CategoryKind string

const (
	CategoryKindAll      CategoryKind = ""
	CategoryKindEmployee CategoryKind = "employee"
	CategoryKindProject  CategoryKind = "project"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategories(ctx context.Context, kind CategoryKind) ([]model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *categoryService) GetCategories(ctx context.Context, kind CategoryKind) ([]model.Category, error) {
	switch kind {
	case CategoryKindAll, CategoryKindEmployee, CategoryKindProject:
	default:
		return nil, apperror.NewValidationError("unknown category kind: " + string(kind))
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	switch kind {
	case CategoryKindEmployee:
		return model.EmployeeCategories(categories), nil
	case CategoryKindProject:
		return model.ProjectCategories(categories), nil
	}
	return categories, nil
}
