package screen

import (
	"context"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CategoryList caches the category collection for the lifetime of one
// screen. A new screen builds a new list and fetches again.
type CategoryList struct {
	Categories []model.Category
	Loading    bool
	Err        error

	svc     service.CategoryService
	log     logrus.FieldLogger
	fetched bool
}

func NewCategoryList(svc service.CategoryService, log logrus.FieldLogger) *CategoryList {
	_, _, log = withDefaults(nil, nil, log)
	return &CategoryList{svc: svc, log: log, Loading: true}
}

// Load fetches the collection on the first call only. A failed fetch is not
// retried.
func (l *CategoryList) Load(ctx context.Context) error {
	if l.fetched {
		return l.Err
	}
	l.fetched = true

	categories, err := l.svc.ListCategories(ctx)
	l.Loading = false
	if err != nil {
		l.Err = err
		logger.LogError(l.log, "screen", "CategoryList.Load", "list categories", nil, err)
		return err
	}
	l.Categories = categories
	return nil
}

func (l *CategoryList) Employees() []model.Category {
	return model.EmployeeCategories(l.Categories)
}

func (l *CategoryList) Projects() []model.Category {
	return model.ProjectCategories(l.Categories)
}
