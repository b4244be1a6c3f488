package service

import (
	"context"
	"io"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"

	"github.com/shopspring/decimal"
)

func boolPtr(b bool) *bool { return &b }

func sampleProducts() []model.Product {
	return []model.Product{
		{BaseModel: model.BaseModel{ID: "prod-a"}, Name: "Cement", Unit: "bag", Category: "Building", Quantity: 10, AveragePurchasePrice: decimal.NewFromInt(100)},
		{BaseModel: model.BaseModel{ID: "prod-b"}, Name: "Gloves", Unit: "pair", Category: "Safety", Quantity: 4, AveragePurchasePrice: decimal.NewFromInt(50)},
	}
}

func sampleCategories() []model.Category {
	return []model.Category{
		{BaseModel: model.BaseModel{ID: "cat-p1"}, Title: "P1", Row: 1},
		{BaseModel: model.BaseModel{ID: "cat-emp"}, Title: "Ivan", Row: model.CategoryRowEmployee},
		{BaseModel: model.BaseModel{ID: "cat-hidden"}, Title: "Former", Row: model.CategoryRowEmployee, IsVisible: boolPtr(false)},
		{BaseModel: model.BaseModel{ID: "cat-emp2"}, Title: "Olga", Row: model.CategoryRowEmployee, IsVisible: boolPtr(true)},
	}
}

type recordingPublisher struct {
	events []map[string]interface{}
}

func (p *recordingPublisher) Publish(payload map[string]interface{}) {
	p.events = append(p.events, payload)
}

type fakeImageStore struct {
	objects map[string]string
	err     error
}

func (f *fakeImageStore) Put(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	if f.err != nil {
		return "", f.err
	}
	if f.objects == nil {
		f.objects = map[string]string{}
	}
	f.objects[objectName] = contentType
	return "https://storage.googleapis.com/bucket/" + objectName, nil
}

func newStore() (*repository.MockStore, *repository.MockProductRepository, *repository.MockCategoryRepository, *repository.MockTransactionRepository) {
	store := repository.NewMockStore(sampleProducts(), sampleCategories())
	return store,
		&repository.MockProductRepository{Store: store},
		&repository.MockCategoryRepository{Store: store},
		&repository.MockTransactionRepository{Store: store}
}
