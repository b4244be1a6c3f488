package screen

import (
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/service"

	"github.com/shopspring/decimal"
)

type recorder struct {
	successes []string
	errors    []string
	paths     []string
}

func (r *recorder) Success(message string) { r.successes = append(r.successes, message) }
func (r *recorder) Error(message string)   { r.errors = append(r.errors, message) }
func (r *recorder) Navigate(path string)   { r.paths = append(r.paths, path) }

type fixture struct {
	store      *repository.MockStore
	products   service.ProductService
	categories service.CategoryService
	expenses   service.ExpenseService
	incomes    service.IncomeService
}

func newFixture() *fixture {
	hidden := false
	store := repository.NewMockStore(
		[]model.Product{
			{BaseModel: model.BaseModel{ID: "prod-a"}, Name: "Cement", Unit: "bag", Quantity: 10, AveragePurchasePrice: decimal.NewFromInt(100)},
			{BaseModel: model.BaseModel{ID: "prod-b"}, Name: "Gloves", Unit: "pair", Quantity: 1, AveragePurchasePrice: decimal.NewFromInt(50)},
		},
		[]model.Category{
			{BaseModel: model.BaseModel{ID: "cat-p1"}, Title: "P1", Row: 1},
			{BaseModel: model.BaseModel{ID: "cat-emp"}, Title: "Ivan", Row: model.CategoryRowEmployee},
			{BaseModel: model.BaseModel{ID: "cat-old"}, Title: "Former", Row: model.CategoryRowEmployee, IsVisible: &hidden},
		},
	)
	pRepo := &repository.MockProductRepository{Store: store}
	cRepo := &repository.MockCategoryRepository{Store: store}
	tRepo := &repository.MockTransactionRepository{Store: store}
	categories := service.NewCategoryService(cRepo)
	return &fixture{
		store:      store,
		products:   service.NewProductService(pRepo, tRepo, nil, nil, nil),
		categories: categories,
		expenses:   service.NewExpenseService(cRepo, tRepo, nil, nil),
		incomes:    service.NewIncomeService(categories),
	}
}

func (f *fixture) item(id string, quantity int) model.ExpenseLineItem {
	p, _ := f.store.Product(id)
	return model.ExpenseLineItem{Product: p, Quantity: quantity}
}
