package handler

import (
	"go-warehouse-ws/internal/model"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Products   *ProductHandler
	Expenses   *ExpenseHandler
	Incomes    *IncomeHandler
	Categories *CategoryHandler
	Dashboard  *DashboardHandler

	// Guard returns the middleware enforcing a privilege. Nil leaves routes open.
	Guard func(privilege string) fiber.Handler
	// GuardAny admits holders of any one of the privileges. Nil leaves routes open.
	GuardAny func(privileges ...string) fiber.Handler
}

func openRoute(c *fiber.Ctx) error { return c.Next() }

func (h Handlers) guard(privilege string) fiber.Handler {
	if h.Guard == nil {
		return openRoute
	}
	return h.Guard(privilege)
}

func (h Handlers) guardAny(privileges ...string) fiber.Handler {
	if h.GuardAny == nil {
		return openRoute
	}
	return h.GuardAny(privileges...)
}

// Register mounts the warehouse API on router.
func Register(router fiber.Router, h Handlers) {
	// Categories
	router.Get("/categories", h.Categories.GetCategories)

	// Products
	products := router.Group("/products")
	products.Get("/", h.guard(model.PrivilegeProductView), h.Products.GetProducts)
	products.Get("/export", h.guard(model.PrivilegeProductView), h.Products.ExportStock)
	products.Get("/:id", h.guard(model.PrivilegeProductView), h.Products.GetProduct)
	products.Post("/:id/quantity", h.guard(model.PrivilegeProductUpdate), h.Products.AdjustQuantity)
	products.Post("/:id/delete-request", h.guard(model.PrivilegeProductDelete), h.Products.RequestDelete)
	products.Post("/:id/delete-cancel", h.guard(model.PrivilegeProductDelete), h.Products.CancelDelete)
	products.Delete("/:id", h.guard(model.PrivilegeProductDelete), h.Products.DeleteProduct)
	products.Put("/:id/image", h.guard(model.PrivilegeProductUpdate), h.Products.UploadImage)
	products.Get("/:id/actions", h.guard(model.PrivilegeProductView), h.Products.GetActions)
	products.Post("/:id/actions/:action", h.guard(model.PrivilegeProductUpdate), h.Products.RunAction)

	// Documents
	router.Post("/expenses", h.guard(model.PrivilegeTransactionCreate), h.Expenses.CreateExpense)
	// The income form lists counterparties, so creators may read them too.
	router.Get("/incomes/counterparties", h.guardAny(model.PrivilegeTransactionView, model.PrivilegeTransactionCreate), h.Incomes.GetCounterparties)
	router.Post("/incomes", h.guard(model.PrivilegeTransactionCreate), h.Incomes.CreateIncome)

	// Dashboard
	dashboard := router.Group("/dashboard", h.guard(model.PrivilegeDashboardView))
	dashboard.Get("/stats", h.Dashboard.GetDashboardStats)
	dashboard.Get("/stock-movement", h.Dashboard.GetStockMovement)
}
