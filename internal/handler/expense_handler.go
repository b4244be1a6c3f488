package handler

import (
	"time"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/screen"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExpenseHandler struct {
	expenses   service.ExpenseService
	products   service.ProductService
	categories service.CategoryService
	notices    Notices
	log        logrus.FieldLogger
	now        func() time.Time
}

func NewExpenseHandler(expenses service.ExpenseService, products service.ProductService, categories service.CategoryService, notices Notices, log logrus.FieldLogger) *ExpenseHandler {
	return &ExpenseHandler{
		expenses:   expenses,
		products:   products,
		categories: categories,
		notices:    notices,
		log:        log,
		now:        time.Now,
	}
}

type expenseItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type expenseRequest struct {
	Date           string               `json:"date" validate:"omitempty,datetime=2006-01-02"`
	DocumentNumber string               `json:"document_number"`
	ProjectID      string               `json:"project_id"`
	Note           string               `json:"note"`
	Items          []expenseItemRequest `json:"items" validate:"dive"`
}

// CreateExpense writes off the listed products to a project. Each line item
// is priced from the product as currently stored.
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	ctx := c.UserContext()
	o := newOutcome(h.notices)
	log := requestLog(h.log, c)

	doc := screen.NewExpenseDocument(h.expenses, screen.NewCategoryList(h.categories, log), o, o, log, h.now(), nil)
	if req.Date != "" {
		doc.Header.Date = req.Date
	}
	if req.DocumentNumber != "" {
		doc.Header.Number = req.DocumentNumber
	}
	doc.Header.Note = req.Note
	doc.SelectProject(req.ProjectID)

	// A document without a project or items is rejected by Submit before any
	// product is read.
	if req.ProjectID == "" || len(req.Items) == 0 {
		doc.Submit(ctx)
		return respondErrorWith(c, doc.Err, o)
	}

	for _, item := range req.Items {
		product, err := h.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			return respondError(c, err)
		}
		doc.Apply(&screen.NavigationMessage{
			AddedItem: &model.ExpenseLineItem{Product: *product, Quantity: item.Quantity},
		})
	}

	if !doc.Submit(ctx) {
		return respondErrorWith(c, doc.Err, o)
	}

	return c.Status(201).JSON(o.body(fiber.Map{
		"message": screen.MsgExpensePosted,
		"header":  doc.Header,
		"totals":  doc.Totals(),
	}))
}
