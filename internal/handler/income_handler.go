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

type IncomeHandler struct {
	incomes    service.IncomeService
	categories service.CategoryService
	notices    Notices
	log        logrus.FieldLogger
	now        func() time.Time
}

func NewIncomeHandler(incomes service.IncomeService, categories service.CategoryService, notices Notices, log logrus.FieldLogger) *IncomeHandler {
	return &IncomeHandler{
		incomes:    incomes,
		categories: categories,
		notices:    notices,
		log:        log,
		now:        time.Now,
	}
}

func (h *IncomeHandler) document(c *fiber.Ctx, o *outcome) *screen.IncomeDocument {
	log := requestLog(h.log, c)
	return screen.NewIncomeDocument(h.incomes, screen.NewCategoryList(h.categories, log), o, log, h.now())
}

// GetCounterparties lists the employees an income document can name, along
// with the default header of a new document.
func (h *IncomeHandler) GetCounterparties(c *fiber.Ctx) error {
	doc := h.document(c, newOutcome(nil))
	counterparties, err := doc.Counterparties(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"header": doc.Header,
		"data":   counterparties,
	})
}

func (h *IncomeHandler) CreateIncome(c *fiber.Ctx) error {
	var header model.DocumentHeader
	if err := c.BodyParser(&header); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(header); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	o := newOutcome(h.notices)
	doc := h.document(c, o)
	if header.Date != "" {
		doc.Header.Date = header.Date
	}
	if header.Number != "" {
		doc.Header.Number = header.Number
	}
	doc.Header.Note = header.Note
	doc.SelectCounterparty(header.Counterparty)

	if !doc.Submit(c.UserContext()) {
		return respondErrorWith(c, doc.Err, o)
	}
	return c.Status(201).JSON(o.body(fiber.Map{"header": doc.Header}))
}
