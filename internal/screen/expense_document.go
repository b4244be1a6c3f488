package screen

import (
	"context"
	"time"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Notices shown by the expense document.
const (
	DefaultExpenseNumber = "000003"
	MsgExpensePosted     = "Products written off to the project"
	MsgExpenseFailed     = "Failed to write off products"
)

// NavigationMessage carries state from the screen that opened the document:
// a preselected project or a line item picked in the product selector. It
// is applied once and then cleared.
type NavigationMessage struct {
	SelectedProject string
	AddedItem       *model.ExpenseLineItem
}

// ExpenseDocument is the write-off form. Header.Counterparty holds the
// selected project ID.
type ExpenseDocument struct {
	Header   model.DocumentHeader
	Items    []model.ExpenseLineItem
	Loading  bool
	Projects *CategoryList
	// Err is the cause of the last failed Submit.
	Err error

	svc      service.ExpenseService
	notifier Notifier
	nav      Navigator
	log      logrus.FieldLogger
}

func NewExpenseDocument(svc service.ExpenseService, projects *CategoryList, notifier Notifier, nav Navigator, log logrus.FieldLogger, now time.Time, msg *NavigationMessage) *ExpenseDocument {
	notifier, nav, log = withDefaults(notifier, nav, log)
	d := &ExpenseDocument{
		Header:   model.NewDocumentHeader(DefaultExpenseNumber, now),
		Items:    []model.ExpenseLineItem{},
		Projects: projects,
		svc:      svc,
		notifier: notifier,
		nav:      nav,
		log:      log,
	}
	d.Apply(msg)
	return d
}

// Apply consumes msg and clears it so the same message cannot add an item twice.
func (d *ExpenseDocument) Apply(msg *NavigationMessage) {
	if msg == nil {
		return
	}
	if msg.SelectedProject != "" {
		d.Header.Counterparty = msg.SelectedProject
	}
	if msg.AddedItem != nil {
		d.AddItem(*msg.AddedItem)
	}
	*msg = NavigationMessage{}
}

func (d *ExpenseDocument) SelectProject(projectID string) {
	d.Header.Counterparty = projectID
}

func (d *ExpenseDocument) AddItem(item model.ExpenseLineItem) {
	d.Items = append(d.Items, item)
}

func (d *ExpenseDocument) RemoveItem(index int) {
	if index < 0 || index >= len(d.Items) {
		return
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
}

func (d *ExpenseDocument) Totals() model.Totals {
	return model.ComputeTotals(d.Items)
}

func (d *ExpenseDocument) CanSubmit() bool {
	return !d.Loading && d.Header.Counterparty != "" && len(d.Items) > 0
}

// Submit posts the document and reports whether it succeeded. Missing input
// is reported before the loading flag is raised.
func (d *ExpenseDocument) Submit(ctx context.Context) bool {
	if d.Loading {
		return false
	}
	if d.Header.Counterparty == "" {
		d.Err = apperror.NewValidationError(service.MsgSelectProject)
		d.notifier.Error(service.MsgSelectProject)
		return false
	}
	if len(d.Items) == 0 {
		d.Err = apperror.NewValidationError(service.MsgAddProducts)
		d.notifier.Error(service.MsgAddProducts)
		return false
	}

	d.Loading = true
	defer func() { d.Loading = false }()

	d.Err = d.svc.SubmitExpense(ctx, d.Header.Counterparty, d.Items)
	if err := d.Err; err != nil {
		logger.LogError(d.log, "screen", "ExpenseDocument.Submit", "submit expense", map[string]interface{}{
			"project":  d.Header.Counterparty,
			"document": d.Header.Number,
			"items":    len(d.Items),
		}, err)
		d.notifier.Error(MsgExpenseFailed)
		return false
	}

	d.notifier.Success(MsgExpensePosted)
	d.nav.Navigate(PathWarehouse)
	return true
}
