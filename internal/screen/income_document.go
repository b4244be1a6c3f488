package screen

import (
	"context"
	"time"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	DefaultIncomeNumber = "000012"
	MsgIncomeFailed     = "Income documents cannot be posted yet"
)

// IncomeDocument captures the header of a goods receipt. Header.Counterparty
// holds the selected employee category ID.
type IncomeDocument struct {
	Header     model.DocumentHeader
	Categories *CategoryList
	Err        error

	svc      service.IncomeService
	notifier Notifier
	log      logrus.FieldLogger
}

func NewIncomeDocument(svc service.IncomeService, categories *CategoryList, notifier Notifier, log logrus.FieldLogger, now time.Time) *IncomeDocument {
	notifier, _, log = withDefaults(notifier, nil, log)
	return &IncomeDocument{
		Header:     model.NewDocumentHeader(DefaultIncomeNumber, now),
		Categories: categories,
		svc:        svc,
		notifier:   notifier,
		log:        log,
	}
}

// Counterparties lists the employees a receipt can come from.
func (d *IncomeDocument) Counterparties(ctx context.Context) ([]model.Category, error) {
	if err := d.Categories.Load(ctx); err != nil {
		return nil, err
	}
	return d.Categories.Employees(), nil
}

func (d *IncomeDocument) SelectCounterparty(categoryID string) {
	d.Header.Counterparty = categoryID
}

func (d *IncomeDocument) Submit(ctx context.Context) bool {
	d.Err = d.svc.SubmitIncome(ctx, d.Header)
	if err := d.Err; err != nil {
		logger.LogError(d.log, "screen", "IncomeDocument.Submit", "submit income", d.Header, err)
		d.notifier.Error(MsgIncomeFailed)
		return false
	}
	return true
}
