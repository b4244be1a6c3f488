package screen

import (
	"context"
	"errors"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	MsgProductDeleted      = "Product deleted"
	MsgProductDeleteFailed = "Failed to delete product"
)

// ErrDeleteNotConfirmed is returned when ConfirmDelete is called without a
// preceding RequestDelete.
var ErrDeleteNotConfirmed = errors.New("delete not confirmed")

type LoadState string

const (
	StateLoading   LoadState = "loading"
	StateLoaded    LoadState = "loaded"
	StateNotFound  LoadState = "not_found"
	StateLoadError LoadState = "load_error"
)

// ViewState is the sub-state of a loaded product.
type ViewState string

const (
	ViewViewing          ViewState = "viewing"
	ViewConfirmingDelete ViewState = "confirming_delete"
	ViewDeleted          ViewState = "deleted"
)

// ProductDetail is the product card: quantity stepper and two-step delete.
type ProductDetail struct {
	ID       string
	State    LoadState
	View     ViewState
	Product  *model.Product
	Quantity int
	Err      error

	svc      service.ProductService
	notifier Notifier
	nav      Navigator
	log      logrus.FieldLogger
}

func NewProductDetail(id string, svc service.ProductService, notifier Notifier, nav Navigator, log logrus.FieldLogger) *ProductDetail {
	notifier, nav, log = withDefaults(notifier, nav, log)
	return &ProductDetail{
		ID:       id,
		State:    StateLoading,
		svc:      svc,
		notifier: notifier,
		nav:      nav,
		log:      log,
	}
}

// Load reads the product from the store; nothing is cached between loads.
func (p *ProductDetail) Load(ctx context.Context) error {
	p.State = StateLoading
	product, err := p.svc.GetProduct(ctx, p.ID)
	if err != nil {
		p.Err = err
		if apperror.IsNotFound(err) {
			p.State = StateNotFound
		} else {
			p.State = StateLoadError
			logger.LogError(p.log, "screen", "ProductDetail.Load", "get product", p.ID, err)
		}
		return err
	}

	p.Err = nil
	p.Product = product
	p.Quantity = product.Quantity
	p.State = StateLoaded
	p.View = ViewViewing
	return nil
}

func (p *ProductDetail) CanDecrement() bool {
	return p.Quantity > 0
}

// AdjustQuantity applies delta locally and persists the resulting absolute
// quantity. A result below zero is ignored. The local value is kept when the
// write fails, so the screen and the store can disagree until the next Load.
func (p *ProductDetail) AdjustQuantity(ctx context.Context, delta int) error {
	if p.State != StateLoaded || p.View != ViewViewing {
		return apperror.NewValidationError("product is not loaded")
	}
	if delta != 1 && delta != -1 {
		return apperror.NewValidationError("delta must be 1 or -1")
	}
	next := p.Quantity + delta
	if next < 0 {
		return nil
	}

	p.Quantity = next
	if err := p.svc.SetQuantity(ctx, p.ID, next); err != nil {
		logger.LogError(p.log, "screen", "ProductDetail.AdjustQuantity", "set quantity", map[string]interface{}{
			"product_id": p.ID,
			"quantity":   next,
		}, err)
		return err
	}
	p.Product.Quantity = next
	return nil
}

// RequestDelete opens the confirmation dialog.
func (p *ProductDetail) RequestDelete() error {
	if p.State != StateLoaded || p.View != ViewViewing {
		return apperror.NewValidationError("product is not loaded")
	}
	p.View = ViewConfirmingDelete
	return nil
}

func (p *ProductDetail) CancelDelete() {
	if p.View == ViewConfirmingDelete {
		p.View = ViewViewing
	}
}

// ConfirmDelete removes the product. It only acts from the confirmation
// dialog; on failure the dialog stays open.
func (p *ProductDetail) ConfirmDelete(ctx context.Context) error {
	if p.State != StateLoaded || p.View != ViewConfirmingDelete {
		return ErrDeleteNotConfirmed
	}

	if err := p.svc.DeleteProduct(ctx, p.ID); err != nil {
		logger.LogError(p.log, "screen", "ProductDetail.ConfirmDelete", "delete product", p.ID, err)
		p.notifier.Error(MsgProductDeleteFailed)
		return err
	}

	p.View = ViewDeleted
	p.notifier.Success(MsgProductDeleted)
	p.nav.Navigate(PathProducts)
	return nil
}
