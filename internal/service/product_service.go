package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"go-warehouse-ws/internal/apperror"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrImagesDisabled is returned when no image bucket is configured.
var ErrImagesDisabled = fmt.Errorf("product images: %w", apperror.ErrNotSupported)

// ImageStore persists uploaded product images and returns their URI.
type ImageStore interface {
	Put(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
}

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	SetQuantity(ctx context.Context, id string, quantity int) error
	DeleteProduct(ctx context.Context, id string) error
	MoveToFolder(ctx context.Context, id, category string) (*model.Product, error)
	GetMovement(ctx context.Context, id string) ([]model.Transaction, error)
	GetStockByWarehouse(ctx context.Context, id string) ([]model.WarehouseStock, error)
	UploadImage(ctx context.Context, id, filename, contentType string, r io.Reader) (*model.Product, error)
}

type productService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	images          ImageStore
	events          EventPublisher
	log             logrus.FieldLogger
}

// NewProductService accepts a nil ImageStore; uploads then fail with ErrImagesDisabled.
func NewProductService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, images ImageStore, events EventPublisher, log logrus.FieldLogger) ProductService {
	return &productService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		images:          images,
		events:          orNop(events),
		log:             log,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// GetProduct always reads the store so callers see the persisted quantity.
func (s *productService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, apperror.NewValidationError("product id is required")
	}
	return s.productRepo.FindByID(ctx, id)
}

// SetQuantity persists an absolute quantity. Concurrent editors race and the
// last write wins.
func (s *productService) SetQuantity(ctx context.Context, id string, quantity int) error {
	if quantity < 0 {
		return apperror.NewValidationError("quantity must not be negative")
	}
	if err := s.productRepo.UpdateQuantity(ctx, id, quantity); err != nil {
		logger.LogError(s.log, "service", "SetQuantity", "update product quantity", map[string]interface{}{
			"product_id": id,
			"quantity":   quantity,
		}, err)
		return err
	}

	s.events.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "quantity_changed",
		"product": map[string]interface{}{
			"id":        id,
			"new_stock": quantity,
		},
	})
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.LogError(s.log, "service", "DeleteProduct", "delete product", id, err)
		return err
	}

	s.events.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_deleted",
		"product": map[string]interface{}{
			"id": id,
		},
	})
	return nil
}

// MoveToFolder relabels the product's category.
func (s *productService) MoveToFolder(ctx context.Context, id, category string) (*model.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperror.NewValidationError("folder is required")
	}
	if err := s.productRepo.UpdateFields(ctx, id, map[string]interface{}{"category": category}); err != nil {
		logger.LogError(s.log, "service", "MoveToFolder", "update product category", id, err)
		return nil, err
	}
	return s.productRepo.FindByID(ctx, id)
}

func (s *productService) GetMovement(ctx context.Context, id string) ([]model.Transaction, error) {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.transactionRepo.FindByProduct(ctx, id)
}

// GetStockByWarehouse reports availability per warehouse. Products are only
// tracked in the main warehouse.
func (s *productService) GetStockByWarehouse(ctx context.Context, id string) ([]model.WarehouseStock, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return []model.WarehouseStock{{
		Warehouse: model.MainWarehouse,
		Quantity:  product.Quantity,
		Unit:      product.Unit,
	}}, nil
}

func (s *productService) UploadImage(ctx context.Context, id, filename, contentType string, r io.Reader) (*model.Product, error) {
	if s.images == nil {
		return nil, ErrImagesDisabled
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.NewValidationError("file must be an image")
	}
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("products/%s/%s%s", id, uuid.NewString(), strings.ToLower(path.Ext(filename)))
	uri, err := s.images.Put(ctx, objectName, contentType, r)
	if err != nil {
		logger.LogError(s.log, "service", "UploadImage", "put object", objectName, err)
		return nil, apperror.NewStoreError("upload image", err)
	}

	if err := s.productRepo.UpdateFields(ctx, id, map[string]interface{}{"image": uri}); err != nil {
		logger.LogError(s.log, "service", "UploadImage", "update product image", id, err)
		return nil, err
	}
	return s.productRepo.FindByID(ctx, id)
}
