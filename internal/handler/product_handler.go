package handler

import (
	"bytes"
	"fmt"
	"time"

	"go-warehouse-ws/internal/confirm"
	"go-warehouse-ws/internal/middleware"
	"go-warehouse-ws/internal/report"
	"go-warehouse-ws/internal/screen"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/pkg/logger"
	"go-warehouse-ws/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ConfirmHeader carries the token issued by the delete request.
const ConfirmHeader = "X-Confirm-Token"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ProductHandler struct {
	service    service.ProductService
	confirms   confirm.Store
	confirmTTL time.Duration
	notices    Notices
	log        logrus.FieldLogger
}

func NewProductHandler(s service.ProductService, confirms confirm.Store, confirmTTL time.Duration, notices Notices, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{
		service:    s,
		confirms:   confirms,
		confirmTTL: confirmTTL,
		notices:    notices,
		log:        log,
	}
}

// Helper to get user info from JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals(middleware.LocalUserID).(string)
	if !ok {
		return "system"
	}
	return userID
}

func getUserName(c *fiber.Ctx) string {
	userName, ok := c.Locals(middleware.LocalUserName).(string)
	if !ok {
		return "Unknown"
	}
	return userName
}

func requestLog(log logrus.FieldLogger, c *fiber.Ctx) logrus.FieldLogger {
	return log.WithFields(logrus.Fields{
		"user_id":   getUserID(c),
		"user_name": getUserName(c),
		"path":      c.Path(),
	})
}

// detail loads the product screen for the :id route param.
func (h *ProductHandler) detail(c *fiber.Ctx, o *outcome) (*screen.ProductDetail, error) {
	d := screen.NewProductDetail(c.Params("id"), h.service, o, o, requestLog(h.log, c))
	if err := d.Load(c.UserContext()); err != nil {
		return nil, err
	}
	return d, nil
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

type adjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required,oneof=-1 1"`
}

// AdjustQuantity applies a ±1 step to the product's stored quantity.
func (h *ProductHandler) AdjustQuantity(c *fiber.Ctx) error {
	var req adjustQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		return c.Status(400).JSON(fiber.Map{"error": "delta must be 1 or -1"})
	}

	o := newOutcome(h.notices)
	d, err := h.detail(c, o)
	if err != nil {
		return respondError(c, err)
	}
	if err := d.AdjustQuantity(c.UserContext(), req.Delta); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":          d.Product,
		"quantity":      d.Quantity,
		"can_decrement": d.CanDecrement(),
	})
}

// RequestDelete opens the delete confirmation and issues the token that
// DeleteProduct requires.
func (h *ProductHandler) RequestDelete(c *fiber.Ctx) error {
	o := newOutcome(h.notices)
	d, err := h.detail(c, o)
	if err != nil {
		return respondError(c, err)
	}
	if err := d.RequestDelete(); err != nil {
		return respondError(c, err)
	}

	token, err := h.confirms.Issue(c.UserContext(), d.ID)
	if err != nil {
		logger.LogError(h.log, "handler", "RequestDelete", "issue confirmation", d.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{
		"state":         d.View,
		"confirm_token": token,
		"expires_in":    int(h.confirmTTL.Seconds()),
	})
}

func (h *ProductHandler) CancelDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.confirms.Revoke(c.UserContext(), id); err != nil {
		logger.LogError(h.log, "handler", "CancelDelete", "revoke confirmation", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"state": screen.ViewViewing})
}

// DeleteProduct removes the product only when the request carries the token
// from a preceding delete request. The token stays valid until the delete
// succeeds, so a failed delete can be retried from the same dialog.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	ok, err := h.confirms.Verify(c.UserContext(), id, c.Get(ConfirmHeader))
	if err != nil {
		logger.LogError(h.log, "handler", "DeleteProduct", "verify confirmation", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if !ok {
		return c.Status(409).JSON(fiber.Map{"error": screen.ErrDeleteNotConfirmed.Error()})
	}

	o := newOutcome(h.notices)
	d, err := h.detail(c, o)
	if err != nil {
		return respondError(c, err)
	}
	if err := d.RequestDelete(); err != nil {
		return respondError(c, err)
	}
	if err := d.ConfirmDelete(c.UserContext()); err != nil {
		return c.Status(500).JSON(o.body(fiber.Map{"error": screen.MsgProductDeleteFailed, "state": d.View}))
	}
	if err := h.confirms.Revoke(c.UserContext(), id); err != nil {
		logger.LogError(h.log, "handler", "DeleteProduct", "revoke confirmation", id, err)
	}

	return c.JSON(o.body(fiber.Map{"message": screen.MsgProductDeleted, "state": d.View}))
}

// UploadImage stores the multipart "image" file and links it to the product.
func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "image file is required"})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "cannot read image"})
	}
	defer f.Close()

	product, err := h.service.UploadImage(c.UserContext(), c.Params("id"), file.Filename, file.Header.Get("Content-Type"), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Image uploaded", "data": product})
}

func (h *ProductHandler) GetActions(c *fiber.Ctx) error {
	return c.JSON(screen.Actions())
}

type moveToFolderRequest struct {
	Category string `json:"category" validate:"required,notblank"`
}

// RunAction opens one action modal for the product and returns its payload.
func (h *ProductHandler) RunAction(c *fiber.Ctx) error {
	var menu screen.ActionMenu
	action, err := screen.ParseAction(c.Params("action"))
	if err != nil {
		return respondError(c, err)
	}
	if err := menu.Open(action); err != nil {
		return respondError(c, err)
	}

	ctx := c.UserContext()
	id := c.Params("id")

	switch menu.Current() {
	case screen.ActionViewMovement:
		movement, err := h.service.GetMovement(ctx, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"action": action, "data": movement})

	case screen.ActionViewStockByWarehouse:
		stock, err := h.service.GetStockByWarehouse(ctx, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"action": action, "data": stock})

	case screen.ActionMoveToFolder:
		var req moveToFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
		}
		if errs := validator.ValidateStruct(req); errs != nil {
			return c.Status(400).JSON(fiber.Map{"error": "folder is required"})
		}
		product, err := h.service.MoveToFolder(ctx, id, req.Category)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"action": action, "data": product})

	default:
		return h.RequestDelete(c)
	}
}

// ExportStock streams the current stock list as an xlsx workbook.
func (h *ProductHandler) ExportStock(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	var buf bytes.Buffer
	if err := report.WriteStockWorkbook(&buf, products); err != nil {
		logger.LogError(h.log, "handler", "ExportStock", "write workbook", len(products), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export stock"})
	}

	filename := fmt.Sprintf("stock-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
