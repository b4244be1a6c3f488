package handler

import (
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// GetCategories returns categories. Query params: kind (employee|project, default all)
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	kind := service.CategoryKind(c.Query("kind"))
	categories, err := h.service.GetCategories(c.UserContext(), kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}
