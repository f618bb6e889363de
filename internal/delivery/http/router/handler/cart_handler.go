package handler

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/http/response"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for shopping-cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCart handles the request to list every cart item.
func (h *CartHandler) GetCart(c echo.Context) error {
	items, err := h.uc.GetCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Cart retrieved successfully")
}

// AddItem handles the request to put a product in the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.AddItem(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Cart item added successfully")
}

// UpdateItem handles the request to change a cart line's quantity.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	var input usecase.UpdateCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateItemQuantity(c.Request().Context(), itemID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": itemID.String()}, "Cart item updated successfully")
}

// RemoveItem handles the request to delete a cart item.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": itemID.String()}, "Cart item removed successfully")
}
