package handler

import (
	"github.com/labstack/echo/v4"

	"portafolio/internal/domain/entity"
	"portafolio/internal/usecase"
	"portafolio/pkg/errors"
	"portafolio/pkg/response"
)

// Clients identify their cart with an opaque session id header, the
// server-side stand-in for a browser's local storage key.
const cartSessionHeader = "X-Cart-Session"

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addItemRequest struct {
	ID    string  `json:"id" validate:"required"`
	Title string  `json:"title" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	Image string  `json:"image"`
}

type cartResponse struct {
	Items      []entity.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice string            `json:"total_price"`
}

func newCartResponse(items []entity.CartItem) cartResponse {
	return cartResponse{
		Items:      items,
		TotalItems: usecase.TotalItems(items),
		TotalPrice: usecase.TotalPrice(items).StringFixed(2),
	}
}

func cartSession(c echo.Context) (string, error) {
	sessionID := c.Request().Header.Get(cartSessionHeader)
	if sessionID == "" {
		return "", errors.BadRequest("Cart session header is required", nil)
	}
	return sessionID, nil
}

func (h *CartHandler) GetCart(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	items, err := h.cartUseCase.Get(c.Request().Context(), sessionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, newCartResponse(items))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	items, err := h.cartUseCase.Add(c.Request().Context(), sessionID, entity.CartItem{
		ID:    req.ID,
		Title: req.Title,
		Price: req.Price,
		Image: req.Image,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, newCartResponse(items))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	items, err := h.cartUseCase.Remove(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, newCartResponse(items))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	sessionID, err := cartSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.cartUseCase.Clear(c.Request().Context(), sessionID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, newCartResponse([]entity.CartItem{}))
}
