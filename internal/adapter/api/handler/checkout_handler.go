package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portafolio/internal/usecase"
	"portafolio/pkg/logger"
	"portafolio/pkg/response"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type createSessionRequest struct {
	Items []usecase.CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

// CreateSession keeps the original serverless function contract:
// {id: sessionId} on 200, {error} on 500. Non-POST methods get 405 from
// the router.
func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	sessionID, err := h.checkoutUseCase.CreateSession(c.Request().Context(), req.Items)
	if err != nil {
		logger.Error("Checkout session failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"id": sessionID})
}

type createOrderRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	orderID, err := h.checkoutUseCase.CreateOrder(c.Request().Context(), req.SessionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"order_id": orderID,
	})
}

type captureOrderRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

func (h *CheckoutHandler) CaptureOrder(c echo.Context) error {
	var req captureOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.checkoutUseCase.CaptureAndRecord(c.Request().Context(), req.SessionID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
