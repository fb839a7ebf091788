package router

import (
	"github.com/labstack/echo/v4"

	"portafolio/internal/adapter/api/handler"
)

func SetupCheckoutRouter(e *echo.Echo) {
	checkoutHandler := handler.GetCheckoutHandler()

	checkout := e.Group("/v1/checkout")
	checkout.POST("/session", checkoutHandler.CreateSession)
	checkout.POST("/orders", checkoutHandler.CreateOrder)
	checkout.POST("/orders/:id/capture", checkoutHandler.CaptureOrder)
}
