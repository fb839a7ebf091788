package router

import (
	"github.com/labstack/echo/v4"

	"portafolio/internal/adapter/api/handler"
)

func SetupCartRouter(e *echo.Echo) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.DELETE("/items/:id", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.ClearCart)
}
