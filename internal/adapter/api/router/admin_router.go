package router

import (
	"github.com/labstack/echo/v4"

	"portafolio/internal/adapter/api/handler"
	"portafolio/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	contentHandler := handler.GetContentHandler()
	messageHandler := handler.GetMessageHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)

	admin.POST("/content/:formType", contentHandler.Submit)

	admin.GET("/messages", messageHandler.ListMessages)
	admin.GET("/messages/stream", messageHandler.StreamMessages)
	admin.PATCH("/messages/:id/read", messageHandler.MarkRead)
	admin.DELETE("/messages/:id", messageHandler.DeleteMessage)
}
