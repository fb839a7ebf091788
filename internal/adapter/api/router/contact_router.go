package router

import (
	"github.com/labstack/echo/v4"

	"portafolio/internal/adapter/api/handler"
)

func SetupContactRouter(e *echo.Echo) {
	messageHandler := handler.GetMessageHandler()

	e.POST("/v1/messages", messageHandler.SubmitMessage)
}
