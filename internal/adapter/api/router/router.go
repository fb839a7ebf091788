package router

import (
	"github.com/labstack/echo/v4"

	"portafolio/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e)
	SetupCatalogRouter(e)
	SetupCartRouter(e)
	SetupCheckoutRouter(e)
	SetupContactRouter(e)
	SetupAdminRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
