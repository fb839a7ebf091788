package router

import (
	"github.com/labstack/echo/v4"

	"portafolio/internal/adapter/api/handler"
)

func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/certificates", catalogHandler.ListCertificates)
	e.GET("/v1/projects", catalogHandler.ListProjects)
	e.GET("/v1/posts", catalogHandler.ListPosts)

	products := e.Group("/v1/products")
	products.GET("", catalogHandler.ListProducts)
	products.GET("/:id", catalogHandler.GetProduct)
	products.POST("/:id/reviews", reviewHandler.AddReview)
}
