package handler

import (
	"github.com/labstack/echo/v4"

	"portafolio/internal/usecase"
	"portafolio/pkg/response"
)

// CatalogHandler serves the public read side of the site: the
// certifications, projects, shop and blog pages.
type CatalogHandler struct {
	contentUseCase *usecase.ContentUseCase
}

func NewCatalogHandler(contentUseCase *usecase.ContentUseCase) *CatalogHandler {
	return &CatalogHandler{
		contentUseCase: contentUseCase,
	}
}

func (h *CatalogHandler) ListCertificates(c echo.Context) error {
	certs, err := h.contentUseCase.ListCertificates(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, certs)
}

func (h *CatalogHandler) ListProjects(c echo.Context) error {
	projects, err := h.contentUseCase.ListProjects(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, projects)
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.contentUseCase.ListProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.contentUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *CatalogHandler) ListPosts(c echo.Context) error {
	posts, err := h.contentUseCase.ListPosts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posts)
}
