package handler

import (
	"github.com/labstack/echo/v4"

	"portafolio/internal/usecase"
	"portafolio/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type addReviewRequest struct {
	User   string `json:"user"`
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,oneof=3 4 5"`
}

// AddReview echoes the stored review back so optimistic clients can
// reconcile, or roll back on error.
func (h *ReviewHandler) AddReview(c echo.Context) error {
	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.AddReview(c.Request().Context(), c.Param("id"), req.User, req.Text, req.Rating)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}
