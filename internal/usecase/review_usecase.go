package usecase

import (
	"context"
	"strings"
	"time"

	"portafolio/internal/domain/entity"
	"portafolio/internal/domain/repository"
	"portafolio/pkg/errors"
)

const defaultReviewer = "Visitante"

type ReviewUseCase struct {
	contentRepo repository.ContentRepository
}

func NewReviewUseCase(contentRepo repository.ContentRepository) *ReviewUseCase {
	return &ReviewUseCase{
		contentRepo: contentRepo,
	}
}

// AddReview appends one review to a product. The returned review is the
// exact stored value, so an optimistic client copy can be reconciled
// against it.
func (uc *ReviewUseCase) AddReview(ctx context.Context, productID, user, text string, rating int) (*entity.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.BadRequest("Review text is required", nil)
	}
	if rating < 3 || rating > 5 {
		return nil, errors.BadRequest("Rating must be 3, 4 or 5", nil)
	}

	if user == "" {
		user = defaultReviewer
	}

	review := entity.Review{
		User:   user,
		Text:   text,
		Rating: rating,
		Date:   time.Now(),
	}

	if err := uc.contentRepo.AppendReview(ctx, productID, review); err != nil {
		return nil, err
	}

	return &review, nil
}
