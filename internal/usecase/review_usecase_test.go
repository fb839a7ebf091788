package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portafolio/internal/domain/entity"
)

func TestReviewUseCase_AppendKeepsInsertionOrder(t *testing.T) {
	repo := newMockContentRepo()
	repo.products["p1"] = &entity.Product{ID: "p1", Reviews: []entity.Review{}}
	uc := NewReviewUseCase(repo)
	ctx := context.Background()

	submissions := []struct {
		user   string
		text   string
		rating int
	}{
		{"Ana", "great", 5},
		{"Luis", "good", 4},
		{"", "ok", 3},
	}

	for _, s := range submissions {
		_, err := uc.AddReview(ctx, "p1", s.user, s.text, s.rating)
		require.NoError(t, err)
	}

	reviews := repo.products["p1"].Reviews
	require.Len(t, reviews, 3)
	assert.Equal(t, "Ana", reviews[0].User)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "good", reviews[1].Text)
	// Anonymous submissions get the default label.
	assert.Equal(t, "Visitante", reviews[2].User)
	assert.False(t, reviews[2].Date.IsZero())
}

func TestReviewUseCase_RatingDomain(t *testing.T) {
	repo := newMockContentRepo()
	repo.products["p1"] = &entity.Product{ID: "p1"}
	uc := NewReviewUseCase(repo)
	ctx := context.Background()

	for _, rating := range []int{0, 1, 2, 6} {
		_, err := uc.AddReview(ctx, "p1", "x", "text", rating)
		assert.Error(t, err, "rating %d should be rejected", rating)
	}
	assert.Empty(t, repo.products["p1"].Reviews)

	for _, rating := range []int{3, 4, 5} {
		_, err := uc.AddReview(ctx, "p1", "x", "text", rating)
		assert.NoError(t, err)
	}
}

func TestReviewUseCase_EmptyTextRejected(t *testing.T) {
	repo := newMockContentRepo()
	repo.products["p1"] = &entity.Product{ID: "p1"}
	uc := NewReviewUseCase(repo)

	_, err := uc.AddReview(context.Background(), "p1", "x", "   ", 5)
	assert.Error(t, err)
}
