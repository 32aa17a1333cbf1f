package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VGoku/e-commerce-platform1/internal/model"
)

func testReview(userID string, rating int) model.Review {
	return model.Review{
		ID:        uuid.New(),
		UserID:    userID,
		UserName:  "tester",
		Rating:    rating,
		Comment:   "solid product",
		CreatedAt: time.Now().UTC(),
	}
}

func TestReviews_AddAndList(t *testing.T) {
	reviews, err := NewReviews(testRecords(t))
	require.NoError(t, err)

	require.NoError(t, reviews.Add(1, testReview("user-a", 5)))
	require.NoError(t, reviews.Add(1, testReview("user-b", 3)))

	assert.Len(t, reviews.ForProduct(1), 2)
	assert.Empty(t, reviews.ForProduct(2))
}

func TestReviews_Add_RejectsOutOfRangeRating(t *testing.T) {
	reviews, err := NewReviews(testRecords(t))
	require.NoError(t, err)

	assert.ErrorIs(t, reviews.Add(1, testReview("user-a", 0)), ErrInvalidRating)
	assert.ErrorIs(t, reviews.Add(1, testReview("user-a", 6)), ErrInvalidRating)
	assert.Empty(t, reviews.ForProduct(1))
}

func TestReviews_AverageRating(t *testing.T) {
	reviews, err := NewReviews(testRecords(t))
	require.NoError(t, err)

	for _, rating := range []int{5, 3, 4} {
		require.NoError(t, reviews.Add(1, testReview("user-a", rating)))
	}

	assert.InDelta(t, 4.0, reviews.AverageRating(1), 1e-9)
}

func TestReviews_AverageRating_NoReviews(t *testing.T) {
	reviews, err := NewReviews(testRecords(t))
	require.NoError(t, err)

	assert.Zero(t, reviews.AverageRating(1))
}

func TestReviews_Delete(t *testing.T) {
	reviews, err := NewReviews(testRecords(t))
	require.NoError(t, err)

	keep := testReview("user-a", 5)
	drop := testReview("user-b", 1)
	require.NoError(t, reviews.Add(1, keep))
	require.NoError(t, reviews.Add(1, drop))

	require.NoError(t, reviews.Delete(1, drop.ID))

	remaining := reviews.ForProduct(1)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)
}
