package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/VGoku/e-commerce-platform1/internal/model"
	"github.com/VGoku/e-commerce-platform1/internal/storage"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

const reviewRecord = "review-storage"

// Reviews keeps an append-only review list per product id. Ownership
// of deletes is enforced by the caller; the store only filters by id.
type Reviews struct {
	mu      sync.RWMutex
	recs    *storage.Records
	reviews map[int64][]model.Review
}

func NewReviews(recs *storage.Records) (*Reviews, error) {
	r := &Reviews{recs: recs, reviews: make(map[int64][]model.Review)}
	if _, err := recs.Load(reviewRecord, &r.reviews); err != nil {
		return nil, err
	}
	if r.reviews == nil {
		r.reviews = make(map[int64][]model.Review)
	}
	return r, nil
}

func (r *Reviews) Add(productID int64, review model.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews[productID] = append(r.reviews[productID], review)
	return r.persist()
}

func (r *Reviews) ForProduct(productID int64) []model.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := r.reviews[productID]
	out := make([]model.Review, len(reviews))
	copy(out, reviews)
	return out
}

// AverageRating is the arithmetic mean of the product's ratings, or
// zero when there are none.
func (r *Reviews) AverageRating(productID int64) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := r.reviews[productID]
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews))
}

func (r *Reviews) Delete(productID int64, reviewID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews := r.reviews[productID]
	next := make([]model.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.ID != reviewID {
			next = append(next, review)
		}
	}
	r.reviews[productID] = next
	return r.persist()
}

func (r *Reviews) persist() error {
	return r.recs.Save(reviewRecord, r.reviews)
}
