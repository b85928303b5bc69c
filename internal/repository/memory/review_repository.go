package memory

import (
	"context"
	"sort"
	"sync"

	"detailops-be/internal/entity"
)

type ReviewRepository struct {
	mu      sync.RWMutex
	reviews map[int]*entity.Review
	nextId  int
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{
		reviews: make(map[int]*entity.Review),
		nextId:  1,
	}
}

func cloneReview(rv *entity.Review) *entity.Review {
	out := *rv
	return &out
}

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review.Id = r.nextId
	r.nextId++
	r.reviews[review.Id] = cloneReview(review)
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews[review.Id] = cloneReview(review)
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[id]; !ok {
		return false, nil
	}
	delete(r.reviews, id)
	return true, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id int) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rv, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	return cloneReview(rv), nil
}

func (r *ReviewRepository) FindByCustomer(ctx context.Context, customerId int) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Review
	for _, rv := range r.reviews {
		if rv.CustomerId == customerId {
			result = append(result, cloneReview(rv))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entity.Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		result = append(result, cloneReview(rv))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}
