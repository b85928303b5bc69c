package service

import (
	"context"
	"fmt"
	"time"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/repository"
)

type IReviewService interface {
	Create(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Respond(ctx context.Context, id int, req *dto.RespondReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, id int) (bool, error)
	Show(ctx context.Context, id int) (*dto.ReviewResponse, error)
	GetAll(ctx context.Context) ([]*dto.ReviewResponse, error)
	GetByCustomer(ctx context.Context, customerId int) ([]*dto.ReviewResponse, error)
}

type reviewService struct {
	store           repository.Datastore
	activityService IActivityService
}

func NewReviewService(store repository.Datastore, activityService IActivityService) IReviewService {
	return &reviewService{store: store, activityService: activityService}
}

func reviewToResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:           r.Id,
		CustomerId:   r.CustomerId,
		JobId:        r.JobId,
		Rating:       r.Rating,
		Comment:      r.Comment,
		Source:       r.Source,
		Responded:    r.Responded,
		ResponseText: r.ResponseText,
		CreatedAt:    r.CreatedAt,
	}
}

func (s *reviewService) Create(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	customer, err := s.store.Customers().FindByID(ctx, req.CustomerId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, dto.BadRequest("customer not found")
	}

	now := time.Now()
	review := &entity.Review{
		CustomerId: req.CustomerId,
		JobId:      req.JobId,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Source:     req.Source,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.Reviews().Create(ctx, review); err != nil {
		return nil, err
	}

	cid := review.CustomerId
	_ = s.activityService.Record(ctx, &entity.Activity{
		Type:        entity.ActivityReviewReceived,
		CustomerId:  &cid,
		JobId:       review.JobId,
		Description: fmt.Sprintf("%d-star review from %s", review.Rating, customer.FullName),
		Metadata: map[string]interface{}{
			"rating": review.Rating,
			"source": review.Source,
		},
	})

	return reviewToResponse(review), nil
}

func (s *reviewService) Respond(ctx context.Context, id int, req *dto.RespondReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.store.Reviews().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, nil
	}

	review.Responded = true
	review.ResponseText = req.ResponseText
	review.UpdatedAt = time.Now()
	if err := s.store.Reviews().Update(ctx, review); err != nil {
		return nil, err
	}

	cid := review.CustomerId
	_ = s.activityService.Record(ctx, &entity.Activity{
		Type:        entity.ActivityReviewResponded,
		CustomerId:  &cid,
		Description: fmt.Sprintf("Responded to review #%d", review.Id),
	})

	return reviewToResponse(review), nil
}

func (s *reviewService) Delete(ctx context.Context, id int) (bool, error) {
	return s.store.Reviews().Delete(ctx, id)
}

func (s *reviewService) Show(ctx context.Context, id int) (*dto.ReviewResponse, error) {
	review, err := s.store.Reviews().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, nil
	}
	return reviewToResponse(review), nil
}

func (s *reviewService) GetAll(ctx context.Context) ([]*dto.ReviewResponse, error) {
	reviews, err := s.store.Reviews().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ReviewResponse, len(reviews))
	for i, r := range reviews {
		result[i] = reviewToResponse(r)
	}
	return result, nil
}

func (s *reviewService) GetByCustomer(ctx context.Context, customerId int) ([]*dto.ReviewResponse, error) {
	reviews, err := s.store.Reviews().FindByCustomer(ctx, customerId)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ReviewResponse, len(reviews))
	for i, r := range reviews {
		result[i] = reviewToResponse(r)
	}
	return result, nil
}
