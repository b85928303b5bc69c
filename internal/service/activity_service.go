package service

import (
	"context"
	"encoding/json"
	"time"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/pkg/logger"
	"detailops-be/internal/repository"
)

type IActivityService interface {
	// Record appends an activity and pushes it onto the live feed. Failures
	// to publish never fail the calling operation.
	Record(ctx context.Context, activity *entity.Activity) error
	GetRecent(ctx context.Context, limit int) ([]*dto.ActivityResponse, error)
}

type activityService struct {
	store            repository.Datastore
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewActivityService(
	store repository.Datastore,
	publisherService IPublisherService,
	log logger.ILogger,
) IActivityService {
	return &activityService{
		store:            store,
		publisherService: publisherService,
		logger:           log,
	}
}

func activityToResponse(a *entity.Activity) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		Id:          a.Id,
		Type:        string(a.Type),
		CustomerId:  a.CustomerId,
		JobId:       a.JobId,
		InvoiceId:   a.InvoiceId,
		Description: a.Description,
		Metadata:    a.Metadata,
		CreatedAt:   a.CreatedAt,
	}
}

func (s *activityService) Record(ctx context.Context, activity *entity.Activity) error {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	if err := s.store.Activities().Create(ctx, activity); err != nil {
		return err
	}

	if s.publisherService != nil {
		payload, err := json.Marshal(activityToResponse(activity))
		if err == nil {
			err = s.publisherService.Publish(ctx, payload)
		}
		if err != nil {
			s.logger.Warn("activity", "feed publish failed", map[string]interface{}{
				"activity_id": activity.Id,
				"error":       err.Error(),
			})
		}
	}

	return nil
}

func (s *activityService) GetRecent(ctx context.Context, limit int) ([]*dto.ActivityResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	activities, err := s.store.Activities().FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ActivityResponse, len(activities))
	for i, a := range activities {
		result[i] = activityToResponse(a)
	}
	return result, nil
}
