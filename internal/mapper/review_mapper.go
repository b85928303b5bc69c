package mapper

import (
	"detailops-be/internal/entity"
	"detailops-be/internal/model"
)

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToEntity(r *model.Review) *entity.Review {
	if r == nil {
		return nil
	}
	return &entity.Review{
		Id:           r.Id,
		CustomerId:   r.CustomerId,
		JobId:        r.JobId,
		Rating:       r.Rating,
		Comment:      r.Comment,
		Source:       r.Source,
		Responded:    r.Responded,
		ResponseText: r.ResponseText,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m *ReviewMapper) ToModel(r *entity.Review) *model.Review {
	if r == nil {
		return nil
	}
	return &model.Review{
		Id:           r.Id,
		CustomerId:   r.CustomerId,
		JobId:        r.JobId,
		Rating:       r.Rating,
		Comment:      r.Comment,
		Source:       r.Source,
		Responded:    r.Responded,
		ResponseText: r.ResponseText,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m *ReviewMapper) ToEntities(reviews []*model.Review) []*entity.Review {
	entities := make([]*entity.Review, len(reviews))
	for i, r := range reviews {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
