package mapper

import (
	"detailops-be/internal/entity"
	"detailops-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ToEntity(s *model.Service) *entity.Service {
	if s == nil {
		return nil
	}
	return &entity.Service{
		Id:              s.Id,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Color:           s.Color,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
	}
}

func (m *CatalogMapper) ToModel(s *entity.Service) *model.Service {
	if s == nil {
		return nil
	}
	return &model.Service{
		Id:              s.Id,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Color:           s.Color,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
	}
}

func (m *CatalogMapper) ToEntities(services []*model.Service) []*entity.Service {
	entities := make([]*entity.Service, len(services))
	for i, s := range services {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
