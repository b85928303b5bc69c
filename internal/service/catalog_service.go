package service

import (
	"context"
	"time"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/repository"
)

type ICatalogService interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id int) (bool, error)
	Show(ctx context.Context, id int) (*dto.ServiceResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]*dto.ServiceResponse, error)
}

type catalogService struct {
	store repository.Datastore
}

func NewCatalogService(store repository.Datastore) ICatalogService {
	return &catalogService{store: store}
}

func serviceToResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
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

func (s *catalogService) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	svc := &entity.Service{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Color:           req.Color,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	if err := s.store.Catalog().Create(ctx, svc); err != nil {
		return nil, err
	}
	return serviceToResponse(svc), nil
}

func (s *catalogService) Update(ctx context.Context, id int, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := s.store.Catalog().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, nil
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Color != nil {
		svc.Color = *req.Color
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.store.Catalog().Update(ctx, svc); err != nil {
		return nil, err
	}
	return serviceToResponse(svc), nil
}

func (s *catalogService) Delete(ctx context.Context, id int) (bool, error) {
	return s.store.Catalog().Delete(ctx, id)
}

func (s *catalogService) Show(ctx context.Context, id int) (*dto.ServiceResponse, error) {
	svc, err := s.store.Catalog().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, nil
	}
	return serviceToResponse(svc), nil
}

func (s *catalogService) GetAll(ctx context.Context, activeOnly bool) ([]*dto.ServiceResponse, error) {
	services, err := s.store.Catalog().FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ServiceResponse, len(services))
	for i, svc := range services {
		result[i] = serviceToResponse(svc)
	}
	return result, nil
}
