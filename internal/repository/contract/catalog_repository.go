package contract

import (
	"context"

	"detailops-be/internal/entity"
)

type CatalogRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id int) (bool, error)
	FindByID(ctx context.Context, id int) (*entity.Service, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Service, error)
}
