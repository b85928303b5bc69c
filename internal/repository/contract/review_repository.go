package contract

import (
	"context"

	"detailops-be/internal/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int) (bool, error)
	FindByID(ctx context.Context, id int) (*entity.Review, error)
	FindByCustomer(ctx context.Context, customerId int) ([]*entity.Review, error)
	FindAll(ctx context.Context) ([]*entity.Review, error)
}
