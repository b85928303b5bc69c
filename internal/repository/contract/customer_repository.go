package contract

import (
	"context"
	"time"

	"detailops-be/internal/entity"
)

// CustomerFilter narrows and paginates customer listings. Customers are the
// only paginated collection in the API.
type CustomerFilter struct {
	Search   string // matched against full name, email and phone
	Page     int    // 1-based; 0 means no pagination
	PageSize int
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int) (bool, error)
	FindByID(ctx context.Context, id int) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindAll(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, int, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error)

	CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle *entity.Vehicle) error
	DeleteVehicle(ctx context.Context, id int) (bool, error)
	FindVehicleByID(ctx context.Context, id int) (*entity.Vehicle, error)
	FindVehiclesByCustomer(ctx context.Context, customerId int) ([]*entity.Vehicle, error)
}
