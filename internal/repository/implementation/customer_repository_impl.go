package implementation

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"detailops-be/internal/entity"
	"detailops-be/internal/mapper"
	"detailops-be/internal/model"
	"detailops-be/internal/repository/contract"
)

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mapper.NewCustomerMapper(),
	}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.ToModel(customer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*customer = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.ToModel(customer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*customer = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Where("customer_id = ?", id).Delete(&model.Vehicle{}).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *CustomerRepositoryImpl) FindByID(ctx context.Context, id int) (*entity.Customer, error) {
	var m model.Customer
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CustomerRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var m model.Customer
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context, filter contract.CustomerFilter) ([]*entity.Customer, int, error) {
	query := r.db.WithContext(ctx).Model(&model.Customer{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ? OR phone LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var models []*model.Customer
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, 0, err
	}
	return r.mapper.ToEntities(models), int(total), nil
}

func (r *CustomerRepositoryImpl) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return int(count), err
}

func (r *CustomerRepositoryImpl) CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	m := r.mapper.VehicleToModel(vehicle)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*vehicle = *r.mapper.VehicleToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) UpdateVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	m := r.mapper.VehicleToModel(vehicle)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*vehicle = *r.mapper.VehicleToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) DeleteVehicle(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Vehicle{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CustomerRepositoryImpl) FindVehicleByID(ctx context.Context, id int) (*entity.Vehicle, error) {
	var m model.Vehicle
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.VehicleToEntity(&m), nil
}

func (r *CustomerRepositoryImpl) FindVehiclesByCustomer(ctx context.Context, customerId int) ([]*entity.Vehicle, error) {
	var models []*model.Vehicle
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerId).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.VehiclesToEntities(models), nil
}
