package service

import (
	"context"
	"fmt"
	"time"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/repository"
	"detailops-be/internal/repository/contract"
)

type ICustomerService interface {
	Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id int) (bool, error)
	Show(ctx context.Context, id int) (*dto.CustomerResponse, error)
	GetAll(ctx context.Context, search string, page, pageSize int) (*dto.CustomerListResponse, error)

	AddVehicle(ctx context.Context, customerId int, req *dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, vehicleId int, req *dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, vehicleId int) (bool, error)
	GetVehicles(ctx context.Context, customerId int) ([]*dto.VehicleResponse, error)
}

type customerService struct {
	store           repository.Datastore
	activityService IActivityService
}

func NewCustomerService(store repository.Datastore, activityService IActivityService) ICustomerService {
	return &customerService{
		store:           store,
		activityService: activityService,
	}
}

func customerToResponse(c *entity.Customer) *dto.CustomerResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.CustomerResponse{
		Id:        c.Id,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Tags:      tags,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

func vehicleToResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		Id:           v.Id,
		CustomerId:   v.CustomerId,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Color:        v.Color,
		LicensePlate: v.LicensePlate,
		Vin:          v.Vin,
		CreatedAt:    v.CreatedAt,
	}
}

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	now := time.Now()
	customer := &entity.Customer{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Tags:      req.Tags,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Customers().Create(ctx, customer); err != nil {
		return nil, err
	}

	cid := customer.Id
	_ = s.activityService.Record(ctx, &entity.Activity{
		Type:        entity.ActivityCustomerCreated,
		CustomerId:  &cid,
		Description: fmt.Sprintf("New customer: %s", customer.FullName),
	})

	return customerToResponse(customer), nil
}

func (s *customerService) Update(ctx context.Context, id int, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := s.store.Customers().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}

	if req.FullName != nil {
		customer.FullName = *req.FullName
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.City != nil {
		customer.City = *req.City
	}
	if req.State != nil {
		customer.State = *req.State
	}
	if req.ZipCode != nil {
		customer.ZipCode = *req.ZipCode
	}
	if req.Tags != nil {
		customer.Tags = *req.Tags
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	customer.UpdatedAt = time.Now()

	if err := s.store.Customers().Update(ctx, customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

func (s *customerService) Delete(ctx context.Context, id int) (bool, error) {
	return s.store.Customers().Delete(ctx, id)
}

func (s *customerService) Show(ctx context.Context, id int) (*dto.CustomerResponse, error) {
	customer, err := s.store.Customers().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return customerToResponse(customer), nil
}

func (s *customerService) GetAll(ctx context.Context, search string, page, pageSize int) (*dto.CustomerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 25
	}

	customers, total, err := s.store.Customers().FindAll(ctx, contract.CustomerFilter{
		Search:   search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = customerToResponse(c)
	}
	return &dto.CustomerListResponse{
		Customers: result,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

func (s *customerService) AddVehicle(ctx context.Context, customerId int, req *dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	customer, err := s.store.Customers().FindByID(ctx, customerId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, dto.NotFound("customer not found")
	}

	vehicle := &entity.Vehicle{
		CustomerId:   customerId,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		LicensePlate: req.LicensePlate,
		Vin:          req.Vin,
		CreatedAt:    time.Now(),
	}
	if err := s.store.Customers().CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicleToResponse(vehicle), nil
}

func (s *customerService) UpdateVehicle(ctx context.Context, vehicleId int, req *dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	vehicle, err := s.store.Customers().FindVehicleByID(ctx, vehicleId)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}

	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.LicensePlate != nil {
		vehicle.LicensePlate = *req.LicensePlate
	}
	if req.Vin != nil {
		vehicle.Vin = *req.Vin
	}

	if err := s.store.Customers().UpdateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicleToResponse(vehicle), nil
}

func (s *customerService) DeleteVehicle(ctx context.Context, vehicleId int) (bool, error) {
	return s.store.Customers().DeleteVehicle(ctx, vehicleId)
}

func (s *customerService) GetVehicles(ctx context.Context, customerId int) ([]*dto.VehicleResponse, error) {
	vehicles, err := s.store.Customers().FindVehiclesByCustomer(ctx, customerId)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		result[i] = vehicleToResponse(v)
	}
	return result, nil
}
