package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"detailops-be/internal/entity"
	"detailops-be/internal/model"
)

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}

	var tags []string
	if len(c.Tags) > 0 {
		_ = json.Unmarshal(c.Tags, &tags)
	}

	return &entity.Customer{
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
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CustomerMapper) ToModel(c *entity.Customer) *model.Customer {
	if c == nil {
		return nil
	}

	var tags datatypes.JSON
	if c.Tags != nil {
		raw, _ := json.Marshal(c.Tags)
		tags = datatypes.JSON(raw)
	}

	return &model.Customer{
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
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CustomerMapper) ToEntities(customers []*model.Customer) []*entity.Customer {
	entities := make([]*entity.Customer, len(customers))
	for i, c := range customers {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CustomerMapper) VehicleToEntity(v *model.Vehicle) *entity.Vehicle {
	if v == nil {
		return nil
	}
	return &entity.Vehicle{
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

func (m *CustomerMapper) VehicleToModel(v *entity.Vehicle) *model.Vehicle {
	if v == nil {
		return nil
	}
	return &model.Vehicle{
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

func (m *CustomerMapper) VehiclesToEntities(vehicles []*model.Vehicle) []*entity.Vehicle {
	entities := make([]*entity.Vehicle, len(vehicles))
	for i, v := range vehicles {
		entities[i] = m.VehicleToEntity(v)
	}
	return entities
}
