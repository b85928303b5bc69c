package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"detailops-be/internal/entity"
	"detailops-be/internal/repository/contract"
)

type CustomerRepository struct {
	mu            sync.RWMutex
	customers     map[int]*entity.Customer
	vehicles      map[int]*entity.Vehicle
	nextId        int
	nextVehicleId int
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers:     make(map[int]*entity.Customer),
		vehicles:      make(map[int]*entity.Vehicle),
		nextId:        1,
		nextVehicleId: 1,
	}
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	out := *c
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	return &out
}

func cloneVehicle(v *entity.Vehicle) *entity.Vehicle {
	out := *v
	return &out
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer.Id = r.nextId
	r.nextId++
	r.customers[customer.Id] = cloneCustomer(customer)
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.Id] = cloneCustomer(customer)
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return false, nil
	}
	delete(r.customers, id)
	for vid, v := range r.vehicles {
		if v.CustomerId == id {
			delete(r.vehicles, vid)
		}
	}
	return true, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return cloneCustomer(c), nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.Email != "" && strings.EqualFold(c.Email, email) {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func matchesSearch(c *entity.Customer, needle string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	return strings.Contains(strings.ToLower(c.FullName), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle) ||
		strings.Contains(c.Phone, needle)
}

func (r *CustomerRepository) FindAll(ctx context.Context, filter contract.CustomerFilter) ([]*entity.Customer, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.Customer
	for _, c := range r.customers {
		if matchesSearch(c, filter.Search) {
			matched = append(matched, cloneCustomer(c))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Id < matched[j].Id })
	total := len(matched)
	if filter.Page > 0 && filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start >= total {
			return []*entity.Customer{}, total, nil
		}
		end := start + filter.PageSize
		if end > total {
			end = total
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *CustomerRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, c := range r.customers {
		if !c.CreatedAt.Before(start) && c.CreatedAt.Before(end) {
			count++
		}
	}
	return count, nil
}

func (r *CustomerRepository) CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicle.Id = r.nextVehicleId
	r.nextVehicleId++
	r.vehicles[vehicle.Id] = cloneVehicle(vehicle)
	return nil
}

func (r *CustomerRepository) UpdateVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[vehicle.Id] = cloneVehicle(vehicle)
	return nil
}

func (r *CustomerRepository) DeleteVehicle(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[id]; !ok {
		return false, nil
	}
	delete(r.vehicles, id)
	return true, nil
}

func (r *CustomerRepository) FindVehicleByID(ctx context.Context, id int) (*entity.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vehicles[id]
	if !ok {
		return nil, nil
	}
	return cloneVehicle(v), nil
}

func (r *CustomerRepository) FindVehiclesByCustomer(ctx context.Context, customerId int) ([]*entity.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Vehicle
	for _, v := range r.vehicles {
		if v.CustomerId == customerId {
			result = append(result, cloneVehicle(v))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}
