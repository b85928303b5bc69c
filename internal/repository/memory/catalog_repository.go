package memory

import (
	"context"
	"sort"
	"sync"

	"detailops-be/internal/entity"
)

type CatalogRepository struct {
	mu       sync.RWMutex
	services map[int]*entity.Service
	nextId   int
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		services: make(map[int]*entity.Service),
		nextId:   1,
	}
}

func cloneService(s *entity.Service) *entity.Service {
	out := *s
	return &out
}

func (r *CatalogRepository) Create(ctx context.Context, service *entity.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	service.Id = r.nextId
	r.nextId++
	r.services[service.Id] = cloneService(service)
	return nil
}

func (r *CatalogRepository) Update(ctx context.Context, service *entity.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[service.Id] = cloneService(service)
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[id]; !ok {
		return false, nil
	}
	delete(r.services, id)
	return true, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id int) (*entity.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	return cloneService(s), nil
}

func (r *CatalogRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Service
	for _, s := range r.services {
		if activeOnly && !s.IsActive {
			continue
		}
		result = append(result, cloneService(s))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}
