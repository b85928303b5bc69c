package memory

import (
	"context"
	"sort"
	"sync"

	"detailops-be/internal/entity"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  map[int]*entity.User
	nextId int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*entity.User),
		nextId: 1,
	}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Id = r.nextId
	r.nextId++
	r.users[user.Id] = cloneUser(user)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Id] = cloneUser(user)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, cloneUser(u))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *UserRepository) FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			result = append(result, cloneUser(u))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}
