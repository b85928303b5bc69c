package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/repository"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Show(ctx context.Context, id int) (*dto.UserResponse, error)
	GetAll(ctx context.Context) ([]*dto.UserResponse, error)
	GetTechnicians(ctx context.Context) ([]*dto.UserResponse, error)
}

type userService struct {
	store repository.Datastore
}

func NewUserService(store repository.Datastore) IUserService {
	return &userService{store: store}
}

func userToResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        u.Id,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := s.store.Users().FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, dto.Conflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	now := time.Now()
	user := &entity.User{
		Username:     req.Username,
		PasswordHash: &hashStr,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         entity.UserRole(req.Role),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) Update(ctx context.Context, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) Show(ctx context.Context, id int) (*dto.UserResponse, error) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return userToResponse(user), nil
}

func (s *userService) GetAll(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.store.Users().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.UserResponse, len(users))
	for i, u := range users {
		result[i] = userToResponse(u)
	}
	return result, nil
}

func (s *userService) GetTechnicians(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.store.Users().FindByRole(ctx, entity.UserRoleTechnician)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.UserResponse, len(users))
	for i, u := range users {
		result[i] = userToResponse(u)
	}
	return result, nil
}
