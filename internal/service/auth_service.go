package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/pkg/logger"
	"detailops-be/internal/repository"
	"detailops-be/internal/repository/memory"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionId string) error
	Me(ctx context.Context, userId int) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userId int, req *dto.ChangePasswordRequest) error
}

type authService struct {
	store      repository.Datastore
	sessions   *memory.SessionRepository
	jwtSecret  string
	sessionTTL time.Duration
	logger     logger.ILogger
}

func NewAuthService(
	store repository.Datastore,
	sessions *memory.SessionRepository,
	jwtSecret string,
	sessionTTL time.Duration,
	log logger.ILogger,
) IAuthService {
	return &authService{
		store:      store,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		logger:     log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.store.Users().FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, dto.Unauthorized("invalid credentials")
	}
	if !user.IsActive {
		return nil, dto.Unauthorized("account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, dto.Unauthorized("invalid credentials")
	}

	now := time.Now()
	session := &entity.Session{
		Id:        uuid.NewString(),
		UserId:    user.Id,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	s.sessions.Save(session)

	claims := jwt.MapClaims{
		"user_id":    user.Id,
		"role":       string(user.Role),
		"session_id": session.Id,
		"exp":        session.ExpiresAt.Unix(),
		"iat":        now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("auth", "user logged in", map[string]interface{}{
		"user_id":  user.Id,
		"username": user.Username,
	})

	return &dto.LoginResponse{
		Token: signed,
		User:  userToResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionId string) error {
	s.sessions.Delete(sessionId)
	return nil
}

func (s *authService) Me(ctx context.Context, userId int) (*dto.UserResponse, error) {
	user, err := s.store.Users().FindByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return userToResponse(user), nil
}

func (s *authService) ChangePassword(ctx context.Context, userId int, req *dto.ChangePasswordRequest) error {
	user, err := s.store.Users().FindByID(ctx, userId)
	if err != nil {
		return err
	}
	if user == nil || user.PasswordHash == nil {
		return dto.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return dto.Unauthorized("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashStr := string(hash)
	user.PasswordHash = &hashStr
	user.UpdatedAt = time.Now()
	return s.store.Users().Update(ctx, user)
}
