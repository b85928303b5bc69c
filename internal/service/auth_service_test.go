package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailops-be/internal/dto"
	"detailops-be/internal/repository"
	"detailops-be/internal/repository/memory"
)

func newAuthFixture(t *testing.T) (IAuthService, IUserService, *memory.SessionRepository, repository.Datastore) {
	t.Helper()
	store := newTestStore()
	sessions := memory.NewSessionRepository(time.Hour)
	auth := NewAuthService(store, sessions, "test-secret", time.Hour, nopLogger{})
	users := NewUserService(store)

	_, err := users.Create(context.Background(), &dto.CreateUserRequest{
		Username: "owner",
		Password: "hunter2-hunter2",
		FullName: "Shop Owner",
		Role:     "admin",
	})
	require.NoError(t, err)

	return auth, users, sessions, store
}

func TestLoginIssuesTokenWithLiveSession(t *testing.T) {
	auth, _, sessions, _ := newAuthFixture(t)

	res, err := auth.Login(context.Background(), &dto.LoginRequest{
		Username: "owner",
		Password: "hunter2-hunter2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "owner", res.User.Username)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	sessionId, _ := claims["session_id"].(string)

	_, alive := sessions.Get(sessionId)
	assert.True(t, alive)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)

	_, err := auth.Login(context.Background(), &dto.LoginRequest{
		Username: "owner",
		Password: "wrong",
	})
	var statusErr *dto.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.Code)

	// Unknown usernames produce the same error, not a different one.
	_, err = auth.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.Code)
}

func TestLoginRejectsDeactivatedUser(t *testing.T) {
	auth, users, _, _ := newAuthFixture(t)
	ctx := context.Background()

	inactive := false
	_, err := users.Update(ctx, 1, &dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = auth.Login(ctx, &dto.LoginRequest{Username: "owner", Password: "hunter2-hunter2"})
	var statusErr *dto.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	auth, _, sessions, _ := newAuthFixture(t)
	ctx := context.Background()

	res, err := auth.Login(ctx, &dto.LoginRequest{Username: "owner", Password: "hunter2-hunter2"})
	require.NoError(t, err)

	token, _ := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	sessionId, _ := token.Claims.(jwt.MapClaims)["session_id"].(string)

	require.NoError(t, auth.Logout(ctx, sessionId))
	_, alive := sessions.Get(sessionId)
	assert.False(t, alive)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	err := auth.ChangePassword(ctx, 1, &dto.ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "brand-new-password",
	})
	var statusErr *dto.StatusError
	require.ErrorAs(t, err, &statusErr)

	require.NoError(t, auth.ChangePassword(ctx, 1, &dto.ChangePasswordRequest{
		CurrentPassword: "hunter2-hunter2",
		NewPassword:     "brand-new-password",
	}))

	_, err = auth.Login(ctx, &dto.LoginRequest{Username: "owner", Password: "brand-new-password"})
	require.NoError(t, err)
}
