package auth

import (
	"context"
	"testing"

	"github.com/caretrack/agency-backend-go/internal/domain/auth"
	"github.com/caretrack/agency-backend-go/internal/domain/user"
	"github.com/caretrack/agency-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by email
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := r.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	employeeID := "emp-1"
	repo := &fakeUserRepo{users: map[string]user.User{
		"dana@agency.example": {
			ID:           "user-1",
			Email:        "dana@agency.example",
			PasswordHash: &hashStr,
			Role:         user.RoleCaregiver,
			EmployeeID:   &employeeID,
		},
	}}

	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService), jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	result, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "dana@agency.example",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, string(user.RoleCaregiver), result.Role)
	require.NotNil(t, result.EmployeeID)
	assert.Equal(t, "emp-1", *result.EmployeeID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "dana@agency.example",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@agency.example",
		Password: "password123",
	})

	// Same error as a wrong password, no account enumeration
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_InvalidEmailFormat(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Email:    "not-an-email",
		Password: "password123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestAuthService_Refresh_Success(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)
	ctx := context.Background()

	login, err := service.Login(ctx, auth.LoginRequest{
		Email:    "dana@agency.example",
		Password: "password123",
	})
	require.NoError(t, err)

	result, err := service.Refresh(ctx, login.RefreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)
	ctx := context.Background()

	login, err := service.Login(ctx, auth.LoginRequest{
		Email:    "dana@agency.example",
		Password: "password123",
	})
	require.NoError(t, err)

	// An access token is not a refresh token
	_, err = service.Refresh(ctx, login.AccessToken)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)

	_, err := service.Refresh(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	t.Parallel()
	service, _ := newTestService(t)
	ctx := context.Background()

	login, err := service.Login(ctx, auth.LoginRequest{
		Email:    "dana@agency.example",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, login.RefreshToken))

	_, err = service.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
