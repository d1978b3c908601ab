package auth

import (
	"context"
	"errors"

	"github.com/caretrack/agency-backend-go/internal/domain/auth"
	"github.com/caretrack/agency-backend-go/internal/domain/user"
	"github.com/caretrack/agency-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

// Login implements auth.AuthService. A missing account and a wrong password
// are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if u.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.ClientID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
		Role:             string(u.Role),
		EmployeeID:       u.EmployeeID,
		ClientID:         u.ClientID,
	}, nil
}

// Refresh implements auth.AuthService.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	userID, err := s.verifyRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, err
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.ClientID, u.Role)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	return auth.RefreshResponse{
		AccessToken:     accessToken,
		AccessExpiresAt: accessExpiresAt,
	}, nil
}

// Logout implements auth.AuthService. Revocation outlives the request; the
// token stays rejected until it would have expired anyway.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.verifyRefreshToken(refreshToken); err != nil {
		return err
	}

	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// verifyRefreshToken validates signature, expiry, revocation, and token type,
// returning the subject user ID.
func (s *authService) verifyRefreshToken(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", auth.ErrInvalidToken
	}

	if s.jwtService.IsTokenRevoked(refreshToken) {
		return "", auth.ErrRefreshTokenRevoked
	}

	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return "", auth.ErrTokenExpired
		}
		return "", auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}

	userID, ok := token.Get("user_id")
	if !ok {
		return "", auth.ErrInvalidToken
	}
	userIDStr, ok := userID.(string)
	if !ok || userIDStr == "" {
		return "", auth.ErrInvalidToken
	}

	return userIDStr, nil
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}
