package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tala-hr/payroll-backend-go/internal/domain/auth"
	"github.com/tala-hr/payroll-backend-go/internal/domain/user"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo         user.UserRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
}

func NewAuthService(
	userRepo user.UserRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, *http.Cookie, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, nil, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, nil, fmt.Errorf("get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, nil, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, nil, fmt.Errorf("generate refresh token: %w", err)
	}

	err = s.refreshTokenRepo.Save(ctx, auth.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    u.ID,
		Token:     refreshToken,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	})
	if err != nil {
		return auth.LoginResponse{}, nil, fmt.Errorf("save refresh token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Role:        string(u.Role),
		EmployeeID:  u.EmployeeID,
	}
	cookie := s.jwtService.RefreshTokenCookie(refreshToken, refreshExpiresAt)
	return resp, cookie, nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	stored, err := s.refreshTokenRepo.Get(ctx, refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, err
	}
	if stored.RevokedAt != nil {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.RefreshResponse{}, auth.ErrTokenExpired
	}

	u, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("get user: %w", err)
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.RefreshResponse{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return s.refreshTokenRepo.Revoke(ctx, refreshToken)
}
