package services

import (
	"context"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/auth"
	"github.com/hooplannedthis/api/internal/pkg/logger"
)

// AdminService unlocks the admin-only views
type AdminService interface {
	Unlock(ctx context.Context, password string) (*dto.UnlockResponse, error)
}

type adminServiceImpl struct {
	jwtService   *auth.JWTService
	passwordHash string
}

// NewAdminService creates a new admin service instance
func NewAdminService(jwtService *auth.JWTService, passwordHash string) AdminService {
	return &adminServiceImpl{
		jwtService:   jwtService,
		passwordHash: passwordHash,
	}
}

// Unlock compares password with the configured hash and issues an admin token
func (s *adminServiceImpl) Unlock(ctx context.Context, password string) (*dto.UnlockResponse, error) {
	if s.passwordHash == "" {
		logger.Warn().Msg("Admin unlock attempted but no admin password hash is configured")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(s.passwordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAdminToken()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate admin token")
		return nil, err
	}

	return &dto.UnlockResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
