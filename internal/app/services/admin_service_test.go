package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/auth"
)

func TestAdminUnlock(t *testing.T) {
	hash, err := auth.HashPassword("open sesame")
	require.NoError(t, err)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		AdminSecret:   "test-admin-secret",
		AdminTokenExp: time.Hour,
		TokenIssuer:   "hooplannedthis-test",
		MemberSecret:  "test-member-secret",
	})
	svc := NewAdminService(jwtService, hash)

	resp, err := svc.Unlock(context.Background(), "open sesame")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)

	claims, err := jwtService.ValidateAdminToken(resp.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.Admin)

	_, err = svc.Unlock(context.Background(), "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAdminUnlock_NoHashConfigured(t *testing.T) {
	svc := NewAdminService(auth.NewJWTService(auth.JWTConfig{AdminSecret: "s"}), "")

	_, err := svc.Unlock(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
